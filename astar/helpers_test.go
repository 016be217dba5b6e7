package astar_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/astar"
	"github.com/katalvlaran/hillclimb/builder"
	"github.com/katalvlaran/hillclimb/gridgraph"
)

const sample = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

// walledIn has an 'E' whose neighbors are all 'c': nothing can climb onto it.
const walledIn = `Sabc
abcE
`

func mustParse(t testing.TB, s string) *gridgraph.HeightMap {
	t.Helper()
	hm, err := gridgraph.ParseString(s)
	require.NoError(t, err)
	return hm
}

// randomHeightMap returns an n×m map with ranks in [0, spread) so that most
// cells are mutually reachable, with start ('a') at the top-left and end ('z')
// at the bottom-right.
func randomHeightMap(t testing.TB, r *rand.Rand, n, m, spread int) *gridgraph.HeightMap {
	t.Helper()
	hm, err := builder.Build(n, m, builder.Random(), builder.WithRand(r), builder.WithSpread(spread))
	require.NoError(t, err)
	return hm
}

// randomGoal picks a uniformly random cell. Few random maps let anything
// climb onto the 'z' end marker, so property tests aim here instead.
func randomGoal(r *rand.Rand, hm *gridgraph.HeightMap) gridgraph.Position {
	return hm.Coordinate(r.Intn(hm.Len()))
}

// requireValidPath checks endpoints, adjacency, and the climb rule for every step.
func requireValidPath(t testing.TB, hm *gridgraph.HeightMap, res astar.Result, start, goal gridgraph.Position) {
	t.Helper()
	require.NotEmpty(t, res.Path)
	require.Equal(t, start, res.Path[0], "path must begin at start")
	require.Equal(t, goal, res.Path[len(res.Path)-1], "path must end at goal")
	require.Equal(t, start, res.Source)
	for i := 1; i < len(res.Path); i++ {
		a, b := res.Path[i-1], res.Path[i]
		require.Equal(t, 1, astar.Manhattan(a, b), "step %d: %v→%v not adjacent", i, a, b)
		require.LessOrEqual(t, hm.HeightAt(b), hm.HeightAt(a)+1, "step %d: %v→%v climbs too high", i, a, b)
	}
}

package dijkstra_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/dijkstra"
	"github.com/katalvlaran/hillclimb/gridgraph"
)

const sample = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

func mustParse(t *testing.T, s string) *gridgraph.HeightMap {
	t.Helper()
	hm, err := gridgraph.ParseString(s)
	require.NoError(t, err)
	return hm
}

// freeStep allows every orthogonal step at zero cost.
type freeStep struct{}

func (freeStep) Step(_ *gridgraph.HeightMap, _, _ gridgraph.Position) (int, bool) { return 0, true }

// TestDijkstra_Validation checks the documented validation order.
func TestDijkstra_Validation(t *testing.T) {
	hm := mustParse(t, sample)
	pol := gridgraph.DefaultPolicy()

	_, err := dijkstra.Dijkstra(nil, nil)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource, "missing source comes first")

	_, err = dijkstra.Dijkstra(nil, pol, dijkstra.Source(gridgraph.Position{}))
	assert.ErrorIs(t, err, dijkstra.ErrNilGrid)

	_, err = dijkstra.Dijkstra(hm, nil, dijkstra.Source(gridgraph.Position{}))
	assert.ErrorIs(t, err, dijkstra.ErrNilPolicy)

	_, err = dijkstra.Dijkstra(hm, pol, dijkstra.Source(gridgraph.Position{Row: 5}))
	assert.ErrorIs(t, err, dijkstra.ErrSourceOutOfBounds)

	_, err = dijkstra.Dijkstra(hm, freeStep{}, dijkstra.Source(gridgraph.Position{}))
	assert.ErrorIs(t, err, dijkstra.ErrNonPositiveCost)
}

// TestDijkstra_Forward settles the whole sample from S.
func TestDijkstra_Forward(t *testing.T) {
	hm := mustParse(t, sample)
	tree, err := dijkstra.Dijkstra(hm, gridgraph.DefaultPolicy(), dijkstra.Source(hm.Start()))
	require.NoError(t, err)
	assert.False(t, tree.Found)
	assert.Equal(t, hm.Len(), tree.Settled, "every cell of the sample is reachable from S")

	d, ok := tree.DistanceTo(hm.End())
	require.True(t, ok)
	assert.Equal(t, 31, d)

	path, err := tree.PathTo(hm.End())
	require.NoError(t, err)
	require.Len(t, path, 32)
	assert.Equal(t, hm.Start(), path[0])
	assert.Equal(t, hm.End(), path[31])

	d, ok = tree.DistanceTo(hm.Start())
	assert.True(t, ok)
	assert.Zero(t, d)
}

// TestDijkstra_Reversed roots the tree at E: distances become cost-to-goal.
func TestDijkstra_Reversed(t *testing.T) {
	hm := mustParse(t, sample)
	tree, err := dijkstra.Dijkstra(hm, gridgraph.Reversed(gridgraph.DefaultPolicy()), dijkstra.Source(hm.End()))
	require.NoError(t, err)

	d, ok := tree.DistanceTo(hm.Start())
	require.True(t, ok)
	assert.Equal(t, 31, d, "reverse distance to S equals forward distance from S")

	best := -1
	for _, c := range hm.Candidates() {
		if d, ok := tree.DistanceTo(c); ok && (best < 0 || d < best) {
			best = d
		}
	}
	assert.Equal(t, 29, best)
}

// TestDijkstra_Targets stops at the first candidate settled.
func TestDijkstra_Targets(t *testing.T) {
	hm := mustParse(t, sample)
	tree, err := dijkstra.Dijkstra(hm, gridgraph.Reversed(gridgraph.DefaultPolicy()),
		dijkstra.Source(hm.End()),
		dijkstra.WithTargets(hm.Candidates()...),
	)
	require.NoError(t, err)
	require.True(t, tree.Found)
	assert.Equal(t, 0, hm.HeightAt(tree.Target))
	assert.Less(t, tree.Settled, hm.Len())

	d, ok := tree.DistanceTo(tree.Target)
	require.True(t, ok)
	assert.Equal(t, 29, d)
}

// TestDijkstra_TargetTieBreak settles equidistant targets in row-major order
// and reports all of them.
func TestDijkstra_TargetTieBreak(t *testing.T) {
	hm, err := gridgraph.NewHeightMap([][]int{{25, 0, 0}, {0, 0, 0}, {0, 0, 0}}, gridgraph.Position{Row: 1, Col: 1}, gridgraph.Position{})
	require.NoError(t, err)
	down, right := gridgraph.Position{Row: 2, Col: 1}, gridgraph.Position{Row: 1, Col: 2}
	corner := gridgraph.Position{Row: 2, Col: 2}

	tree, err := dijkstra.Dijkstra(hm, gridgraph.DefaultPolicy(),
		dijkstra.Source(hm.Start()),
		dijkstra.WithTargets(down, corner, right),
	)
	require.NoError(t, err)
	assert.Equal(t, right, tree.Target)
	assert.Equal(t, []gridgraph.Position{right, down}, tree.Reached, "the farther corner is not tied")
	_, ok := tree.DistanceTo(corner)
	assert.False(t, ok, "settled targets are not expanded")
}

// TestDijkstra_MaxDistance leaves cells beyond the cap unreached.
func TestDijkstra_MaxDistance(t *testing.T) {
	hm := mustParse(t, sample)
	tree, err := dijkstra.Dijkstra(hm, gridgraph.DefaultPolicy(),
		dijkstra.Source(hm.Start()),
		dijkstra.WithMaxDistance(5),
	)
	require.NoError(t, err)

	_, ok := tree.DistanceTo(hm.End())
	assert.False(t, ok)
	_, err = tree.PathTo(hm.End())
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)

	d, ok := tree.DistanceTo(gridgraph.Position{Row: 0, Col: 2})
	assert.True(t, ok)
	assert.Equal(t, 2, d)

	_, ok = tree.DistanceTo(gridgraph.Position{Row: -1})
	assert.False(t, ok)
}

func TestDijkstra_NegativeMaxDistancePanics(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		dijkstra.WithMaxDistance(-1)(&dijkstra.Options{})
	})
}

func TestDijkstra_Cancelled(t *testing.T) {
	hm := mustParse(t, sample)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dijkstra.Dijkstra(hm, gridgraph.DefaultPolicy(),
		dijkstra.Source(hm.Start()),
		dijkstra.WithContext(ctx),
	)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestDijkstra_Walled reports a goal nobody can climb onto as unreached.
func TestDijkstra_Walled(t *testing.T) {
	hm := mustParse(t, "Sabc\nabcE\n")
	tree, err := dijkstra.Dijkstra(hm, gridgraph.DefaultPolicy(), dijkstra.Source(hm.Start()))
	require.NoError(t, err)
	_, ok := tree.DistanceTo(hm.End())
	assert.False(t, ok)
	assert.Equal(t, hm.Len()-1, tree.Settled)
}

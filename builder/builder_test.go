package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/builder"
	"github.com/katalvlaran/hillclimb/gridgraph"
)

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows int
		cols int
		con  builder.Constructor
		opts []builder.Option
		want error
	}{
		{"ZeroRows", 0, 3, builder.Flat(0), nil, builder.ErrTooFewCells},
		{"ZeroCols", 3, 0, builder.Flat(0), nil, builder.ErrTooFewCells},
		{"FlatBelowMin", 2, 2, builder.Flat(-1), nil, builder.ErrBadRank},
		{"FlatAboveMax", 2, 2, builder.Flat(gridgraph.MaxRank + 1), nil, builder.ErrBadRank},
		{"RandomWithoutSource", 2, 2, builder.Random(), nil, builder.ErrNeedRandSource},
		{"StartOutside", 2, 2, builder.Flat(0), []builder.Option{builder.WithStart(gridgraph.Position{Row: 2})}, builder.ErrMarkerOutOfBounds},
		{"EndOutside", 2, 2, builder.Flat(0), []builder.Option{builder.WithEnd(gridgraph.Position{Col: -1})}, builder.ErrMarkerOutOfBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hm, err := builder.Build(tc.rows, tc.cols, tc.con, tc.opts...)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, hm)
		})
	}
}

func TestBuild_DefaultMarkers(t *testing.T) {
	hm, err := builder.Build(3, 4, builder.Flat(7))
	require.NoError(t, err)
	require.Equal(t, gridgraph.Position{}, hm.Start())
	require.Equal(t, gridgraph.Position{Row: 2, Col: 3}, hm.End())
	require.Equal(t, 4, hm.Width)
	require.Equal(t, 3, hm.Height)
	require.Equal(t, gridgraph.MinRank, hm.HeightAt(hm.Start()))
	require.Equal(t, gridgraph.MaxRank, hm.HeightAt(hm.End()))
	require.Equal(t, 7, hm.HeightAt(gridgraph.Position{Row: 1, Col: 1}))
}

func TestBuild_CustomMarkers(t *testing.T) {
	start := gridgraph.Position{Row: 1, Col: 1}
	end := gridgraph.Position{Row: 0, Col: 2}
	hm, err := builder.Build(2, 3, builder.Flat(4),
		builder.WithStart(start), builder.WithEnd(end))
	require.NoError(t, err)
	require.Equal(t, start, hm.Start())
	require.Equal(t, end, hm.End())
	require.Equal(t, gridgraph.MinRank, hm.HeightAt(start))
	require.Equal(t, gridgraph.MaxRank, hm.HeightAt(end))
}

func TestSlope_StepsClimbAtMostOne(t *testing.T) {
	// Every size has rows+cols-2 ≥ MaxRank, so the forced end rank matches the slope.
	for _, dims := range [][2]int{{2, 25}, {13, 14}, {10, 30}, {40, 40}} {
		hm, err := builder.Build(dims[0], dims[1], builder.Slope())
		require.NoError(t, err)
		for r := 0; r < hm.Height; r++ {
			for c := 0; c < hm.Width; c++ {
				p := gridgraph.Position{Row: r, Col: c}
				for _, q := range hm.Neighbors(p) {
					d := hm.HeightAt(q) - hm.HeightAt(p)
					require.LessOrEqual(t, d, 1, "%dx%d: %v→%v", dims[0], dims[1], p, q)
					require.GreaterOrEqual(t, d, -1, "%dx%d: %v→%v", dims[0], dims[1], p, q)
				}
			}
		}
	}
}

func TestSlope_CornerReachable(t *testing.T) {
	hm, err := builder.Build(5, 30, builder.Slope())
	require.NoError(t, err)
	require.Equal(t, gridgraph.MaxRank, hm.HeightAt(hm.End()))

	res, err := bfs.BFS(hm, hm.Start())
	require.NoError(t, err)
	require.Equal(t, 33, res.Depth[hm.End()], "a monotone route equals the Manhattan distance")
}

func TestRandom_Deterministic(t *testing.T) {
	a, err := builder.Build(6, 9, builder.Random(), builder.WithSeed(42))
	require.NoError(t, err)
	b, err := builder.Build(6, 9, builder.Random(), builder.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	require.Equal(t, a.String(), b.String())

	c, err := builder.Build(6, 9, builder.Random(), builder.WithSeed(43))
	require.NoError(t, err)
	require.NotEqual(t, a.String(), c.String())
}

func TestRandom_Spread(t *testing.T) {
	hm, err := builder.Build(8, 8, builder.Random(), builder.WithSeed(1), builder.WithSpread(3))
	require.NoError(t, err)
	for _, p := range hm.FindAll(func(int) bool { return true }) {
		if p == hm.End() {
			continue
		}
		require.Less(t, hm.HeightAt(p), 3)
	}

	flat, err := builder.Build(4, 4, builder.Random(), builder.WithSeed(1), builder.WithSpread(1))
	require.NoError(t, err)
	require.Len(t, flat.FindAll(func(r int) bool { return r == 0 }), 15)
}

func TestMarkerRanks_RoundTrip(t *testing.T) {
	hm, err := builder.Build(7, 11, builder.Random(), builder.WithSeed(3))
	require.NoError(t, err)

	back, err := gridgraph.ParseString(hm.String())
	require.NoError(t, err)
	require.Equal(t, hm.Start(), back.Start())
	require.Equal(t, hm.End(), back.End())
	for _, p := range hm.FindAll(func(int) bool { return true }) {
		require.Equal(t, hm.HeightAt(p), back.HeightAt(p), "cell %v", p)
	}
}

// TestMarkerRanks_Flat keeps a flat map's markers parseable: the start joins
// the lowest cells and the end stands above them.
func TestMarkerRanks_Flat(t *testing.T) {
	hm, err := builder.Build(1, 3, builder.Flat(5))
	require.NoError(t, err)
	require.Equal(t, "SfE\n", hm.String())

	back, err := gridgraph.ParseString(hm.String())
	require.NoError(t, err)
	require.Equal(t, hm.Candidates(), back.Candidates())
	require.Equal(t, []gridgraph.Position{{}}, hm.Candidates())
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithSpread(0) })
	require.Panics(t, func() { builder.WithSpread(gridgraph.MaxRank + 2) })
	require.NotPanics(t, func() { builder.WithSpread(gridgraph.MaxRank + 1) })
}

func TestByName(t *testing.T) {
	for _, name := range []string{"flat", "slope", "random"} {
		con, ok := builder.ByName(name, 0)
		require.True(t, ok, name)
		require.NotNil(t, con, name)
	}
	_, ok := builder.ByName("spiral", 0)
	require.False(t, ok)
}

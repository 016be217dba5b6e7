package astar

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/gridgraph"
	"github.com/katalvlaran/hillclimb/internal/pathutil"
)

// TestOpenSet_Order pops by f, then h, then (row, col).
func TestOpenSet_Order(t *testing.T) {
	at := func(r, c int) gridgraph.Position { return gridgraph.Position{Row: r, Col: c} }
	items := []*openItem{
		{pos: at(0, 0), g: 4, h: 2}, // f=6 h=2
		{pos: at(2, 2), g: 1, h: 5}, // f=6 h=5
		{pos: at(1, 1), g: 5, h: 1}, // f=6 h=1
		{pos: at(0, 3), g: 5, h: 1}, // f=6 h=1, smaller row
		{pos: at(3, 0), g: 2, h: 2}, // f=4
	}
	var q openSet
	heap.Init(&q)
	for _, it := range items {
		heap.Push(&q, it)
	}

	want := []gridgraph.Position{at(3, 0), at(0, 3), at(1, 1), at(0, 0), at(2, 2)}
	for i, w := range want {
		got := heap.Pop(&q).(*openItem)
		assert.Equal(t, w, got.pos, "pop %d", i)
		assert.Equal(t, -1, got.index)
	}
}

// TestOpenSet_Fix moves an improved entry to the front in place.
func TestOpenSet_Fix(t *testing.T) {
	var q openSet
	a := &openItem{pos: gridgraph.Position{Row: 0}, g: 3}
	b := &openItem{pos: gridgraph.Position{Row: 1}, g: 9}
	heap.Push(&q, a)
	heap.Push(&q, b)

	b.g = 1
	heap.Fix(&q, b.index)
	assert.Same(t, b, heap.Pop(&q).(*openItem))
}

// TestReconstructPath_Unrooted treats a goal not linked to start as a bug.
func TestReconstructPath_Unrooted(t *testing.T) {
	hm, err := gridgraph.NewHeightMap([][]int{{0, 0, 25}}, gridgraph.Position{}, gridgraph.Position{Col: 2})
	require.NoError(t, err)

	cameFrom := pathutil.Fill(hm.Len(), pathutil.None)
	cameFrom[2] = 1
	assert.Panics(t, func() { reconstructPath(hm, cameFrom, hm.Start(), hm.End()) })

	cameFrom[1] = 0
	got := reconstructPath(hm, cameFrom, hm.Start(), hm.End())
	assert.Equal(t, []gridgraph.Position{{Col: 0}, {Col: 1}, {Col: 2}}, got)
}

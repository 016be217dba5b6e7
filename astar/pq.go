package astar

import "github.com/katalvlaran/hillclimb/gridgraph"

// openItem is a frontier cell. index is its slot in openSet, kept current by
// Swap so that a key decrease can be applied in place with heap.Fix.
type openItem struct {
	pos   gridgraph.Position
	cell  int // row-major index
	g, h  int
	index int
}

// openSet is an indexed min-heap ordered by f = g + h, then by h (the cell
// closer to the goal first), then lexicographically by (row, col).
type openSet []*openItem

func (q openSet) Len() int { return len(q) }

func (q openSet) Less(i, j int) bool {
	fi, fj := q[i].g+q[i].h, q[j].g+q[j].h
	if fi != fj {
		return fi < fj
	}
	if q[i].h != q[j].h {
		return q[i].h < q[j].h
	}

	return q[i].pos.Less(q[j].pos)
}

func (q openSet) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *openSet) Push(x any) {
	it := x.(*openItem)
	it.index = len(*q)
	*q = append(*q, it)
}

func (q *openSet) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*q = old[:n-1]

	return it
}

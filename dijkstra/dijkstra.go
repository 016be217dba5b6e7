// Package dijkstra implements Dijkstra's shortest-path algorithm on
// gridgraph height maps under an arbitrary traversal Policy.
//
// Notes on implementation choices:
//
//   - We treat any step the Policy rejects as an impassable wall.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We stop after the first settled Targets cell, once every other target at
//     the same distance has been settled too.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/hillclimb/gridgraph"
	"github.com/katalvlaran/hillclimb/internal/pathutil"
)

// Dijkstra computes shortest distances from Options.Source to every cell of hm
// reachable under policy, or until a Targets cell is settled.
//
// Preconditions and validation (in order):
//  1. Source must be supplied (ErrEmptySource).
//  2. hm must be non-nil (ErrNilGrid).
//  3. policy must be non-nil (ErrNilPolicy).
//  4. Source must lie inside hm (ErrSourceOutOfBounds).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(hm *gridgraph.HeightMap, policy gridgraph.Policy, opts ...Option) (*Tree, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.hasSource {
		return nil, ErrEmptySource
	}
	if hm == nil {
		return nil, ErrNilGrid
	}
	if policy == nil {
		return nil, ErrNilPolicy
	}
	if !hm.InBounds(cfg.Source) {
		return nil, fmt.Errorf("%w: %v", ErrSourceOutOfBounds, cfg.Source)
	}

	n := hm.Len()
	r := &runner{
		hm:      hm,
		policy:  policy,
		options: cfg,
		tree: &Tree{
			Source: cfg.Source,
			hm:     hm,
			dist:   pathutil.Fill(n, Unreachable),
			prev:   pathutil.Fill(n, pathutil.None),
		},
		visited: make([]bool, n),
		targets: make([]bool, n),
		pq:      make(nodePQ, 0, n/4+1),
	}
	for _, t := range cfg.Targets {
		if hm.InBounds(t) {
			r.targets[hm.Index(t)] = true
		}
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.tree, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	hm      *gridgraph.HeightMap
	policy  gridgraph.Policy
	options Options
	tree    *Tree
	visited []bool // cell → distance finalized
	targets []bool // cell → stop when settled
	pq      nodePQ
}

// init sets dist[Source] = 0 and pushes it onto the heap.
func (r *runner) init() {
	src := r.hm.Index(r.options.Source)
	r.tree.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{cell: src, dist: 0})
}

// process repeatedly settles the closest unsettled cell and relaxes its steps.
// Once a target is settled at distance d, only the remaining cells at d are
// settled (without relaxing) so that every target tied at d is reported.
func (r *runner) process() error {
	stop := Unreachable
	for r.pq.Len() > 0 {
		if err := r.options.Ctx.Err(); err != nil {
			return err
		}
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.cell

		// Skip stale heap entry.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance || item.dist > stop {
			break
		}
		r.visited[u] = true
		r.tree.Settled++

		if r.targets[u] {
			p := r.hm.Coordinate(u)
			if !r.tree.Found {
				r.tree.Found, r.tree.Target, stop = true, p, item.dist
			}
			r.tree.Reached = append(r.tree.Reached, p)
			continue
		}
		if r.tree.Found {
			continue
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines every legal step out of u and records strict improvements.
func (r *runner) relax(u int) error {
	from := r.hm.Coordinate(u)
	for _, e := range r.hm.Edges(from, r.policy) {
		if e.Cost <= 0 {
			return fmt.Errorf("%w: %v→%v cost=%d", ErrNonPositiveCost, from, e.To, e.Cost)
		}
		v := r.hm.Index(e.To)
		newDist := r.tree.dist[u] + e.Cost
		if newDist > r.options.MaxDistance || newDist >= r.tree.dist[v] {
			continue
		}
		r.tree.dist[v] = newDist
		r.tree.prev[v] = u
		heap.Push(&r.pq, &nodeItem{cell: v, dist: newDist})
	}

	return nil
}

// DistanceTo returns the distance from Source to p and whether p was reached.
// Cells reached but not settled before an early stop report their tentative distance.
func (t *Tree) DistanceTo(p gridgraph.Position) (int, bool) {
	if !t.hm.InBounds(p) {
		return Unreachable, false
	}
	d := t.dist[t.hm.Index(p)]

	return d, d != Unreachable
}

// PathTo rebuilds the Source→p route. Returns ErrUnreachable if p was not reached.
func (t *Tree) PathTo(p gridgraph.Position) ([]gridgraph.Position, error) {
	if _, ok := t.DistanceTo(p); !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, p)
	}
	cells := pathutil.Reconstruct(t.prev, t.hm.Index(p))
	path := make([]gridgraph.Position, len(cells))
	for i, c := range cells {
		path[i] = t.hm.Coordinate(c)
	}

	return path, nil
}

// nodeItem represents a cell and its tentative distance from the source.
type nodeItem struct {
	cell int // row-major index
	dist int
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by row-major index.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].cell < pq[j].cell
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

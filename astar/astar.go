// Package astar implements A* search on gridgraph height maps.
//
// Notes on implementation choices:
//
//   - Per-call state (g-scores, predecessors, open-set slots) lives in dense
//     slices indexed by the row-major cell index and is discarded on return.
//   - The open set is an indexed binary heap; an improved g-score on a queued
//     cell is applied in place with heap.Fix instead of a linear rescan.
//   - A cell is (re)inserted only on a strict g-score improvement, so the
//     predecessor links always form a tree rooted at the start.
package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/hillclimb/gridgraph"
	"github.com/katalvlaran/hillclimb/internal/pathutil"
)

// unreached is the implicit g-score of a cell never inserted.
const unreached = math.MaxInt

// ctxCheckMask sets how often (every mask+1 expansions) the context is polled.
const ctxCheckMask = 0xff

// FindPath computes a minimum-cost path from start to goal on hm.
//
// Returns:
//
//   - Result with Path[0] == start and Path[len-1] == goal on success.
//   - ErrNilGrid, ErrOutOfBounds, or ErrOptionViolation for invalid input.
//   - ErrNoPath if the goal is unreachable under the policy.
//   - ErrBudgetExceeded if MaxExpansions was exhausted first.
//   - ctx.Err() if the context was cancelled.
//
// Complexity:
//
//   - Time:  O((V + E) log V), V = cells, E ≤ 4V legal steps.
//   - Space: O(V).
func FindPath(hm *gridgraph.HeightMap, start, goal gridgraph.Position, opts ...Option) (Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}

	return findPath(hm, start, goal, o)
}

func findPath(hm *gridgraph.HeightMap, start, goal gridgraph.Position, o Options) (Result, error) {
	if hm == nil {
		return Result{}, ErrNilGrid
	}
	if !hm.InBounds(start) {
		return Result{}, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if !hm.InBounds(goal) {
		return Result{}, fmt.Errorf("%w: goal %v", ErrOutOfBounds, goal)
	}

	r := newRunner(hm, goal, o)
	r.init(start)

	return r.process(start)
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	hm       *gridgraph.HeightMap
	opts     Options
	goal     gridgraph.Position
	g        []int       // cell → best known cost from start
	cameFrom []int       // cell → predecessor cell on the best known path
	slots    []*openItem // cell → its open-set entry, nil when not queued
	open     openSet
	expanded int
}

func newRunner(hm *gridgraph.HeightMap, goal gridgraph.Position, o Options) *runner {
	n := hm.Len()

	return &runner{
		hm:       hm,
		opts:     o,
		goal:     goal,
		g:        pathutil.Fill(n, unreached),
		cameFrom: pathutil.Fill(n, pathutil.None),
		slots:    make([]*openItem, n),
		open:     make(openSet, 0, 64),
	}
}

// init seeds the open set with start at g = 0.
func (r *runner) init(start gridgraph.Position) {
	cell := r.hm.Index(start)
	r.g[cell] = 0
	heap.Init(&r.open)
	r.push(start, cell, 0)
}

// process is the main loop: pop the minimal-f cell, stop at the goal,
// otherwise relax every legal step out of it.
func (r *runner) process(start gridgraph.Position) (Result, error) {
	goalCell := r.hm.Index(r.goal)
	for r.open.Len() > 0 {
		if r.expanded&ctxCheckMask == 0 {
			if err := r.opts.Ctx.Err(); err != nil {
				return Result{Expanded: r.expanded, Source: start}, err
			}
		}

		cur := heap.Pop(&r.open).(*openItem)
		r.slots[cur.cell] = nil
		if cur.cell == goalCell {
			return Result{
				Path:     reconstructPath(r.hm, r.cameFrom, start, r.goal),
				Cost:     r.g[goalCell],
				Expanded: r.expanded,
				Source:   start,
			}, nil
		}

		if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
			return Result{Expanded: r.expanded, Source: start},
				fmt.Errorf("%w: %d expansions from %v", ErrBudgetExceeded, r.expanded, start)
		}
		r.expanded++
		r.relax(cur)
	}

	return Result{Expanded: r.expanded, Source: start}, ErrNoPath
}

// relax offers every legal step out of cur and records strict improvements.
func (r *runner) relax(cur *openItem) {
	for _, e := range r.hm.Edges(cur.pos, r.opts.Policy) {
		tentative := r.g[cur.cell] + e.Cost
		next := r.hm.Index(e.To)
		if tentative >= r.g[next] {
			continue
		}
		r.cameFrom[next] = cur.cell
		r.g[next] = tentative
		if it := r.slots[next]; it != nil {
			it.g = tentative
			heap.Fix(&r.open, it.index)
			continue
		}
		r.push(e.To, next, tentative)
	}
}

func (r *runner) push(p gridgraph.Position, cell, g int) {
	it := &openItem{pos: p, cell: cell, g: g, h: r.opts.Heuristic(p, r.goal)}
	r.slots[cell] = it
	heap.Push(&r.open, it)
}

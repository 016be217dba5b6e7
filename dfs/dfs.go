// Package dfs implements depth-first search (single-source and forest) on a
// gridgraph.HeightMap under a traversal Policy, with cancellation, pre- and
// post-order hooks, depth and neighbor limits, full-grid traversal, and
// diagnostics.
//
// Key features:
//   - DFS(hm, start, opts...): traverse from a root or the full forest via WithFullTraversal
//   - Reachability: with gridgraph.Reversed(policy), Visited answers "can this cell reach start?"
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E) for traversal (V = cells, E ≤ 4V legal steps), plus overhead of hooks and filters.
//   - Memory: O(V) for the frame stack and metadata maps.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/gridgraph"
)

// frame is one cell on the explicit DFS stack.
type frame struct {
	pos   gridgraph.Position
	depth int
	edges []gridgraph.Edge
	next  int // index into edges of the next step to try
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	hm    *gridgraph.HeightMap
	opts  DFSOptions
	res   *DFSResult
	stack []frame
}

// DFS performs depth-first search on hm. If opts include WithFullTraversal,
// it covers every cell in row-major root order; otherwise, it starts only
// from start. Returns DFSResult or error if aborted by context or hook.
func DFS(hm *gridgraph.HeightMap, start gridgraph.Position, opts ...Option) (*DFSResult, error) {
	// 1. Validate input grid
	if hm == nil {
		return nil, ErrGridNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify start
	if !dopts.FullTraversal && !hm.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}

	// 4. Initialize result with capacity hint
	n := hm.Len()
	res := &DFSResult{
		Order:   make([]gridgraph.Position, 0, n),
		Depth:   make(map[gridgraph.Position]int, n),
		Parent:  make(map[gridgraph.Position]gridgraph.Position, n),
		visited: make([]bool, n),
		hm:      hm,
	}
	walker := &dfsWalker{hm: hm, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	if dopts.FullTraversal {
		for i := 0; i < n; i++ {
			if !res.visited[i] {
				if err := walker.traverse(hm.Coordinate(i)); err != nil {
					return res, err
				}
			}
		}
	} else if err := walker.traverse(start); err != nil {
		return res, err
	}

	// 6. Expose diagnostics
	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

// traverse runs one DFS tree rooted at root. It uses an explicit frame stack
// so that a snake-shaped grid of any size cannot exhaust the goroutine stack.
func (w *dfsWalker) traverse(root gridgraph.Position) error {
	w.res.Roots = append(w.res.Roots, root)
	if err := w.discover(root, 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			w.res.Order = nil
			return w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]

		// 2. All steps tried: finish the cell
		if top.next == len(top.edges) {
			if err := w.finish(top.pos); err != nil {
				return err
			}
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}

		// 3. Try the next step
		to := top.edges[top.next].To
		top.next++
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(to) {
			w.opts.SkippedNeighbors++
			continue
		}
		if w.res.visited[w.hm.Index(to)] {
			continue
		}
		w.res.Parent[to] = top.pos
		if err := w.discover(to, top.depth+1); err != nil {
			return err
		}
	}

	return nil
}

// discover marks p visited, runs the pre-order hook and pushes its frame.
// Cells past MaxDepth are marked and finished without expanding their steps.
func (w *dfsWalker) discover(p gridgraph.Position, depth int) error {
	w.res.visited[w.hm.Index(p)] = true
	w.res.Depth[p] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(p); err != nil {
			// abort and clear post-order
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %v: %w", p, err)
		}
	}

	var edges []gridgraph.Edge
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		edges = w.hm.Edges(p, w.opts.Policy)
	}
	w.stack = append(w.stack, frame{pos: p, depth: depth, edges: edges})

	return nil
}

// finish runs the post-order hook and records p in Order.
func (w *dfsWalker) finish(p gridgraph.Position) error {
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(p); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %v: %w", p, err)
		}
	}
	w.res.Order = append(w.res.Order, p)

	return nil
}

// Package bfs provides breadth-first search over a gridgraph.HeightMap,
// returning step-count distances, parent links, and visit order.
//
// BFS explores cells in increasing distance from a start cell,
// with an optional visit hook, depth limiting, and a pluggable Policy.
// It makes no use of step costs or heuristics, which makes it a
// brute-force reference for the informed searches.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hillclimb/gridgraph"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	pos   gridgraph.Position
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	hm      *gridgraph.HeightMap
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on hm starting from start,
// applying any number of functional Options.
// Returns ErrGridNil or ErrStartOutOfBounds for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(hm *gridgraph.HeightMap, start gridgraph.Position, opts ...Option) (*BFSResult, error) {
	if hm == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !hm.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}

	n := hm.Len()
	w := &walker{
		hm:      hm,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]gridgraph.Position, 0, n),
			Depth:  make(map[gridgraph.Position]int, n),
			Parent: make(map[gridgraph.Position]gridgraph.Position, n),
		},
	}

	// Seed queue with start cell (no parent)
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks p visited at depth d and adds it to the queue.
func (w *walker) enqueue(p gridgraph.Position, d int) {
	w.visited[w.hm.Index(p)] = true
	w.res.Depth[p] = d
	w.queue = append(w.queue, queueItem{pos: p, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.pos)
	if err := w.opts.OnVisit(item.pos, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.pos, err)
	}

	return nil
}

// enqueueNeighbors applies the policy and MaxDepth and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, e := range w.hm.Edges(item.pos, w.opts.Policy) {
		if !w.visited[w.hm.Index(e.To)] {
			w.res.Parent[e.To] = item.pos
			w.enqueue(e.To, nextDepth)
		}
	}
}

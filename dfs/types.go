// Package dfs defines types and options for depth-first search traversal
// over a gridgraph.HeightMap, including cancellation, pre-/post-order hooks,
// depth limiting, neighbor filtering, full-grid (forest) traversal, and
// basic diagnostics.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/hillclimb/gridgraph"
)

var (
	// ErrGridNil is returned when a nil *gridgraph.HeightMap is passed to DFS.
	ErrGridNil = errors.New("dfs: grid is nil")

	// ErrStartOutOfBounds indicates that the start cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("dfs: start cell outside grid")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(hm, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// It controls hooks, limits, filtering, full-grid mode, and diagnostics.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort DFS early.
	Ctx context.Context

	// Policy decides which steps exist; defaults to the one-rank climb rule.
	Policy gridgraph.Policy

	// OnVisit, if non-nil, is invoked immediately upon discovering a cell (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(p gridgraph.Position) error

	// OnExit, if non-nil, is invoked after all descendants of a cell have
	// been explored (post-order), before appending to result.Order.
	// Returning an error aborts traversal and leaves Order empty.
	OnExit func(p gridgraph.Position) error

	// MaxDepth, if non-negative, limits traversal to the given depth.
	// A depth of 0 visits only the start cell. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each legal step target before descending.
	// Return true to traverse into that cell, false to skip it.
	FilterNeighbor func(p gridgraph.Position) bool

	// FullTraversal, if true, restarts DFS from every unvisited cell in
	// row-major order, covering every region of the grid. Default is false.
	FullTraversal bool

	// SkippedNeighbors tracks how many neighbor cells were skipped
	// due to FilterNeighbor returning false. Useful for diagnostics.
	SkippedNeighbors int
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - the one-rank climb policy
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		Policy:   gridgraph.DefaultPolicy(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPolicy returns an Option that replaces the traversal policy.
// Pass gridgraph.Reversed(p) to collect every cell that can reach the start.
func WithPolicy(p gridgraph.Policy) Option {
	return func(o *DFSOptions) {
		if p != nil {
			o.Policy = p
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
// The hook is called when a cell is first discovered.
func WithOnVisit(fn func(p gridgraph.Position) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
// The hook is called after a cell's descendants have been fully explored.
func WithOnExit(fn func(p gridgraph.Position) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start cell is visited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters step targets.
// If fn(p) == false, that cell is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor(fn func(p gridgraph.Position) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that enables full-grid traversal.
// When set, DFS will restart from each unvisited cell, covering every region.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
// It reports post-order, discovery depths, parent links, and visited flags,
// as well as diagnostics like SkippedNeighbors.
type DFSResult struct {
	// Order records cells in the sequence they finished (post-order).
	Order []gridgraph.Position

	// Depth maps each cell to its tree depth (#steps along DFS parent links)
	// from the root of its tree. It is not a shortest distance.
	Depth map[gridgraph.Position]int

	// Parent maps each cell to the cell from which it was first discovered.
	// Roots do not appear in this map.
	Parent map[gridgraph.Position]gridgraph.Position

	// Roots lists the cell each DFS tree was started from, in start order.
	Roots []gridgraph.Position

	// SkippedNeighbors reports how many cells were skipped
	// due to FilterNeighbor returning false, aggregated across all trees.
	SkippedNeighbors int

	visited []bool
	hm      *gridgraph.HeightMap
}

// Visited reports whether p was reached during the traversal.
func (r *DFSResult) Visited(p gridgraph.Position) bool {
	return r.hm.InBounds(p) && r.visited[r.hm.Index(p)]
}

// Count returns the number of visited cells.
func (r *DFSResult) Count() int {
	return len(r.Depth)
}

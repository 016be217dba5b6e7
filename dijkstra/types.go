// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on gridgraph height maps.
//
// Options:
//
//	– Source:      starting cell (required, must lie inside the grid).
//	– MaxDistance: optional cap on distances to explore; cells beyond are skipped.
//	– Targets:     optional stop set; the search ends at the first one's distance.
//	– Ctx:         cancellation, polled between settlements.
//
// Errors (sentinel):
//
//	– ErrEmptySource       if no Source option was supplied.
//	– ErrNilGrid           if the provided height map pointer is nil.
//	– ErrNilPolicy         if the provided policy is nil.
//	– ErrSourceOutOfBounds if Source lies outside the grid.
//	– ErrNonPositiveCost   if the policy reports a legal step with cost ≤ 0.
//	– ErrUnreachable       from Tree.PathTo for a cell never reached.
//	– ErrBadMaxDistance    (panic) if MaxDistance < 0.
package dijkstra

import (
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/hillclimb/gridgraph"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that no source cell was provided.
	ErrEmptySource = errors.New("dijkstra: source cell not set")

	// ErrNilGrid indicates that a nil *gridgraph.HeightMap was passed to Dijkstra.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrNilPolicy indicates that a nil gridgraph.Policy was passed to Dijkstra.
	ErrNilPolicy = errors.New("dijkstra: policy is nil")

	// ErrSourceOutOfBounds indicates that the source cell lies outside the grid.
	ErrSourceOutOfBounds = errors.New("dijkstra: source cell outside grid")

	// ErrNonPositiveCost indicates that the policy produced a zero or negative step cost.
	ErrNonPositiveCost = errors.New("dijkstra: non-positive step cost encountered")

	// ErrUnreachable indicates that a path was requested to a cell the search never reached.
	ErrUnreachable = errors.New("dijkstra: cell not reached")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Unreachable is the distance reported for cells never reached.
const Unreachable = math.MaxInt

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting cell.
// MaxDistance – cells whose distance would exceed this are not explored.
//
//	Must be ≥ 0. Default is math.MaxInt (no cap).
//
// Targets     – settling any of these cells stops the search.
type Options struct {
	Source      gridgraph.Position
	MaxDistance int
	Targets     []gridgraph.Position
	Ctx         context.Context

	hasSource bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting cell. Must be supplied.
func Source(p gridgraph.Position) Option {
	return func(o *Options) {
		o.Source = p
		o.hasSource = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithTargets stops the search at the distance of the first settled target,
// after settling any other targets at that same distance. Out-of-bounds
// targets are ignored.
func WithTargets(targets ...gridgraph.Position) Option {
	return func(o *Options) {
		o.Targets = append(o.Targets, targets...)
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - no Source (Dijkstra fails with ErrEmptySource unless one is supplied)
//   - MaxDistance: math.MaxInt (no distance limit)
//   - no Targets (settle every reachable cell)
//   - context.Background()
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.MaxInt,
		Ctx:         context.Background(),
	}
}

// Tree is the outcome of a run: a shortest-path tree rooted at Source.
//
//   - Found/Target: set when a Targets cell stopped the search; Target is the
//     first one settled (lowest distance, then row-major order).
//   - Reached: every Targets cell settled at Target's distance, in settle order.
//   - Settled: number of cells whose distance was finalized.
type Tree struct {
	Source  gridgraph.Position
	Found   bool
	Target  gridgraph.Position
	Reached []gridgraph.Position
	Settled int

	hm   *gridgraph.HeightMap
	dist []int
	prev []int
}

// Package astar defines core types and configuration options
// for A* search over a gridgraph.HeightMap.
package astar

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/katalvlaran/hillclimb/gridgraph"
)

// Sentinel errors returned by the search functions.
var (
	// ErrNilGrid indicates that a nil *gridgraph.HeightMap was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOutOfBounds indicates a start, goal, or candidate outside the grid.
	ErrOutOfBounds = errors.New("astar: position outside grid")

	// ErrNoPath indicates the open set was exhausted before the goal was reached.
	// It is a normal outcome, not a failure of the engine.
	ErrNoPath = errors.New("astar: no path found")

	// ErrNoCandidates indicates FindShortestPath was given no start candidates.
	ErrNoCandidates = errors.New("astar: candidate set is empty")

	// ErrBudgetExceeded indicates MaxExpansions was reached before the goal.
	ErrBudgetExceeded = errors.New("astar: expansion budget exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Heuristic estimates the remaining cost from a position to the goal.
// It must never overestimate for the returned path to be optimal.
type Heuristic func(from, to gridgraph.Position) int

// Manhattan is the 4-connected grid distance |Δrow| + |Δcol|.
// It is admissible and consistent whenever every legal step costs at least 1.
func Manhattan(from, to gridgraph.Position) int {
	return abs(from.Row-to.Row) + abs(from.Col-to.Col)
}

// Zero turns A* into uniform-cost search.
func Zero(_, _ gridgraph.Position) int { return 0 }

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// Strategy selects how FindShortestPath handles several start candidates.
type Strategy int

const (
	// StrategyIndependent runs one A* search per candidate, concurrently,
	// and keeps the cheapest successful result.
	StrategyIndependent Strategy = iota

	// StrategyReverse runs a single uniform-cost search rooted at the goal over
	// reversed edges and stops at the first candidate it settles.
	StrategyReverse
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategyIndependent:
		return "independent"
	case StrategyReverse:
		return "reverse"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps "independent" or "reverse" (case-insensitive) to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "independent":
		return StrategyIndependent, nil
	case "reverse":
		return StrategyReverse, nil
	}

	return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, s)
}

// Options configures a search.
//
// Ctx           – checked between expansions; cancellation aborts with ctx.Err().
// Policy        – decides legal steps and their cost.
// Heuristic     – remaining-cost estimate; Manhattan by default.
// MaxExpansions – per-search budget; 0 disables the limit.
// Workers       – concurrent searches in StrategyIndependent.
// Strategy      – multi-source strategy.
type Options struct {
	Ctx           context.Context
	Policy        gridgraph.Policy
	Heuristic     Heuristic
	MaxExpansions int
	Workers       int
	Strategy      Strategy

	// internal error recorded during option parsing
	err error
}

// Option configures a search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// DefaultOptions returns Options with defaults:
//   - context.Background()
//   - the one-rank climb policy
//   - Manhattan heuristic
//   - no expansion budget
//   - runtime.NumCPU() workers
//   - StrategyIndependent
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Policy:    gridgraph.DefaultPolicy(),
		Heuristic: Manhattan,
		Workers:   runtime.NumCPU(),
		Strategy:  StrategyIndependent,
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

// WithPolicy replaces the traversal policy.
func WithPolicy(p gridgraph.Policy) Option {
	return func(o *Options) {
		if p != nil {
			o.Policy = p
		}
	}
}

// WithHeuristic replaces the heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithMaxExpansions bounds the number of expanded cells per search.
//
//	n > 0: budget of n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithWorkers bounds the number of concurrent candidate searches.
// n must be positive.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithStrategy selects the multi-source strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != StrategyIndependent && s != StrategyReverse {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Result holds the outcome of a successful search.
//
//   - Path: positions from Source to the goal inclusive.
//   - Cost: sum of step costs along Path (equal to Steps under ClimbPolicy).
//   - Expanded: cells expanded; summed over all searches in multi-source runs.
//   - Source: the start of Path.
type Result struct {
	Path     []gridgraph.Position
	Cost     int
	Expanded int
	Source   gridgraph.Position
}

// Steps returns the number of moves along Path, len(Path)-1.
func (r Result) Steps() int {
	return len(r.Path) - 1
}

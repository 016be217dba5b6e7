package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/hillclimb/gridgraph"
)

// Sentinel errors; Build wraps them with the failing method and its arguments.
var (
	// ErrTooFewCells indicates rows or cols below one.
	ErrTooFewCells = errors.New("builder: grid dimension too small")

	// ErrBadRank indicates a rank outside [gridgraph.MinRank, gridgraph.MaxRank].
	ErrBadRank = errors.New("builder: rank out of range")

	// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrMarkerOutOfBounds indicates a WithStart/WithEnd position outside the grid.
	ErrMarkerOutOfBounds = errors.New("builder: marker outside grid")
)

// Method tags used in wrapped errors.
const (
	methodBuild  = "Build"
	methodFlat   = "Flat"
	methodRandom = "Random"
)

// unset marks a marker position that Build resolves from the grid size.
var unset = gridgraph.Position{Row: -1, Col: -1}

// config aggregates every knob used by Build and the constructors.
// It is passed by value to constructors.
type config struct {
	rng    *rand.Rand
	spread int
	start  gridgraph.Position
	end    gridgraph.Position
}

// Option customizes Build by mutating a config before construction begins.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{
		spread: gridgraph.MaxRank + 1,
		start:  unset,
		end:    unset,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed attaches a new source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches an existing source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}

// WithSpread sets the number of distinct ranks Random draws from, [0, n).
// Panics unless 1 ≤ n ≤ gridgraph.MaxRank+1.
func WithSpread(n int) Option {
	if n < 1 || n > gridgraph.MaxRank+1 {
		panic(fmt.Sprintf("builder: WithSpread(%d) outside [1,%d]", n, gridgraph.MaxRank+1))
	}

	return func(c *config) {
		c.spread = n
	}
}

// WithStart places the start marker; the default is the top-left cell.
func WithStart(p gridgraph.Position) Option {
	return func(c *config) {
		c.start = p
	}
}

// WithEnd places the end marker; the default is the bottom-right cell.
func WithEnd(p gridgraph.Position) Option {
	return func(c *config) {
		c.end = p
	}
}

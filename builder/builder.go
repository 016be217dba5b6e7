package builder

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/gridgraph"
)

// Constructor fills a pre-allocated rank matrix. It must validate its own
// parameters and return a sentinel error rather than panic.
type Constructor func(ranks [][]int, cfg config) error

// Build allocates a rows×cols map, applies con, places the markers at
// MinRank (start) and MaxRank (end), and returns the validated HeightMap.
// The result survives a String/Parse round trip unchanged.
//
// Complexity: O(rows*cols) time and space plus the constructor's own cost.
func Build(rows, cols int, con Constructor, opts ...Option) (*gridgraph.HeightMap, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%s(%d,%d): %w", methodBuild, rows, cols, ErrTooFewCells)
	}
	cfg := newConfig(opts...)

	ranks := make([][]int, rows)
	for r := range ranks {
		ranks[r] = make([]int, cols)
	}
	if err := con(ranks, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	start, end := cfg.start, cfg.end
	if start == unset {
		start = gridgraph.Position{}
	}
	if end == unset {
		end = gridgraph.Position{Row: rows - 1, Col: cols - 1}
	}
	for _, p := range []gridgraph.Position{start, end} {
		if p.Row < 0 || p.Row >= rows || p.Col < 0 || p.Col >= cols {
			return nil, fmt.Errorf("%s: %v in %dx%d: %w", methodBuild, p, cols, rows, ErrMarkerOutOfBounds)
		}
	}
	// Markers carry the ranks Parse gives 'S' and 'E'.
	ranks[start.Row][start.Col] = gridgraph.MinRank
	ranks[end.Row][end.Col] = gridgraph.MaxRank

	hm, err := gridgraph.NewHeightMap(ranks, start, end)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	return hm, nil
}

// Flat sets every cell to rank.
func Flat(rank int) Constructor {
	return func(ranks [][]int, _ config) error {
		if rank < gridgraph.MinRank || rank > gridgraph.MaxRank {
			return fmt.Errorf("%s(%d): %w", methodFlat, rank, ErrBadRank)
		}
		for r := range ranks {
			for c := range ranks[r] {
				ranks[r][c] = rank
			}
		}

		return nil
	}
}

// Slope ranks cell (r,c) as (r+c)*MaxRank/span, span = max(rows+cols-2, MaxRank).
// Neighbors differ by at most one rank. When rows+cols-2 ≥ MaxRank the corner
// already sits at MaxRank, so the default end is reachable from every cell;
// smaller maps top out below it and the forced end rank walls the corner off.
func Slope() Constructor {
	return func(ranks [][]int, _ config) error {
		rows, cols := len(ranks), len(ranks[0])
		span := rows + cols - 2
		if span < gridgraph.MaxRank {
			span = gridgraph.MaxRank
		}
		for r := range ranks {
			for c := range ranks[r] {
				ranks[r][c] = (r + c) * gridgraph.MaxRank / span
			}
		}

		return nil
	}
}

// Random draws every rank uniformly from [0, spread) in row-major order.
func Random() Constructor {
	return func(ranks [][]int, cfg config) error {
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}
		for r := range ranks {
			for c := range ranks[r] {
				ranks[r][c] = cfg.rng.Intn(cfg.spread)
			}
		}

		return nil
	}
}

// ByName maps a constructor name used on the command line to a Constructor.
// Known names are "flat", "slope" and "random"; rank only applies to "flat".
func ByName(name string, rank int) (Constructor, bool) {
	switch name {
	case "flat":
		return Flat(rank), true
	case "slope":
		return Slope(), true
	case "random":
		return Random(), true
	}

	return nil, false
}

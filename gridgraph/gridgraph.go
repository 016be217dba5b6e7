// Package gridgraph provides utilities to treat a 2D elevation map as a graph.
// It supports:
//
//   - Four-connectivity (up, left, down, right)
//   - Marker lookup for the designated start and end cells
//   - Predicate scans over elevation ranks
//   - A pluggable traversal Policy deciding which steps are legal
//
// Cells hold ranks 0..25 ('a'..'z'); the start cell ranks as 'a', the end cell as 'z'.
package gridgraph

import "fmt"

// NewHeightMap constructs a HeightMap from a non-empty, rectangular 2D slice of ranks.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrBadElevation if a rank
// lies outside MinRank..MaxRank, ErrMissingStart/ErrMissingEnd if a marker
// lies outside the grid, and ErrMarkerRank unless start is at MinRank and end
// at MaxRank, the ranks Parse gives 'S' and 'E'. start and end may coincide,
// in which case the shared cell may hold any rank.
// Algorithmic complexity: O(W×H) time and memory.
func NewHeightMap(ranks [][]int, start, end Position) (*HeightMap, error) {
	if len(ranks) == 0 || len(ranks[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(ranks), len(ranks[0])
	cells := make([]int, 0, w*h)
	for y, row := range ranks {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, r := range row {
			if r < MinRank || r > MaxRank {
				return nil, fmt.Errorf("%w: rank %d at %v", ErrBadElevation, r, Position{y, x})
			}
		}
		cells = append(cells, row...)
	}
	hm := &HeightMap{Width: w, Height: h, ranks: cells, start: start, end: end}
	if !hm.InBounds(start) {
		return nil, fmt.Errorf("%w: %v outside %dx%d grid", ErrMissingStart, start, h, w)
	}
	if !hm.InBounds(end) {
		return nil, fmt.Errorf("%w: %v outside %dx%d grid", ErrMissingEnd, end, h, w)
	}
	if start != end {
		if r := hm.HeightAt(start); r != MinRank {
			return nil, fmt.Errorf("%w: start %v has rank %d, want %d", ErrMarkerRank, start, r, MinRank)
		}
		if r := hm.HeightAt(end); r != MaxRank {
			return nil, fmt.Errorf("%w: end %v has rank %d, want %d", ErrMarkerRank, end, r, MaxRank)
		}
	}

	return hm, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (hm *HeightMap) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < hm.Height && p.Col >= 0 && p.Col < hm.Width
}

// Len returns the number of cells.
func (hm *HeightMap) Len() int {
	return hm.Width * hm.Height
}

// HeightAt returns the elevation rank of p.
// It panics with ErrInvalidPosition if p is out of bounds.
func (hm *HeightMap) HeightAt(p Position) int {
	if !hm.InBounds(p) {
		panic(fmt.Errorf("%w: %v in %dx%d grid", ErrInvalidPosition, p, hm.Height, hm.Width))
	}

	return hm.ranks[hm.Index(p)]
}

// Neighbors returns the up to four in-bounds positions orthogonally adjacent to p,
// in the order up, left, down, right. Edge and corner cells yield fewer.
// Complexity: O(1).
func (hm *HeightMap) Neighbors(p Position) []Position {
	out := make([]Position, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Position{p.Row + d[0], p.Col + d[1]}
		if hm.InBounds(n) {
			out = append(out, n)
		}
	}

	return out
}

// FindMarker returns the position of the start or end marker.
func (hm *HeightMap) FindMarker(kind Marker) Position {
	if kind == MarkerEnd {
		return hm.end
	}

	return hm.start
}

// Start is shorthand for FindMarker(MarkerStart).
func (hm *HeightMap) Start() Position { return hm.start }

// End is shorthand for FindMarker(MarkerEnd).
func (hm *HeightMap) End() Position { return hm.end }

// FindAll returns every position whose rank satisfies pred, in row-major order.
// Complexity: O(W×H).
func (hm *HeightMap) FindAll(pred func(rank int) bool) []Position {
	var out []Position
	for i, r := range hm.ranks {
		if pred(r) {
			out = append(out, hm.Coordinate(i))
		}
	}

	return out
}

// Lowest returns the minimal rank present in the grid.
func (hm *HeightMap) Lowest() int {
	low := MaxRank
	for _, r := range hm.ranks {
		if r < low {
			low = r
		}
	}

	return low
}

// Candidates returns the multi-source start set: the start marker first,
// followed by every other cell at the lowest rank in row-major order.
func (hm *HeightMap) Candidates() []Position {
	low := hm.Lowest()
	out := []Position{hm.start}
	for _, p := range hm.FindAll(func(r int) bool { return r == low }) {
		if p != hm.start {
			out = append(out, p)
		}
	}

	return out
}

// Rune renders the cell at p back to its input character.
func (hm *HeightMap) Rune(p Position) rune {
	switch p {
	case hm.start:
		return StartRune
	case hm.end:
		return EndRune
	}

	return rune('a' + hm.HeightAt(p))
}

// Index maps p to a row-major index: Row*Width + Col.
// Complexity: O(1).
func (hm *HeightMap) Index(p Position) int {
	return p.Row*hm.Width + p.Col
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (hm *HeightMap) Coordinate(idx int) Position {
	return Position{Row: idx / hm.Width, Col: idx % hm.Width}
}

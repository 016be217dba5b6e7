// Package gridgraph defines core types, the traversal policy, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/hillclimb.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph construction.
var (
	// ErrMalformedGrid is wrapped by every construction error below.
	ErrMalformedGrid = errors.New("gridgraph: malformed grid")

	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: input grid must have at least one row and one column", ErrMalformedGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedGrid)
	// ErrBadElevation indicates a cell outside 'a'..'z' (or a rank outside 0..MaxRank).
	ErrBadElevation = fmt.Errorf("%w: elevation out of range", ErrMalformedGrid)
	// ErrMissingStart indicates no start marker was found.
	ErrMissingStart = fmt.Errorf("%w: missing start marker", ErrMalformedGrid)
	// ErrDuplicateStart indicates more than one start marker was found.
	ErrDuplicateStart = fmt.Errorf("%w: duplicate start marker", ErrMalformedGrid)
	// ErrMissingEnd indicates no end marker was found.
	ErrMissingEnd = fmt.Errorf("%w: missing end marker", ErrMalformedGrid)
	// ErrDuplicateEnd indicates more than one end marker was found.
	ErrDuplicateEnd = fmt.Errorf("%w: duplicate end marker", ErrMalformedGrid)
	// ErrMarkerRank indicates a start cell not at MinRank or an end cell not at MaxRank.
	ErrMarkerRank = fmt.Errorf("%w: marker cell has the wrong rank", ErrMalformedGrid)

	// ErrInvalidPosition is the panic value for out-of-bounds lookups.
	// It signals a bug in the caller, never bad input.
	ErrInvalidPosition = errors.New("gridgraph: position out of bounds")
)

const (
	// MinRank is the elevation rank of 'a' and of the start marker.
	MinRank = 0
	// MaxRank is the elevation rank of 'z' and of the end marker.
	MaxRank = 25

	// StartRune and EndRune are the marker characters of the input format.
	StartRune = 'S'
	EndRune   = 'E'
)

// Marker selects one of the two designated cells.
type Marker int

const (
	// MarkerStart is the cell written as 'S'.
	MarkerStart Marker = iota
	// MarkerEnd is the cell written as 'E'.
	MarkerEnd
)

// String implements fmt.Stringer.
func (m Marker) String() string {
	switch m {
	case MarkerStart:
		return "start"
	case MarkerEnd:
		return "end"
	default:
		return fmt.Sprintf("marker(%d)", int(m))
	}
}

// Position addresses a single cell by row and column.
type Position struct {
	Row, Col int
}

// String renders the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Less orders positions lexicographically by (Row, Col).
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}

	return p.Col < q.Col
}

// HeightMap is an immutable rectangular grid of elevation ranks with a
// designated start and end cell. Width and Height define dimensions;
// ranks holds Height×Width values in row-major order.
// A HeightMap is safe for concurrent readers.
type HeightMap struct {
	Width, Height int
	ranks         []int
	start, end    Position
}

// neighborOffsets lists the 4-connected steps: up, left, down, right.
var neighborOffsets = [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}

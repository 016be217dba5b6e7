package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// MaxRowBytes bounds the length of a single input row, line ending included.
const MaxRowBytes = 16 << 20

// Parse reads the character format: one row per line, lowercase 'a'..'z',
// exactly one 'S' (rank of 'a') and exactly one 'E' (rank of 'z').
// Carriage returns and leading or trailing blank lines are ignored.
// A row longer than MaxRowBytes fails with bufio.ErrTooLong.
func Parse(r io.Reader) (*HeightMap, error) {
	var (
		rows          [][]int
		start, end    Position
		nStart, nEnd  int
		width         = -1
		pendingBlanks int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxRowBytes)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			pendingBlanks++
			continue
		}
		if pendingBlanks > 0 && len(rows) > 0 {
			return nil, fmt.Errorf("%w: blank line before row %d", ErrNonRectangular, len(rows))
		}
		pendingBlanks = 0
		row := len(rows)
		if width >= 0 && len(line) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, row, len(line), width)
		}
		width = len(line)
		ranks := make([]int, 0, width)
		for col, c := range []byte(line) {
			switch {
			case c == StartRune:
				nStart++
				start = Position{row, col}
				ranks = append(ranks, MinRank)
			case c == EndRune:
				nEnd++
				end = Position{row, col}
				ranks = append(ranks, MaxRank)
			case c >= 'a' && c <= 'z':
				ranks = append(ranks, int(c-'a'))
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrBadElevation, c, Position{row, col})
			}
		}
		rows = append(rows, ranks)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read grid: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	switch {
	case nStart == 0:
		return nil, ErrMissingStart
	case nStart > 1:
		return nil, fmt.Errorf("%w: found %d", ErrDuplicateStart, nStart)
	case nEnd == 0:
		return nil, ErrMissingEnd
	case nEnd > 1:
		return nil, fmt.Errorf("%w: found %d", ErrDuplicateEnd, nEnd)
	}

	return NewHeightMap(rows, start, end)
}

// ParseString is Parse over a string.
func ParseString(s string) (*HeightMap, error) {
	return Parse(strings.NewReader(s))
}

// String renders the grid back into the character format.
func (hm *HeightMap) String() string {
	var b strings.Builder
	b.Grow(hm.Len() + hm.Height)
	for y := 0; y < hm.Height; y++ {
		for x := 0; x < hm.Width; x++ {
			b.WriteRune(hm.Rune(Position{y, x}))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

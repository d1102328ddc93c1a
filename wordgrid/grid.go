package wordgrid

import (
	"strings"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D byte slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if rows is empty or the first row is empty,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGrid(rows [][]byte) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]byte, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]byte, w)
		copy(cells[r], rows[r])
	}

	return &Grid{Width: w, Height: h, cells: cells}, nil
}

// ParseGrid builds a Grid from text with one row per line.
// Trailing whitespace of the whole text and of every line (including a
// Windows "\r") is dropped; every remaining byte is one cell.
func ParseGrid(text string) (*Grid, error) {
	text = strings.TrimRight(text, " \t\r\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")
	rows := make([][]byte, len(lines))
	for i, line := range lines {
		rows[i] = []byte(strings.TrimRight(line, " \t\r"))
	}

	return NewGrid(rows)
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Col >= 0 && p.Col < g.Width
}

// At returns the byte stored at p. The caller must ensure InBounds(p).
func (g *Grid) At(p Point) byte {
	return g.cells[p.Row][p.Col]
}

// String renders the grid back to newline-separated text.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for r, row := range g.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(row)
	}

	return sb.String()
}

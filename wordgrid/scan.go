package wordgrid

import "fmt"

// Line is one straight run of cells: Len cells starting at Start, each
// step moving by Dir.
type Line struct {
	Start Point
	Dir   Point
	Len   int
}

// End returns the last cell of the line.
func (l Line) End() Point {
	return Point{Row: l.Start.Row + l.Dir.Row*(l.Len-1), Col: l.Start.Col + l.Dir.Col*(l.Len-1)}
}

// CountAxisMatches walks length cells from start, stepping by dir, and counts
// the steps at which the sliding window of the last set.Width() bytes equals
// a pattern in set. Overlapping matches are all counted, and a window adds one
// per pattern in set that equals it.
// The walk stops early when the next cell is outside the grid.
// Complexity: O(length × |set|) time, O(1) memory.
func CountAxisMatches(g *Grid, start, dir Point, length int, set PatternSet) int {
	var (
		window Pattern // newest byte in the low 8 bits
		filled int     // bytes currently in window, capped at width
		count  int
	)
	width, mask := set.Width(), set.Mask()
	p := start
	for i := 0; i < length; i++ {
		if !g.InBounds(p) {
			break
		}
		window = (window<<8 | Pattern(g.At(p))) & mask
		if filled < width {
			filled++
		}
		if filled == width {
			count += set.Matches(window)
		}
		p = p.Add(dir)
	}

	return count
}

// Lines enumerates every maximal line of the grid along dir that holds at
// least minLen cells. dir must be one of East, South, SouthEast, SouthWest;
// any other direction yields nil.
//
//	East:      one line per row, starting in column 0.
//	South:     one line per column, starting in row 0.
//	SouthEast: starts on the left edge, then along the top edge from column 1.
//	SouthWest: starts on the top edge, then down the right edge from row 1.
func Lines(g *Grid, dir Point, minLen int) []Line {
	var out []Line
	add := func(start Point, n int) {
		if n >= minLen && n > 0 {
			out = append(out, Line{Start: start, Dir: dir, Len: n})
		}
	}
	switch dir {
	case East:
		for r := 0; r < g.Height; r++ {
			add(Point{r, 0}, g.Width)
		}
	case South:
		for c := 0; c < g.Width; c++ {
			add(Point{0, c}, g.Height)
		}
	case SouthEast:
		for r := 0; r < g.Height; r++ {
			add(Point{r, 0}, min(g.Height-r, g.Width))
		}
		for c := 1; c < g.Width; c++ {
			add(Point{0, c}, min(g.Height, g.Width-c))
		}
	case SouthWest:
		for c := 0; c < g.Width; c++ {
			add(Point{0, c}, min(g.Height, c+1))
		}
		for r := 1; r < g.Height; r++ {
			add(Point{r, g.Width - 1}, min(g.Height-r, g.Width))
		}
	}

	return out
}

// CountLines sums CountAxisMatches over every line (of length at least
// set.Width()) along the configured axes.
func CountLines(g *Grid, set PatternSet, opts ...ScanOption) int {
	o := defaultScanOptions()
	for _, opt := range opts {
		opt(&o)
	}
	total := 0
	for _, dir := range o.axes {
		for _, l := range Lines(g, dir, set.Width()) {
			total += CountAxisMatches(g, l.Start, l.Dir, l.Len, set)
		}
	}

	return total
}

// CountWord counts every occurrence of word in g in all eight directions:
// rows, columns, diagonals and anti-diagonals, each read both ways.
// A palindromic word equals its own reverse, so it is counted twice per
// position, once for each reading direction.
// Returns ErrPatternLength if word cannot be packed.
func CountWord(g *Grid, word string, opts ...ScanOption) (int, error) {
	set, err := Symmetric(word)
	if err != nil {
		return 0, err
	}

	return CountLines(g, set, opts...), nil
}

// CountCross counts interior cells holding pivot whose two diagonals both
// read arms in either direction:
//
//	M . S
//	. A .
//	M . S
//
// is one match for pivot 'A' and arms "MS". arms must be exactly 2 bytes,
// otherwise ErrPatternLength is returned. Border cells never match.
// Complexity: O(W×H).
func CountCross(g *Grid, pivot byte, arms string) (int, error) {
	if len(arms) != 2 {
		return 0, fmt.Errorf("%w: cross arms %q must be 2 bytes", ErrPatternLength, arms)
	}
	set, err := Symmetric(arms)
	if err != nil {
		return 0, err
	}
	count := 0
	for r := 1; r < g.Height-1; r++ {
		for c := 1; c < g.Width-1; c++ {
			if g.cells[r][c] != pivot {
				continue
			}
			diag := Pattern(g.cells[r-1][c-1])<<8 | Pattern(g.cells[r+1][c+1])
			anti := Pattern(g.cells[r-1][c+1])<<8 | Pattern(g.cells[r+1][c-1])
			if set.Contains(diag) && set.Contains(anti) {
				count++
			}
		}
	}

	return count, nil
}

package wordgrid

import "errors"

// Sentinel errors for wordgrid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("wordgrid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("wordgrid: all rows must have the same length")
	// ErrPatternLength indicates a word that cannot be packed, or a set of
	// words whose lengths differ.
	ErrPatternLength = errors.New("wordgrid: pattern length out of range")
)

// MaxPatternLen is the widest word a Pattern can hold.
const MaxPatternLen = 4

// Point identifies a grid cell by (Row, Col). Used with signed components it
// doubles as a step vector.
type Point struct {
	Row, Col int
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Scan directions. Their opposites are covered by scanning for the reversed
// word, so four axes are enough for all eight reading directions.
var (
	East      = Point{0, 1}  // left to right along a row
	South     = Point{1, 0}  // top to bottom along a column
	SouthEast = Point{1, 1}  // diagonal, top-left to bottom-right
	SouthWest = Point{1, -1} // anti-diagonal, top-right to bottom-left
)

// Axes returns the four scan directions in a fixed order.
func Axes() []Point {
	return []Point{East, South, SouthEast, SouthWest}
}

// Grid is an immutable rectangular grid of single-byte characters.
// Width and Height are fixed at construction; use At to read a cell.
type Grid struct {
	Width, Height int
	cells         [][]byte
}

// ScanOption configures CountWord.
type ScanOption func(*scanOptions)

// scanOptions holds the axes CountWord walks; defaults to all four.
type scanOptions struct {
	axes []Point
}

func defaultScanOptions() scanOptions {
	return scanOptions{axes: Axes()}
}

// WithAxes restricts CountWord to the given directions. Directions other than
// East, South, SouthEast and SouthWest are ignored. An empty call leaves the
// default (all four) in place.
func WithAxes(dirs ...Point) ScanOption {
	return func(o *scanOptions) {
		var axes []Point
		for _, d := range dirs {
			switch d {
			case East, South, SouthEast, SouthWest:
				axes = append(axes, d)
			}
		}
		if len(axes) > 0 {
			o.axes = axes
		}
	}
}

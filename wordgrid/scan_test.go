package wordgrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlekit/wordgrid"
)

const exampleGrid = `MMMSXXMASM
MSAMXMSMSA
AMXSXMAAMM
MSAMASMSMX
XMASAMXAMM
XXAMMXXAMA
SMSMSASXSS
SAXAMASAAA
MAMMMXMMMM
MXMXAXMASX
`

func mustGrid(t testing.TB, text string) *wordgrid.Grid {
	t.Helper()
	g, err := wordgrid.ParseGrid(text)
	require.NoError(t, err)

	return g
}

//----------------------------------------------------------------------------//
// CountAxisMatches Tests
//----------------------------------------------------------------------------//

// TestCountAxisMatches_StopsAtBoundary checks that an over-long walk ends at
// the grid edge instead of wrapping around.
func TestCountAxisMatches_StopsAtBoundary(t *testing.T) {
	g := mustGrid(t, "XMAS")
	set, err := wordgrid.NewPatternSet("XMAS")
	require.NoError(t, err)

	assert.Equal(t, 1, wordgrid.CountAxisMatches(g, wordgrid.Point{0, 0}, wordgrid.East, 100, set))
	assert.Equal(t, 0, wordgrid.CountAxisMatches(g, wordgrid.Point{0, 2}, wordgrid.East, 100, set))
	assert.Equal(t, 0, wordgrid.CountAxisMatches(g, wordgrid.Point{0, 0}, wordgrid.East, 3, set))
	assert.Equal(t, 0, wordgrid.CountAxisMatches(g, wordgrid.Point{-1, 0}, wordgrid.East, 4, set))
	// walking west from the last cell reads SAMX
	assert.Equal(t, 0, wordgrid.CountAxisMatches(g, wordgrid.Point{0, 3}, wordgrid.Point{0, -1}, 4, set))
}

// TestCountAxisMatches_Overlapping verifies that overlapping windows all count.
func TestCountAxisMatches_Overlapping(t *testing.T) {
	g := mustGrid(t, "XMASAMX")
	set, err := wordgrid.Symmetric("XMAS")
	require.NoError(t, err)
	assert.Equal(t, 2, wordgrid.CountAxisMatches(g, wordgrid.Point{0, 0}, wordgrid.East, g.Width, set))

	pairs := mustGrid(t, "ABABA")
	ab, err := wordgrid.Symmetric("AB")
	require.NoError(t, err)
	assert.Equal(t, 4, wordgrid.CountAxisMatches(pairs, wordgrid.Point{0, 0}, wordgrid.East, pairs.Width, ab))
}

//----------------------------------------------------------------------------//
// Lines Tests
//----------------------------------------------------------------------------//

// TestLines_Coverage checks the number of lines per axis and that every line
// stays inside the grid.
func TestLines_Coverage(t *testing.T) {
	g := mustGrid(t, "abcde\nfghij\nklmno")
	cases := []struct {
		dir    wordgrid.Point
		minLen int
		want   int
	}{
		{wordgrid.East, 1, 3},
		{wordgrid.South, 1, 5},
		{wordgrid.SouthEast, 1, 7},
		{wordgrid.SouthWest, 1, 7},
		{wordgrid.SouthEast, 3, 3},
		{wordgrid.SouthWest, 3, 3},
		{wordgrid.East, 6, 0},
		{wordgrid.Point{0, -1}, 1, 0},
	}
	for _, tc := range cases {
		lines := wordgrid.Lines(g, tc.dir, tc.minLen)
		assert.Len(t, lines, tc.want, "dir=%v minLen=%d", tc.dir, tc.minLen)
		for _, l := range lines {
			assert.True(t, g.InBounds(l.Start), "start %v", l.Start)
			assert.True(t, g.InBounds(l.End()), "end %v", l.End())
			assert.GreaterOrEqual(t, l.Len, tc.minLen)
		}
	}
}

//----------------------------------------------------------------------------//
// CountWord Tests
//----------------------------------------------------------------------------//

func TestCountWord_Example(t *testing.T) {
	g := mustGrid(t, exampleGrid)
	n, err := wordgrid.CountWord(g, "XMAS")
	require.NoError(t, err)
	assert.Equal(t, 18, n)

	perAxis := map[wordgrid.Point]int{
		wordgrid.East:      5,
		wordgrid.South:     3,
		wordgrid.SouthEast: 5,
		wordgrid.SouthWest: 5,
	}
	for dir, want := range perAxis {
		n, err := wordgrid.CountWord(g, "XMAS", wordgrid.WithAxes(dir))
		require.NoError(t, err)
		assert.Equal(t, want, n, "axis %v", dir)
	}
}

// TestCountWord_EdgeDiagonals places a word on diagonals that touch the
// grid's corners in non-square grids.
func TestCountWord_EdgeDiagonals(t *testing.T) {
	cases := map[string]string{
		"AntiDiagonalTopRight":  "....X\n...M.\n..A..\n.S...",
		"DiagonalLeftEdge":      "....\nX...\n.M..\n..A.\n...S",
		"AntiDiagonalRightEdge": "....\n...X\n..M.\n.A..\nS...",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			n, err := wordgrid.CountWord(mustGrid(t, text), "XMAS")
			require.NoError(t, err)
			assert.Equal(t, 1, n)
		})
	}
}

// TestCountWord_PatternSizedGrid covers grids exactly as large as the word.
func TestCountWord_PatternSizedGrid(t *testing.T) {
	n, err := wordgrid.CountWord(mustGrid(t, "SAMX"), "XMAS")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = wordgrid.CountWord(mustGrid(t, "X\nM\nA\nS"), "XMAS")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = wordgrid.CountWord(mustGrid(t, "XMA"), "XMAS")
	require.NoError(t, err)
	assert.Zero(t, n)
}

// TestCountWord_ReversalSymmetry checks that counting {word, reverse} in
// one pass equals counting word alone over every line read both ways.
func TestCountWord_ReversalSymmetry(t *testing.T) {
	g := mustGrid(t, exampleGrid)
	for _, word := range []string{"XMAS", "MAS", "AM", "SX", "AA", "ABA", "MAM"} {
		single, err := wordgrid.NewPatternSet(word)
		require.NoError(t, err)

		both := 0
		for _, dir := range wordgrid.Axes() {
			for _, l := range wordgrid.Lines(g, dir, len(word)) {
				back := wordgrid.Point{Row: -l.Dir.Row, Col: -l.Dir.Col}
				both += wordgrid.CountAxisMatches(g, l.Start, l.Dir, l.Len, single)
				both += wordgrid.CountAxisMatches(g, l.End(), back, l.Len, single)
			}
		}

		got, err := wordgrid.CountWord(g, word)
		require.NoError(t, err)
		assert.Equal(t, both, got, "word %q", word)
	}
}

// TestCountWord_Palindrome counts a palindrome once per reading direction.
func TestCountWord_Palindrome(t *testing.T) {
	g := mustGrid(t, "AAA")
	got, err := wordgrid.CountWord(g, "AA")
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	g = mustGrid(t, "ABA\nBAB\nABA")
	got, err = wordgrid.CountWord(g, "ABA")
	require.NoError(t, err)
	assert.Equal(t, 8, got)
}

func TestCountWord_BadWord(t *testing.T) {
	g := mustGrid(t, exampleGrid)
	_, err := wordgrid.CountWord(g, "")
	assert.ErrorIs(t, err, wordgrid.ErrPatternLength)
	_, err = wordgrid.CountWord(g, "XMASX")
	assert.ErrorIs(t, err, wordgrid.ErrPatternLength)
}

//----------------------------------------------------------------------------//
// CountCross Tests
//----------------------------------------------------------------------------//

func TestCountCross_Example(t *testing.T) {
	n, err := wordgrid.CountCross(mustGrid(t, exampleGrid), 'A', "MS")
	require.NoError(t, err)
	assert.Equal(t, 9, n)
}

func TestCountCross_Shapes(t *testing.T) {
	cases := []struct {
		name string
		grid string
		want int
	}{
		{"SameLettersTop", "M.M\n.A.\nS.S", 1},
		{"SameLettersLeft", "M.S\n.A.\nM.S", 1},
		{"OneDiagonalOnly", "M.M\n.A.\nS.M", 0},
		{"DiagonalsCrossedWrong", "M.S\n.A.\nS.M", 0},
		{"PivotOnBorder", "AMS\nMSA\nSAM", 0},
		{"TooSmall", "MS\nMS", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := wordgrid.CountCross(mustGrid(t, tc.grid), 'A', "MS")
			require.NoError(t, err)
			assert.Equal(t, tc.want, n)
		})
	}
}

func TestCountCross_BadArms(t *testing.T) {
	_, err := wordgrid.CountCross(mustGrid(t, exampleGrid), 'A', "MAS")
	assert.ErrorIs(t, err, wordgrid.ErrPatternLength)
}

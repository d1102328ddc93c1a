package wordgrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlekit/wordgrid"
)

//----------------------------------------------------------------------------//
// NewGrid, ParseGrid and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty or ragged inputs.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]byte
		err  error
	}{
		{"EmptyRows", [][]byte{}, wordgrid.ErrEmptyGrid},
		{"EmptyCols", [][]byte{{}}, wordgrid.ErrEmptyGrid},
		{"NonRectangular", [][]byte{[]byte("ab"), []byte("c")}, wordgrid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := wordgrid.NewGrid(tc.rows)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNewGrid_DeepCopy ensures later mutation of the input does not leak in.
func TestNewGrid_DeepCopy(t *testing.T) {
	rows := [][]byte{[]byte("ab"), []byte("cd")}
	g, err := wordgrid.NewGrid(rows)
	require.NoError(t, err)

	rows[0][0] = 'z'
	rows[1] = []byte("zz")
	assert.Equal(t, byte('a'), g.At(wordgrid.Point{Row: 0, Col: 0}))
	assert.Equal(t, "ab\ncd", g.String())
}

// TestParseGrid covers trailing whitespace, CRLF line endings and ragged text.
func TestParseGrid(t *testing.T) {
	g, err := wordgrid.ParseGrid("abc\r\ndef\r\n\n")
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)
	assert.Equal(t, "abc\ndef", g.String())

	_, err = wordgrid.ParseGrid("abc\nde\n")
	assert.ErrorIs(t, err, wordgrid.ErrNonRectangular)

	_, err = wordgrid.ParseGrid("\n \n")
	assert.ErrorIs(t, err, wordgrid.ErrEmptyGrid)
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := wordgrid.ParseGrid("abc\ndef")
	require.NoError(t, err)

	for _, p := range []wordgrid.Point{{0, 0}, {1, 2}, {1, 1}} {
		assert.True(t, g.InBounds(p), "InBounds(%v)", p)
	}
	for _, p := range []wordgrid.Point{{-1, 0}, {0, 3}, {2, 1}, {1, -1}} {
		assert.False(t, g.InBounds(p), "InBounds(%v)", p)
	}
}

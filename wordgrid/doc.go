// Package wordgrid treats a rectangular block of text as a 2D byte grid and
// searches it for short words laid out in straight lines.
//
// What:
//
//   - Grid wraps a rectangular [][]byte, row-major, immutable once built.
//   - Pattern packs a word of 1..4 bytes into a single uint32 (8 bits per byte,
//     first byte in the highest position), so a window comparison is one
//     integer compare.
//   - CountAxisMatches walks one line of the grid keeping a bit-packed sliding
//     window of the most recent bytes and counts every window that matches.
//   - CountWord scans every row, column, diagonal and anti-diagonal for a word
//     and its reverse, which covers all eight reading directions.
//   - CountCross counts pivot cells whose two diagonals both spell a two-letter
//     word in either direction (the "X-shaped" match).
//
// Why:
//
//   - Word searches, crossword and puzzle grids.
//   - Any fixed-width byte pattern detection along grid lines in O(W×H).
//
// Complexity:
//
//   - CountAxisMatches: O(L) time, O(1) memory (L = scanned length).
//   - CountWord:        O(W×H) time per axis, O(1) extra memory.
//   - CountCross:       O(W×H) time, O(1) extra memory.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrPatternLength: word is empty, longer than 4 bytes, or lengths differ
//     within one PatternSet.
//
// Scans stop at the grid boundary: a walk that would step outside the grid
// ends there instead of wrapping back to row or column zero.
package wordgrid

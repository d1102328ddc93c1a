package wordgrid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/puzzlekit/wordgrid"
)

// randomGrid builds an n×n grid over the letters X, M, A, S.
func randomGrid(b *testing.B, n int) *wordgrid.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	letters := []byte("XMAS")
	rows := make([][]byte, n)
	for r := range rows {
		rows[r] = make([]byte, n)
		for c := range rows[r] {
			rows[r][c] = letters[rng.Intn(len(letters))]
		}
	}
	g, err := wordgrid.NewGrid(rows)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	return g
}

// BenchmarkCountWord measures a full four-axis scan of a 1000×1000 grid.
// Complexity: O(W×H) per axis.
func BenchmarkCountWord(b *testing.B) {
	g := randomGrid(b, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = wordgrid.CountWord(g, "XMAS")
	}
}

// BenchmarkCountCross measures the cross detector on a 1000×1000 grid.
func BenchmarkCountCross(b *testing.B) {
	g := randomGrid(b, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = wordgrid.CountCross(g, 'A', "MS")
	}
}

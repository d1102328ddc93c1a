package solutions

import (
	"github.com/katalvlaran/puzzlekit/wordgrid"
)

// Day04 is a word search over a letter grid.
type Day04 struct{}

func (Day04) Day() int      { return 4 }
func (Day04) Title() string { return "Ceres Search" }

// Part1 counts XMAS in all eight directions.
func (Day04) Part1(input string) (int, error) {
	g, err := wordgrid.ParseGrid(input)
	if err != nil {
		return 0, err
	}

	return wordgrid.CountWord(g, "XMAS")
}

// Part2 counts two MAS words crossing on a shared A.
func (Day04) Part2(input string) (int, error) {
	g, err := wordgrid.ParseGrid(input)
	if err != nil {
		return 0, err
	}

	return wordgrid.CountCross(g, 'A', "MS")
}

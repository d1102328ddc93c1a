package solutions

import (
	"github.com/katalvlaran/puzzlekit/precedence"
)

// Day05 checks print-queue updates against page ordering rules.
type Day05 struct{}

func (Day05) Day() int      { return 5 }
func (Day05) Title() string { return "Print Queue" }

// Part1 sums the middle page of the correctly ordered updates.
func (Day05) Part1(input string) (int, error) {
	m, err := precedence.ParseManual(input)
	if err != nil {
		return 0, err
	}

	return precedence.SumValidMiddles(m.Updates, m.Rules), nil
}

// Part2 fixes the incorrectly ordered updates and sums their middle pages.
func (Day05) Part2(input string) (int, error) {
	m, err := precedence.ParseManual(input)
	if err != nil {
		return 0, err
	}

	return precedence.SumCorrectedMiddles(m.Updates, m.Rules)
}

package solutions

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/puzzlekit/puzzle"
)

// Day01 pairs up two location lists column by column.
type Day01 struct{}

func (Day01) Day() int      { return 1 }
func (Day01) Title() string { return "Historian Hysteria" }

// Part1 sorts both columns and sums the distance between paired entries.
func (Day01) Part1(input string) (int, error) {
	left, right, err := parseColumns(input)
	if err != nil {
		return 0, err
	}
	slices.Sort(left)
	slices.Sort(right)
	total := 0
	for i := range left {
		d := left[i] - right[i]
		if d < 0 {
			d = -d
		}
		total += d
	}

	return total, nil
}

func (Day01) Part2(string) (int, error) {
	return 0, puzzle.ErrNoPart
}

// parseColumns reads two numbers per line into a left and a right list.
func parseColumns(input string) (left, right []int, err error) {
	for i, line := range lines(input) {
		nums, err := parseFields(line, i+1)
		if err != nil {
			return nil, nil, err
		}
		if len(nums) != 2 {
			return nil, nil, fmt.Errorf("%w: line %d: want 2 numbers, got %d", ErrMalformedInput, i+1, len(nums))
		}
		left = append(left, nums[0])
		right = append(right, nums[1])
	}

	return left, right, nil
}

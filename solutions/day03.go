package solutions

import (
	"regexp"
	"strconv"
	"strings"
)

// Day03 recovers multiplication instructions from corrupted memory.
type Day03 struct{}

var mulRx = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)`)

func (Day03) Day() int      { return 3 }
func (Day03) Title() string { return "Mull It Over" }

// Part1 sums the products of every well-formed mul(a,b).
func (Day03) Part1(input string) (int, error) {
	return sumMuls(input), nil
}

// Part2 sums only the products in enabled regions. Memory starts enabled;
// don't() disables and do() re-enables.
func (Day03) Part2(input string) (int, error) {
	total := 0
	for i, chunk := range strings.Split(input, "don't()") {
		if i > 0 {
			_, enabled, ok := strings.Cut(chunk, "do()")
			if !ok {
				continue
			}
			chunk = enabled
		}
		total += sumMuls(chunk)
	}

	return total, nil
}

func sumMuls(s string) int {
	total := 0
	for _, m := range mulRx.FindAllStringSubmatch(s, -1) {
		// at most three digits each, so Atoi cannot fail
		l, _ := strconv.Atoi(m[1])
		r, _ := strconv.Atoi(m[2])
		total += l * r
	}

	return total
}

package solutions

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/puzzlekit/puzzle"
)

// ErrMalformedInput wraps every line-level parse failure in this package.
var ErrMalformedInput = errors.New("solutions: malformed input")

// All returns one solver per implemented day.
func All() []puzzle.Solver {
	return []puzzle.Solver{Day01{}, Day02{}, Day03{}, Day04{}, Day05{}}
}

// lines splits input into lines after dropping trailing whitespace.
// Windows line endings are accepted.
func lines(input string) []string {
	input = strings.TrimRight(strings.ReplaceAll(input, "\r\n", "\n"), " \t\n")
	if input == "" {
		return nil
	}

	return strings.Split(input, "\n")
}

// parseFields parses every whitespace-separated field of line as an
// unsigned integer; n is the 1-based line number used in errors.
func parseFields(line string, n int) ([]int, error) {
	fields := strings.Fields(line)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 10, 31)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad number %q", ErrMalformedInput, n, f)
		}
		out = append(out, int(v))
	}

	return out, nil
}

package solutions

// Day02 checks reactor reports for steadily rising or falling levels.
type Day02 struct{}

func (Day02) Day() int      { return 2 }
func (Day02) Title() string { return "Red-Nosed Reports" }

// Part1 counts the safe reports.
func (Day02) Part1(input string) (int, error) {
	return countReports(input, isSafe)
}

// Part2 counts the reports that are safe after removing at most one level.
func (Day02) Part2(input string) (int, error) {
	return countReports(input, isSafeDampened)
}

func countReports(input string, safe func([]int) bool) (int, error) {
	n := 0
	for i, line := range lines(input) {
		levels, err := parseFields(line, i+1)
		if err != nil {
			return 0, err
		}
		if safe(levels) {
			n++
		}
	}

	return n, nil
}

// isSafe reports whether every step between adjacent levels moves in the
// same direction by 1 to 3. A report needs at least two levels.
func isSafe(levels []int) bool {
	if len(levels) < 2 {
		return false
	}
	sign := 0
	for i := 1; i < len(levels); i++ {
		d := levels[i] - levels[i-1]
		s := 1
		if d < 0 {
			d, s = -d, -1
		}
		if d < 1 || d > 3 {
			return false
		}
		if sign != 0 && s != sign {
			return false
		}
		sign = s
	}

	return true
}

// isSafeDampened tries the report with each single level removed.
func isSafeDampened(levels []int) bool {
	if isSafe(levels) {
		return true
	}
	buf := make([]int, 0, len(levels))
	for skip := range levels {
		buf = buf[:0]
		buf = append(buf, levels[:skip]...)
		buf = append(buf, levels[skip+1:]...)
		if isSafe(buf) {
			return true
		}
	}

	return false
}

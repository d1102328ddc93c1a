package precedence

import "fmt"

// Partition splits updates into those IsValid accepts and those it rejects,
// preserving input order. The two results share no update.
func Partition(updates []Update, rel *Relation) (valid, invalid []Update) {
	for _, u := range updates {
		if IsValid(u, rel) {
			valid = append(valid, u)
		} else {
			invalid = append(invalid, u)
		}
	}

	return valid, invalid
}

// SumValidMiddles sums the middle page of every update that is already valid.
// Empty updates are skipped.
func SumValidMiddles(updates []Update, rel *Relation) int {
	total := 0
	for _, u := range updates {
		if len(u) > 0 && IsValid(u, rel) {
			total += int(u.Middle())
		}
	}

	return total
}

// SumCorrectedMiddles resolves every invalid update and sums the middle page
// of each corrected order. The first update that cannot be resolved aborts the
// sum; the error names its 1-based position in updates.
func SumCorrectedMiddles(updates []Update, rel *Relation) (int, error) {
	total := 0
	for i, u := range updates {
		if IsValid(u, rel) {
			continue
		}
		fixed, err := Resolve(u, rel)
		if err != nil {
			return 0, fmt.Errorf("update %d: %w", i+1, err)
		}
		total += int(fixed.Middle())
	}

	return total, nil
}

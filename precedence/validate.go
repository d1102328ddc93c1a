package precedence

// IsValid reports whether u respects rel: every adjacent pair (x, y) has
// x == y or the rule x|y. An empty or single-page update is always valid.
// Complexity: O(n).
func IsValid(u Update, rel *Relation) bool {
	for i := 1; i < len(u); i++ {
		if !rel.Precedes(u[i-1], u[i]) {
			return false
		}
	}

	return true
}

// CheckComplete verifies that rel orders every pair of distinct pages of u in
// exactly one direction, which makes the comparator used by Resolve a strict
// total order on u. The first failing pair is reported as a
// *ConsistencyError wrapping ErrIncompleteRelation or ErrContradiction.
// Complexity: O(n²).
func CheckComplete(u Update, rel *Relation) error {
	for i := 0; i < len(u); i++ {
		for j := i + 1; j < len(u); j++ {
			a, b := u[i], u[j]
			if a == b {
				continue
			}
			fwd, back := rel.Has(a, b), rel.Has(b, a)
			switch {
			case !fwd && !back:
				return &ConsistencyError{A: a, B: b, Err: ErrIncompleteRelation}
			case fwd && back:
				return &ConsistencyError{A: a, B: b, Err: ErrContradiction}
			}
		}
	}

	return nil
}

// isOrdered reports whether every pair (u[i], u[j]) with i < j respects rel.
// Unlike IsValid it does not rely on transitivity.
func isOrdered(u Update, rel *Relation) (Page, Page, bool) {
	for i := 0; i < len(u); i++ {
		for j := i + 1; j < len(u); j++ {
			if !rel.Precedes(u[i], u[j]) {
				return u[i], u[j], false
			}
		}
	}

	return 0, 0, true
}

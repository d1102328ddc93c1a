package precedence

import "slices"

// Relation is the set of ordering rules of one manual. Build it once, then
// treat it as read-only; it is not safe for concurrent mutation.
type Relation struct {
	after map[Page]map[Page]struct{} // before -> set of pages that must follow
	n     int                        // number of distinct rules
}

// NewRelation returns a Relation holding rules. Duplicates are ignored.
func NewRelation(rules ...Rule) *Relation {
	rel := &Relation{after: make(map[Page]map[Page]struct{})}
	for _, r := range rules {
		rel.Add(r)
	}

	return rel
}

// Add records r. Adding the same rule twice has no effect.
func (rel *Relation) Add(r Rule) {
	succ, ok := rel.after[r.Before]
	if !ok {
		succ = make(map[Page]struct{})
		rel.after[r.Before] = succ
	}
	if _, dup := succ[r.After]; dup {
		return
	}
	succ[r.After] = struct{}{}
	rel.n++
}

// Has reports whether the rule a|b is present.
func (rel *Relation) Has(a, b Page) bool {
	_, ok := rel.after[a][b]

	return ok
}

// Precedes reports whether a may appear before b: a == b or a|b is a rule.
func (rel *Relation) Precedes(a, b Page) bool {
	return a == b || rel.Has(a, b)
}

// Compare orders a and b for sorting: 0 if equal, -1 if a|b is a rule,
// +1 otherwise.
func (rel *Relation) Compare(a, b Page) int {
	switch {
	case a == b:
		return 0
	case rel.Has(a, b):
		return -1
	default:
		return 1
	}
}

// Len returns the number of distinct rules.
func (rel *Relation) Len() int {
	return rel.n
}

// Successors returns the pages that must follow p, in ascending order.
func (rel *Relation) Successors(p Page) []Page {
	out := make([]Page, 0, len(rel.after[p]))
	for q := range rel.after[p] {
		out = append(out, q)
	}
	slices.Sort(out)

	return out
}

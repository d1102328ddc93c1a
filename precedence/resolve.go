package precedence

import (
	"slices"
)

// Resolve returns a copy of u reordered so that it respects rel. u itself is
// not modified.
//
// Pages are sorted with rel.Compare: equal pages compare Equal, a|b makes a
// Less, and anything else makes a Greater. That comparator is only a valid
// order when rel restricted to u is a strict total order, so Resolve first
// runs CheckComplete and, after sorting, confirms every pair is in order
// (a cyclic relation passes CheckComplete but cannot be sorted); the latter
// failure wraps ErrCycleDetected.
// The sort is stable, so pages already in order keep their relative order.
func Resolve(u Update, rel *Relation) (Update, error) {
	if err := CheckComplete(u, rel); err != nil {
		return nil, err
	}
	out := slices.Clone(u)
	slices.SortStableFunc(out, rel.Compare)
	if a, b, ok := isOrdered(out, rel); !ok {
		return nil, &ConsistencyError{A: a, B: b, Err: ErrCycleDetected}
	}

	return out, nil
}

// topoSorter encapsulates state for a topological sort of one update.
type topoSorter struct {
	rel     *Relation
	opts    resolveOptions
	members map[Page]bool // pages present in the update
	state   map[Page]int  // visitation state: 0=white, 1=gray, 2=black
	order   []Page        // recorded post-order sequence
}

const (
	white = iota // not visited yet
	gray         // on the recursion stack
	black        // fully explored
)

// ResolveTopological orders u by a depth-first topological sort of the rules
// among u's pages. Unlike Resolve it does not require every pair to be ruled:
// unrelated pages keep an order derived from their position in u.
// If the rules form a cycle, a *ConsistencyError wrapping ErrCycleDetected is
// returned. Pages are expected to be unique; a repeated page appears once in
// the result. Pass WithCancelContext(ctx) to enable cancellation.
// Complexity: O(n + E_u) time, O(n) memory.
func ResolveTopological(u Update, rel *Relation, options ...ResolveOption) (Update, error) {
	// 1. Apply optional settings
	opts := defaultResolveOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 2. Initialize sorter state
	s := &topoSorter{
		rel:     rel,
		opts:    opts,
		members: make(map[Page]bool, len(u)),
		state:   make(map[Page]int, len(u)),
		order:   make([]Page, 0, len(u)),
	}
	for _, p := range u {
		s.members[p] = true
	}
	// 3. Drive DFS from every unvisited page, in reverse input order so that
	//    unrelated pages come out in their original relative order
	for i := len(u) - 1; i >= 0; i-- {
		if s.state[u[i]] == white {
			if err := s.visit(u[i]); err != nil {
				return nil, err
			}
		}
	}
	// 4. Reverse post-order to produce the topological order
	slices.Reverse(s.order)

	return s.order, nil
}

// visit performs a DFS from p over successors that belong to the update.
func (s *topoSorter) visit(p Page) error {
	// 1. Cancellation check at entry
	select {
	case <-s.opts.ctx.Done():
		return s.opts.ctx.Err()
	default:
	}
	// 2. Mark as in-progress
	s.state[p] = gray
	// 3. Explore successors present in the update, descending so that
	//    peers end up in ascending order once the post-order is reversed
	succ := s.rel.Successors(p)
	for i := len(succ) - 1; i >= 0; i-- {
		q := succ[i]
		if !s.members[q] || q == p {
			continue
		}
		switch s.state[q] {
		case gray:
			return &ConsistencyError{A: p, B: q, Err: ErrCycleDetected}
		case white:
			if err := s.visit(q); err != nil {
				return err
			}
		}
	}
	// 4. Mark as fully explored and record in post-order
	s.state[p] = black
	s.order = append(s.order, p)

	return nil
}

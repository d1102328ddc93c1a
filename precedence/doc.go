// Package precedence validates and repairs sequences of page numbers against
// a set of pairwise "must come before" rules.
//
// What:
//
//   - Relation: a set of ordered pairs (before, after), stored as a map from
//     a page to the pages that must follow it.
//   - IsValid: reports whether an update already respects every rule that
//     applies to its own pages, using adjacent-pair comparison.
//   - Resolve: returns a reordered copy of an update that respects the rules,
//     sorting with the comparator Equal / Less (rule present) / Greater.
//     The relation restricted to the update must be a strict total order;
//     CheckComplete reports the first pair for which it is not.
//   - ResolveTopological: orders an update by depth-first topological sort of
//     the rules restricted to its pages. It accepts incomplete relations and
//     reports ErrCycleDetected for cyclic ones.
//   - SumValidMiddles / SumCorrectedMiddles: the batch totals over the middle
//     page of the valid updates and of the corrected invalid updates.
//
// Rules only matter for pages that appear together in one update; rules that
// mention absent pages are never consulted.
//
// Complexity:
//
//   - IsValid:            O(n) lookups (n = update length)
//   - CheckComplete:      O(n²)
//   - Resolve:            O(n²) check + O(n log n) sort
//   - ResolveTopological: O(n + E_u), E_u = rules among the update's pages
//
// Errors:
//
//   - *ParseError wrapping ErrMalformedRule, ErrMalformedNumber,
//     ErrMissingSeparator or ErrEmptyUpdate, with the offending line number.
//   - *ConsistencyError wrapping ErrIncompleteRelation, ErrContradiction or
//     ErrCycleDetected, naming the offending pair of pages.
//   - context.Canceled from ResolveTopological when its context is done.
package precedence

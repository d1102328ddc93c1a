package precedence

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for parsing and resolution.
var (
	// ErrMalformedRule indicates a rule line without a single '|' delimiter.
	ErrMalformedRule = errors.New("precedence: malformed rule")

	// ErrMalformedNumber indicates a token that is not an unsigned integer.
	ErrMalformedNumber = errors.New("precedence: malformed page number")

	// ErrMissingSeparator indicates input with no blank line between the
	// rules block and the updates block.
	ErrMissingSeparator = errors.New("precedence: missing blank line between rules and updates")

	// ErrEmptyUpdate indicates an update line with no pages.
	ErrEmptyUpdate = errors.New("precedence: empty update")

	// ErrIncompleteRelation indicates two distinct pages of one update with no
	// rule in either direction.
	ErrIncompleteRelation = errors.New("precedence: no rule orders pages")

	// ErrContradiction indicates two pages with rules in both directions.
	ErrContradiction = errors.New("precedence: contradictory rules")

	// ErrCycleDetected indicates rules that form a cycle among an update's pages.
	ErrCycleDetected = errors.New("precedence: cycle detected")
)

// Page identifies one page of a manual.
type Page int

// Rule states that Before must appear ahead of After whenever both are present.
type Rule struct {
	Before, After Page
}

// String renders the rule in its input form "before|after".
func (r Rule) String() string {
	return fmt.Sprintf("%d|%d", r.Before, r.After)
}

// Update is an ordered list of pages to be printed.
type Update []Page

// Middle returns the page at index len(u)/2. u must not be empty.
func (u Update) Middle() Page {
	return u[len(u)/2]
}

// Manual is a parsed puzzle input: one rule relation and a batch of updates.
type Manual struct {
	Rules   *Relation
	Updates []Update
}

// ParseError reports a line of input that could not be parsed.
type ParseError struct {
	Line int    // 1-based line number in the original input
	Text string // the offending line
	Err  error  // wrapped sentinel with token detail
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ConsistencyError reports a pair of pages the relation cannot order.
type ConsistencyError struct {
	A, B Page
	Err  error
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%v: pages %d and %d", e.Err, e.A, e.B)
}

func (e *ConsistencyError) Unwrap() error {
	return e.Err
}

// ResolveOption configures ResolveTopological.
type ResolveOption func(*resolveOptions)

// resolveOptions holds settings for ResolveTopological, currently only cancellation.
type resolveOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

func defaultResolveOptions() resolveOptions {
	return resolveOptions{ctx: context.Background()}
}

// WithCancelContext returns a ResolveOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) ResolveOption {
	return func(o *resolveOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

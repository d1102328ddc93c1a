package puzzle

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrNoPart is returned by a solver that does not implement a part.
	ErrNoPart = errors.New("puzzle: part not implemented")
	// ErrUnknownDay indicates a day with no registered solver.
	ErrUnknownDay = errors.New("puzzle: no solver for day")
	// ErrDuplicateDay indicates two solvers registered for the same day.
	ErrDuplicateDay = errors.New("puzzle: day already registered")
)

// Solver computes the answers for one day. Both parts receive the full input
// text and must not retain it.
type Solver interface {
	Day() int
	Title() string
	Part1(input string) (int, error)
	Part2(input string) (int, error)
}

// Registry maps day numbers to solvers.
type Registry struct {
	solvers map[int]Solver
}

// NewRegistry returns a Registry holding solvers.
// It fails with ErrDuplicateDay if two solvers share a day.
func NewRegistry(solvers ...Solver) (*Registry, error) {
	r := &Registry{solvers: make(map[int]Solver, len(solvers))}
	for _, s := range solvers {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Register adds s to the registry.
func (r *Registry) Register(s Solver) error {
	if _, ok := r.solvers[s.Day()]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateDay, s.Day())
	}
	r.solvers[s.Day()] = s

	return nil
}

// Get returns the solver for day.
func (r *Registry) Get(day int) (Solver, error) {
	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrUnknownDay, day)
	}

	return s, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.solvers))
	for d := range r.solvers {
		days = append(days, d)
	}
	slices.Sort(days)

	return days
}

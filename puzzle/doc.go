// Package puzzle runs daily puzzle solvers over their input files.
//
// A Solver is a pure function pair from input text to an integer answer.
// Solvers are collected in a Registry, inputs are read by a Loader rooted
// at an explicit directory, and a Runner executes the selected days,
// optionally in parallel since no state is shared between days. Render
// prints the answers with a human-readable label.
package puzzle

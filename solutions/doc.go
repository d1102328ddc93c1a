// Package solutions holds the daily solvers. Each day is a value type
// implementing puzzle.Solver; All returns them for registration.
package solutions

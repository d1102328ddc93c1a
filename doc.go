// Package puzzlekit is a collection of daily puzzle solvers and the small
// algorithm packages they are built on.
//
// Under the hood, everything is organized under these subpackages:
//
//	wordgrid/   — byte grids, bit-packed sliding-window word search, cross patterns
//	precedence/ — pairwise ordering rules, update validation and repair
//	puzzle/     — solver registry, input loading, runner and answer rendering
//	solutions/  — one solver per day
//
// Quick ASCII example of a word search match counted by wordgrid:
//
//	X . . .
//	. M . .
//	. . A .
//	. . . S
//
// The command-line entry point lives in cmd/puzzlekit:
//
//	puzzlekit run 4 5 --input-dir ./input
package puzzlekit

package aoc

import "errors"

//go:generate mockgen -source=solver.go -destination=mocks/mock_solver.go -package=mocks

// ErrNotImplemented is returned by a Solver for a part that has no solution yet.
var ErrNotImplemented = errors.New("part not implemented yet")

// Solver is one day of the calendar. Load receives the raw puzzle input and
// must be called before either part.
type Solver interface {
	Load(input string) error
	Part1() (int, error)
	Part2() (int, error)
}

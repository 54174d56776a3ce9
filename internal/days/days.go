// Package days wires every solved day into an aoc.Registry.
package days

import (
	"github.com/povarna/advent-of-code-2024/internal/aoc"
	"github.com/povarna/advent-of-code-2024/internal/days/day01"
	"github.com/povarna/advent-of-code-2024/internal/days/day02"
	"github.com/povarna/advent-of-code-2024/internal/days/day06"
	"github.com/rs/zerolog"
)

func Registry() *aoc.Registry {
	r := aoc.NewRegistry()
	r.Register(1, func(logger *zerolog.Logger) aoc.Solver { return day01.New(logger) })
	r.Register(2, func(logger *zerolog.Logger) aoc.Solver { return day02.New(logger) })
	r.Register(6, func(logger *zerolog.Logger) aoc.Solver { return day06.New(logger) })
	return r
}

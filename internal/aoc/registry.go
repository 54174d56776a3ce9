package aoc

import (
	"maps"
	"slices"

	"github.com/rs/zerolog"
)

// Factory builds a fresh Solver for a single run.
type Factory func(logger *zerolog.Logger) Solver

type Registry struct {
	factories map[Day]Factory
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[Day]Factory),
	}
}

// Register adds or replaces the factory for day.
func (r *Registry) Register(day Day, factory Factory) {
	r.factories[day] = factory
}

// Lookup returns the factory for day, or an InvalidDayError when the day has
// not been registered.
func (r *Registry) Lookup(day Day) (Factory, error) {
	f, ok := r.factories[day]
	if !ok {
		return nil, InvalidDayError{Day: int(day)}
	}
	return f, nil
}

// Days lists the registered days in ascending order.
func (r *Registry) Days() []Day {
	return slices.Sorted(maps.Keys(r.factories))
}

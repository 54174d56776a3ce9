package day06

import (
	"github.com/povarna/advent-of-code-2024/internal/patrol"
	"github.com/rs/zerolog"
)

// Solver follows the lab guard around the patrol area.
type Solver struct {
	area   *patrol.Area
	logger *zerolog.Logger
}

func New(logger *zerolog.Logger) *Solver {
	return &Solver{logger: logger}
}

func (s *Solver) Load(input string) error {
	area, err := patrol.Parse(input)
	if err != nil {
		return err
	}
	s.area = area
	s.logger.Debug().
		Int("width", area.Width).
		Int("height", area.Height).
		Int("obstacles", len(area.Obstacles())).
		Stringer("start", area.Start).
		Stringer("heading", area.StartHeading).
		Msg("Patrol area parsed")
	return nil
}

// Part1 counts the distinct positions the guard visits before leaving.
func (s *Solver) Part1() (int, error) {
	p := patrol.New(s.area)
	count, err := p.Run()
	if err != nil {
		return 0, err
	}
	s.logger.Debug().
		Int("traveled", p.Guard().Traveled).
		Stringer("exit", p.Guard().Position).
		Msg("Guard left the area")
	return count, nil
}

// Part2 counts the positions where one extra obstruction traps the guard.
func (s *Solver) Part2() (int, error) {
	return patrol.LoopObstructions(s.area)
}

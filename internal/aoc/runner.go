package aoc

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// RunConfig selects what a Runner solves. InputPath overrides the default
// location of the input file when set.
type RunConfig struct {
	Day       Day
	Part      Part
	InputPath string
}

type Runner struct {
	registry  *Registry
	inputsDir string
	logger    *zerolog.Logger
}

func NewRunner(registry *Registry, inputsDir string, logger *zerolog.Logger) *Runner {
	return &Runner{
		registry:  registry,
		inputsDir: inputsDir,
		logger:    logger,
	}
}

// InputPath resolves where the input of cfg is read from.
func (r *Runner) InputPath(cfg RunConfig) string {
	if cfg.InputPath != "" {
		return cfg.InputPath
	}
	return filepath.Join(r.inputsDir, cfg.Day.InputFile())
}

// ReadInput loads the raw puzzle input for cfg.
func (r *Runner) ReadInput(cfg RunConfig) (string, error) {
	path := r.InputPath(cfg)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input %s: %w", path, err)
	}
	return string(data), nil
}

// Run solves one part of one day and returns the answer.
func (r *Runner) Run(cfg RunConfig) (int, error) {
	factory, err := r.registry.Lookup(cfg.Day)
	if err != nil {
		return 0, err
	}

	input, err := r.ReadInput(cfg)
	if err != nil {
		return 0, err
	}

	solver := factory(r.logger)

	start := time.Now()
	if err := solver.Load(input); err != nil {
		return 0, fmt.Errorf("failed to load %s input: %w", cfg.Day, err)
	}
	r.logger.Debug().
		Stringer("day", cfg.Day).
		Dur("duration", time.Since(start)).
		Msg("Input loaded")

	start = time.Now()
	var answer int
	switch cfg.Part {
	case PartOne:
		answer, err = solver.Part1()
	case PartTwo:
		answer, err = solver.Part2()
	default:
		return 0, InvalidPartError{Part: int(cfg.Part)}
	}
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", cfg.Day, cfg.Part, err)
	}

	r.logger.Info().
		Stringer("day", cfg.Day).
		Stringer("part", cfg.Part).
		Int("answer", answer).
		Dur("duration", time.Since(start)).
		Msg("Solved")

	return answer, nil
}

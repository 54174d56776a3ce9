package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/povarna/advent-of-code-2024/internal/aoc"
	"github.com/povarna/advent-of-code-2024/internal/config"
	"github.com/povarna/advent-of-code-2024/internal/days"
	"github.com/povarna/advent-of-code-2024/internal/patrol"
	"github.com/povarna/advent-of-code-2024/internal/setup/logger"
	"github.com/povarna/advent-of-code-2024/internal/watch"
)

const (
	exitOK = iota
	exitUsage
	exitRun
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("aoc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dayFlag := fs.Int("day", 0, "Which day to run (1-25)")
	partFlag := fs.Int("part", 1, "Which part to run (1 or 2)")
	input := fs.String("input", "", "Input file path. Defaults to <inputs_dir>/dayNN.txt")
	watchFlag := fs.Bool("watch", false, "Animate the day 6 patrol in the terminal")
	logLevel := fs.String("log-level", "", "Log level override (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return exitUsage
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	log := logger.New(cfg.LogLevel, stderr)
	if envErr != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	day, err := aoc.ParseDay(*dayFlag)
	if err != nil {
		log.Error().Err(err).Msg("Invalid arguments")
		return exitUsage
	}
	part, err := aoc.ParsePart(*partFlag)
	if err != nil {
		log.Error().Err(err).Msg("Invalid arguments")
		return exitUsage
	}

	registry := days.Registry()
	if _, err := registry.Lookup(day); err != nil {
		log.Error().Err(err).Ints("available", dayNumbers(registry.Days())).Msg("Day not implemented yet")
		return exitUsage
	}

	log.Info().
		Stringer("day", day).
		Stringer("part", part).
		Msg("Advent of Code 2024")

	runner := aoc.NewRunner(registry, cfg.InputsDir, &log)
	runCfg := aoc.RunConfig{Day: day, Part: part, InputPath: *input}

	if *watchFlag {
		return watchPatrol(runner, runCfg, cfg.Watch.FrameDelay, stdout, &log)
	}

	start := time.Now()
	answer, err := runner.Run(runCfg)
	if err != nil {
		log.Error().Err(err).Msg("Run failed")
		return exitRun
	}

	log.Debug().Dur("total", time.Since(start)).Msg("Done")
	fmt.Fprintln(stdout, answer)
	return exitOK
}

func watchPatrol(runner *aoc.Runner, runCfg aoc.RunConfig, delay time.Duration, stdout io.Writer, log *zerolog.Logger) int {
	if runCfg.Day != 6 {
		log.Error().Stringer("day", runCfg.Day).Msg("Watch mode is only available for day 6")
		return exitUsage
	}

	input, err := runner.ReadInput(runCfg)
	if err != nil {
		log.Error().Err(err).Msg("Run failed")
		return exitRun
	}
	area, err := patrol.Parse(input)
	if err != nil {
		log.Error().Err(err).Msg("Run failed")
		return exitRun
	}

	p := patrol.New(area)
	if _, err := tea.NewProgram(watch.New(p, delay), tea.WithAltScreen()).Run(); err != nil {
		log.Error().Err(err).Msg("Watch failed")
		return exitRun
	}

	switch p.State() {
	case patrol.Exited:
		fmt.Fprintln(stdout, p.Visited())
		return exitOK
	case patrol.Looping:
		log.Error().Err(patrol.ErrLooping).Msg("Run failed")
		return exitRun
	default:
		log.Warn().Int("visited", p.Visited()).Msg("Watch interrupted before the guard left")
		return exitOK
	}
}

func dayNumbers(ds []aoc.Day) []int {
	out := make([]int, len(ds))
	for i, d := range ds {
		out[i] = int(d)
	}
	return out
}

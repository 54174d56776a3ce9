package day02

import (
	"fmt"
	"strings"

	"github.com/povarna/advent-of-code-2024/internal/utils"
	"github.com/rs/zerolog"
)

const (
	minStep = 1
	maxStep = 3
)

type report []int

// Solver counts safe reactor reports.
type Solver struct {
	reports []report
	logger  *zerolog.Logger
}

func New(logger *zerolog.Logger) *Solver {
	return &Solver{logger: logger}
}

func (s *Solver) Load(input string) error {
	reports, err := parseReports(input)
	if err != nil {
		return err
	}
	s.reports = reports
	s.logger.Debug().Int("reports", len(reports)).Msg("Reports parsed")
	return nil
}

func (s *Solver) Part1() (int, error) {
	return s.countSafe(report.isSafe), nil
}

// Part2 tolerates a single bad level per report.
func (s *Solver) Part2() (int, error) {
	return s.countSafe(report.isSafeDampened), nil
}

func (s *Solver) countSafe(safe func(report) bool) int {
	count := 0
	for _, r := range s.reports {
		if safe(r) {
			count++
		}
	}
	return count
}

func parseReports(input string) ([]report, error) {
	var reports []report
	for i, line := range strings.Split(strings.TrimSpace(input), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		levels := make(report, 0, len(fields))
		for _, f := range fields {
			n, err := utils.ToInt(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			levels = append(levels, n)
		}
		reports = append(reports, levels)
	}
	return reports, nil
}

// isSafe holds when every step between levels is 1..3 in size and all steps
// share one direction.
func (r report) isSafe() bool {
	direction := 0
	for i := 1; i < len(r); i++ {
		diff := r[i] - r[i-1]
		step := utils.AbsInt(r[i], r[i-1])
		if step < minStep || step > maxStep {
			return false
		}

		sign := 1
		if diff < 0 {
			sign = -1
		}
		if direction != 0 && sign != direction {
			return false
		}
		direction = sign
	}
	return true
}

func (r report) isSafeDampened() bool {
	if r.isSafe() {
		return true
	}

	dampened := make(report, 0, len(r))
	for i := range r {
		dampened = append(dampened[:0], r[:i]...)
		dampened = append(dampened, r[i+1:]...)
		if dampened.isSafe() {
			return true
		}
	}
	return false
}

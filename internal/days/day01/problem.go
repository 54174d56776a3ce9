package day01

import (
	"fmt"
	"slices"
	"strings"

	"github.com/povarna/advent-of-code-2024/internal/utils"
	"github.com/rs/zerolog"
)

// Solver compares the two location id lists of the historians.
type Solver struct {
	left, right []int
	logger      *zerolog.Logger
}

func New(logger *zerolog.Logger) *Solver {
	return &Solver{logger: logger}
}

func (s *Solver) Load(input string) error {
	left, right, err := parseLists(input)
	if err != nil {
		return err
	}
	s.left, s.right = left, right
	s.logger.Debug().Int("pairs", len(left)).Msg("Location lists parsed")
	return nil
}

// Part1 sums the distance between the lists once both are sorted.
func (s *Solver) Part1() (int, error) {
	return totalDistance(s.left, s.right), nil
}

// Part2 sums every left id weighted by how often it appears on the right.
func (s *Solver) Part2() (int, error) {
	return similarityScore(s.left, s.right), nil
}

func parseLists(input string) ([]int, []int, error) {
	var left, right []int
	for i, line := range strings.Split(strings.TrimSpace(input), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, nil, fmt.Errorf("line %d: expected two ids, got %q", i+1, line)
		}

		l, err := utils.ToInt(fields[0])
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		r, err := utils.ToInt(fields[1])
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		left = append(left, l)
		right = append(right, r)
	}
	return left, right, nil
}

func totalDistance(left, right []int) int {
	left, right = slices.Clone(left), slices.Clone(right)
	slices.Sort(left)
	slices.Sort(right)

	total := 0
	for i := range left {
		total += utils.AbsInt(left[i], right[i])
	}
	return total
}

func similarityScore(left, right []int) int {
	counts := make(map[int]int, len(right))
	for _, id := range right {
		counts[id]++
	}

	score := 0
	for _, id := range left {
		score += id * counts[id]
	}
	return score
}

package days

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/povarna/advent-of-code-2024/internal/aoc"
	"github.com/rs/zerolog"
)

func TestRegistry_Days(t *testing.T) {
	got := Registry().Days()
	want := []aoc.Day{1, 2, 6}
	if len(got) != len(want) {
		t.Fatalf("Days() = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Days() = %v; want %v", got, want)
		}
	}
}

// TestRegistry_Examples runs every registered day on its example input.
func TestRegistry_Examples(t *testing.T) {
	logger := zerolog.Nop()
	runner := aoc.NewRunner(Registry(), "", &logger)

	tests := []struct {
		day  aoc.Day
		part aoc.Part
		want int
	}{
		{day: 1, part: aoc.PartOne, want: 11},
		{day: 1, part: aoc.PartTwo, want: 31},
		{day: 2, part: aoc.PartOne, want: 2},
		{day: 2, part: aoc.PartTwo, want: 4},
		{day: 6, part: aoc.PartOne, want: 41},
		{day: 6, part: aoc.PartTwo, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.day.String()+" "+tt.part.String(), func(t *testing.T) {
			path := filepath.Join(fmt.Sprintf("day%02d", int(tt.day)), "testdata", "example_input.txt")
			if _, err := os.Stat(path); err != nil {
				t.Fatalf("Missing example input %s: %v", path, err)
			}

			got, err := runner.Run(aoc.RunConfig{Day: tt.day, Part: tt.part, InputPath: path})
			if err != nil {
				t.Fatalf("Run() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Run(%s, %s) = %d; want %d", tt.day, tt.part, got, tt.want)
			}
		})
	}
}

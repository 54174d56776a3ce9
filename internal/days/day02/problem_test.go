package day02

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
)

func loadExample(t *testing.T) *Solver {
	t.Helper()
	data, err := os.ReadFile("testdata/example_input.txt")
	if err != nil {
		t.Fatalf("Failed to read example input: %v", err)
	}

	logger := zerolog.Nop()
	s := New(&logger)
	if err := s.Load(string(data)); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	return s
}

func TestReport_IsSafe(t *testing.T) {
	tests := []struct {
		name     string
		levels   report
		safe     bool
		dampened bool
	}{
		{name: "decreasing", levels: report{7, 6, 4, 2, 1}, safe: true, dampened: true},
		{name: "jump up", levels: report{1, 2, 7, 8, 9}, safe: false, dampened: false},
		{name: "jump down", levels: report{9, 7, 6, 2, 1}, safe: false, dampened: false},
		{name: "direction change", levels: report{1, 3, 2, 4, 5}, safe: false, dampened: true},
		{name: "flat step", levels: report{8, 6, 4, 4, 1}, safe: false, dampened: true},
		{name: "increasing", levels: report{1, 3, 6, 7, 9}, safe: true, dampened: true},
		{name: "bad first level", levels: report{9, 1, 2, 3}, safe: false, dampened: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.levels.isSafe(); got != tt.safe {
				t.Errorf("isSafe(%v) = %v; want %v", tt.levels, got, tt.safe)
			}
			if got := tt.levels.isSafeDampened(); got != tt.dampened {
				t.Errorf("isSafeDampened(%v) = %v; want %v", tt.levels, got, tt.dampened)
			}
		})
	}
}

func TestPart1(t *testing.T) {
	got, err := loadExample(t).Part1()
	if err != nil || got != 2 {
		t.Errorf("Part1() = %d, %v; want 2", got, err)
	}
}

func TestPart2(t *testing.T) {
	got, err := loadExample(t).Part2()
	if err != nil || got != 4 {
		t.Errorf("Part2() = %d, %v; want 4", got, err)
	}
}

func TestLoad_InvalidLevel(t *testing.T) {
	logger := zerolog.Nop()
	if err := New(&logger).Load("1 2 x\n"); err == nil {
		t.Error("Load() expected error for non-numeric level")
	}
}

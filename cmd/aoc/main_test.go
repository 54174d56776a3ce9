package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

// isolate runs the CLI from an empty directory so no .env or config file is
// picked up.
func isolate(t *testing.T) {
	t.Helper()
	for _, key := range []string{"AOC_CONFIG_PATH", "AOC_INPUTS_DIR", "AOC_LOG_LEVEL", "AOC_FRAME_DELAY"} {
		t.Setenv(key, "")
	}
	t.Chdir(t.TempDir())
}

func example(t *testing.T, day string) string {
	t.Helper()
	path, err := filepath.Abs(filepath.Join("..", "..", "internal", "days", day, "testdata", "example_input.txt"))
	if err != nil {
		t.Fatalf("Failed to resolve example path: %v", err)
	}
	return path
}

func TestRun_Success(t *testing.T) {
	tests := []struct {
		name string
		args func(t *testing.T) []string
		want string
	}{
		{
			name: "day 6 part 1",
			args: func(t *testing.T) []string { return []string{"-day", "6", "-input", example(t, "day06")} },
			want: "41",
		},
		{
			name: "day 6 part 2",
			args: func(t *testing.T) []string { return []string{"-day", "6", "-part", "2", "-input", example(t, "day06")} },
			want: "6",
		},
		{
			name: "day 1 part 2",
			args: func(t *testing.T) []string { return []string{"-day", "1", "-part", "2", "-input", example(t, "day01")} },
			want: "31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := tt.args(t)
			isolate(t)

			var stdout, stderr bytes.Buffer
			code := run(args, &stdout, &stderr)
			if code != exitOK {
				t.Fatalf("run(%v) = %d; want %d\nstderr: %s", args, code, exitOK, stderr.String())
			}
			if got := strings.TrimSpace(stdout.String()); got != tt.want {
				t.Errorf("stdout = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestRun_Failures(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantLog  string
	}{
		{name: "missing day", args: []string{}, wantCode: exitUsage, wantLog: "invalid day: 0"},
		{name: "day out of range", args: []string{"-day", "26"}, wantCode: exitUsage, wantLog: "invalid day: 26"},
		{name: "bad part", args: []string{"-day", "6", "-part", "3"}, wantCode: exitUsage, wantLog: "invalid part: 3"},
		{name: "unregistered day", args: []string{"-day", "8"}, wantCode: exitUsage, wantLog: "invalid day: 8"},
		{name: "unknown flag", args: []string{"-year", "2023"}, wantCode: exitUsage},
		{name: "missing input", args: []string{"-day", "6"}, wantCode: exitRun, wantLog: "day06.txt"},
		{name: "watch other day", args: []string{"-day", "2", "-watch"}, wantCode: exitUsage, wantLog: "only available for day 6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)

			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)
			if code != tt.wantCode {
				t.Errorf("run(%v) = %d; want %d\nstderr: %s", tt.args, code, tt.wantCode, stderr.String())
			}
			if stdout.Len() != 0 {
				t.Errorf("stdout = %q; want nothing", stdout.String())
			}
			if tt.wantLog != "" && !strings.Contains(stderr.String(), tt.wantLog) {
				t.Errorf("stderr = %q; want substring %q", stderr.String(), tt.wantLog)
			}
		})
	}
}

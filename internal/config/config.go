package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

const (
	DefaultConfigPath = "configs/aoc.yaml"
	DefaultInputsDir  = "inputs"
	DefaultLogLevel   = "info"
	DefaultFrameDelay = 125 * time.Millisecond
)

type Config struct {
	InputsDir string      `yaml:"inputs_dir"`
	LogLevel  string      `yaml:"log_level"`
	Watch     WatchConfig `yaml:"watch"`
}

// WatchConfig tunes the terminal animation of the day 6 patrol.
type WatchConfig struct {
	FrameDelay time.Duration `yaml:"frame_delay"`
}

// Load reads the YAML config named by AOC_CONFIG_PATH, or configs/aoc.yaml
// when unset, then applies environment overrides. A missing default file is
// not an error.
func Load() (*Config, error) {
	path := os.Getenv("AOC_CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
		}
	case !explicit && errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("AOC_INPUTS_DIR"); v != "" {
		cfg.InputsDir = v
	}
	if v := os.Getenv("AOC_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("AOC_FRAME_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid AOC_FRAME_DELAY %q: %w", v, err)
		}
		cfg.Watch.FrameDelay = d
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.InputsDir == "" {
		cfg.InputsDir = DefaultInputsDir
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.Watch.FrameDelay == 0 {
		cfg.Watch.FrameDelay = DefaultFrameDelay
	}
}

func (c *Config) Validate() error {
	if c.InputsDir == "" {
		return errors.New("inputs_dir must not be empty")
	}
	if c.Watch.FrameDelay < 0 {
		return fmt.Errorf("watch.frame_delay must be positive, got %s", c.Watch.FrameDelay)
	}
	return nil
}

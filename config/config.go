// Package config loads searchbench settings from YAML files.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/karinahu/homework1-record/bench"
	"github.com/karinahu/homework1-record/logger"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	// ErrInvalidConfig is wrapped by every validation error.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrNoConfig is returned by Search when none of the paths can be read.
	ErrNoConfig = errors.New("no config file found")
)

// Config holds the benchmark settings.
type Config struct {
	Sizes     []int  `yaml:"sizes"`
	ValueMin  int    `yaml:"value_min"`
	ValueMax  int    `yaml:"value_max"`
	TargetMin int    `yaml:"target_min"`
	TargetMax int    `yaml:"target_max"`
	Seed      *int64 `yaml:"seed"`
	Format    string `yaml:"format"`
	LogLevel  string `yaml:"log_level"`
}

// DefaultPaths lists the files Search tries when no path is given.
var DefaultPaths = []string{
	"./searchbench.yaml",
	filepath.Join(os.Getenv("HOME"), ".searchbench.yaml"),
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Sizes:     append([]int(nil), bench.DefaultSizes...),
		ValueMin:  bench.DefaultValueMin,
		ValueMax:  bench.DefaultValueMax,
		TargetMin: bench.DefaultTargetMin,
		TargetMax: bench.DefaultTargetMax,
		Format:    FormatText,
		LogLevel:  "info",
	}
}

// Parse decodes YAML data on top of the defaults and validates the result.
// Keys missing from data keep their default values.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Search loads the first readable file in paths, or in DefaultPaths if
// paths is empty. Unreadable files are skipped; a readable file that fails
// to parse is an error.
func Search(paths ...string) (*Config, string, error) {
	if len(paths) == 0 {
		paths = DefaultPaths
	}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := Parse(data)
		if err != nil {
			return nil, path, fmt.Errorf("%s: %w", path, err)
		}
		return cfg, path, nil
	}
	return nil, "", ErrNoConfig
}

// Validate reports the first problem with c.
func (c *Config) Validate() error {
	for _, n := range c.Sizes {
		if n < 0 {
			return fmt.Errorf("%w: negative size %d", ErrInvalidConfig, n)
		}
	}
	if c.ValueMin > c.ValueMax {
		return fmt.Errorf("%w: value_min %d > value_max %d", ErrInvalidConfig, c.ValueMin, c.ValueMax)
	}
	if c.TargetMin > c.TargetMax {
		return fmt.Errorf("%w: target_min %d > target_max %d", ErrInvalidConfig, c.TargetMin, c.TargetMax)
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Level returns the parsed log level. It assumes c has been validated.
func (c *Config) Level() slog.Level {
	level, _ := logger.ParseLevel(c.LogLevel)
	return level
}

// Options converts c into harness options. extra is appended last and
// therefore wins over the values from c.
func (c *Config) Options(extra ...bench.Option) []bench.Option {
	opts := []bench.Option{
		bench.WithSizes(c.Sizes...),
		bench.WithValueRange(c.ValueMin, c.ValueMax),
		bench.WithTargetRange(c.TargetMin, c.TargetMax),
	}
	if c.Seed != nil {
		opts = append(opts, bench.WithSeed(*c.Seed))
	}
	return append(opts, extra...)
}

// Package config loads hexmaze settings from a YAML file and validates them.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Sentinel errors returned by Validate.
var (
	ErrSize      = errors.New("config: width and height must be positive")
	ErrThreshold = errors.New("config: threshold must be within [0,1]")
	ErrCount     = errors.New("config: count must be at least 1")
	ErrFormat    = errors.New("config: unknown output format")
	ErrCellSize  = errors.New("config: cell size must be positive")
	ErrLogLevel  = errors.New("config: unknown log level")
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatDOT  = "dot"
	FormatText = "text"
)

// Config holds every setting of the hexmaze binary.
type Config struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Threshold float64 `yaml:"threshold"`
	// Seed for the first maze; 0 means time-derived.
	Seed int64 `yaml:"seed"`
	// Count mazes are generated with seeds Seed, Seed+1, ...
	Count    int     `yaml:"count"`
	Format   string  `yaml:"format"`
	Output   string  `yaml:"output"`
	CellSize float64 `yaml:"cell_size"`
	// Mask is an optional path to a text mask: one row per line, '#' or '0'
	// for holes, anything else open.
	Mask     string `yaml:"mask"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Width:     24,
		Height:    16,
		Threshold: 0.5,
		Count:     1,
		Format:    FormatSVG,
		Output:    "-",
		CellSize:  12,
		LogLevel:  "info",
	}
}

// LoadFromPath reads a YAML file and overlays it on Default().
func LoadFromPath(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Load(data)
}

// Load parses YAML bytes over Default(). Unknown keys are rejected.
func Load(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config yaml: %w", err)
	}
	return cfg, nil
}

// Validate checks every field and returns the first problem found.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrSize, c.Width, c.Height)
	}
	if math.IsNaN(c.Threshold) || c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("%w: %v", ErrThreshold, c.Threshold)
	}
	if c.Count < 1 {
		return fmt.Errorf("%w: %d", ErrCount, c.Count)
	}
	switch c.Format {
	case FormatSVG, FormatDOT, FormatText:
	default:
		return fmt.Errorf("%w: %q", ErrFormat, c.Format)
	}
	if !(c.CellSize > 0) {
		return fmt.Errorf("%w: %v", ErrCellSize, c.CellSize)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level maps LogLevel to a slog.Level.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrLogLevel, c.LogLevel)
	}
	return lvl, nil
}

package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/hexogen/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Valid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestLoad_Overlay(t *testing.T) {
	cfg, err := config.Load([]byte("width: 40\nthreshold: 0.2\nformat: dot\nlog_level: debug\n"))
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 16, cfg.Height, "unset keys keep their defaults")
	assert.Equal(t, 0.2, cfg.Threshold)
	assert.Equal(t, config.FormatDOT, cfg.Format)
	require.NoError(t, cfg.Validate())

	lvl, _ := cfg.Level()
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoad_Empty(t *testing.T) {
	cfg, err := config.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_UnknownKey(t *testing.T) {
	_, err := config.Load([]byte("widht: 3\n"))
	assert.Error(t, err)
}

func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hexmaze.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 12\ncount: 3\n"), 0o600))

	cfg, err := config.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, int64(12), cfg.Seed)
	assert.Equal(t, 3, cfg.Count)

	_, err = config.LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		err    error
	}{
		{"Width", func(c *config.Config) { c.Width = 0 }, config.ErrSize},
		{"Height", func(c *config.Config) { c.Height = -2 }, config.ErrSize},
		{"Threshold", func(c *config.Config) { c.Threshold = 1.5 }, config.ErrThreshold},
		{"Count", func(c *config.Config) { c.Count = 0 }, config.ErrCount},
		{"Format", func(c *config.Config) { c.Format = "png" }, config.ErrFormat},
		{"CellSize", func(c *config.Config) { c.CellSize = 0 }, config.ErrCellSize},
		{"LogLevel", func(c *config.Config) { c.LogLevel = "loud" }, config.ErrLogLevel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tc.err)
		})
	}
}

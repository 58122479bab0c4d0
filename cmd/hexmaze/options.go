package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hexogen/hexgrid"
	"github.com/katalvlaran/hexogen/internal/config"
	"github.com/katalvlaran/hexogen/internal/ctxlog"
)

// rootOptions holds the persistent flags of the root command.
type rootOptions struct {
	configPath string
	logLevel   string
}

// gridFlags are shared by generate and stats.
type gridFlags struct {
	width     int
	height    int
	threshold float64
	seed      int64
	mask      string
}

func (f *gridFlags) register(cmd *cobra.Command) {
	d := config.Default()
	fs := cmd.Flags()
	fs.IntVar(&f.width, "width", d.Width, "Grid width in cells")
	fs.IntVar(&f.height, "height", d.Height, "Grid height in cells")
	fs.Float64Var(&f.threshold, "threshold", d.Threshold, "Probability of skipping the tracer on a step, in [0,1]")
	fs.Int64Var(&f.seed, "seed", d.Seed, "Random seed (0 = time-derived)")
	fs.StringVar(&f.mask, "mask", d.Mask, "Text mask file ('#' or '0' = hole); overrides width and height")
}

// apply copies explicitly set flags over cfg.
func (f *gridFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("width") {
		cfg.Width = f.width
	}
	if fs.Changed("height") {
		cfg.Height = f.height
	}
	if fs.Changed("threshold") {
		cfg.Threshold = f.threshold
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fs.Changed("mask") {
		cfg.Mask = f.mask
	}
}

// loadConfig reads --config (if any) over the defaults, lets apply override
// individual keys, validates, and installs a logger on the command context.
func (o *rootOptions) loadConfig(cmd *cobra.Command, apply func(*config.Config)) (context.Context, config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.LoadFromPath(o.configPath); err != nil {
			return nil, cfg, err
		}
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, cfg, err
	}

	lvl, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return ctxlog.WithLogger(ctx, logger), cfg, nil
}

// buildGrid returns the masked grid when cfg.Mask is set, else a full rectangle.
func buildGrid(cfg config.Config) (*hexgrid.HexGrid, error) {
	if cfg.Mask == "" {
		return hexgrid.NewRect(cfg.Width, cfg.Height)
	}
	f, err := os.Open(cfg.Mask)
	if err != nil {
		return nil, fmt.Errorf("open mask: %w", err)
	}
	defer f.Close()

	return gridFromMask(f)
}

func gridFromMask(r io.Reader) (*hexgrid.HexGrid, error) {
	values, err := hexgrid.ParseMask(r)
	if err != nil {
		return nil, err
	}
	return hexgrid.NewHexGrid(values, hexgrid.DefaultGridOptions())
}

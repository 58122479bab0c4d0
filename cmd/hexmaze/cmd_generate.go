package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hexogen/hexgrid"
	"github.com/katalvlaran/hexogen/internal/config"
	"github.com/katalvlaran/hexogen/internal/ctxlog"
	"github.com/katalvlaran/hexogen/maze"
	"github.com/katalvlaran/hexogen/render"
)

type generateFlags struct {
	grid     gridFlags
	count    int
	format   string
	output   string
	cellSize float64
	verify   bool
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	flags := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more mazes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, root, flags)
		},
	}

	d := config.Default()
	flags.grid.register(cmd)
	f := cmd.Flags()
	f.IntVar(&flags.count, "count", d.Count, "Number of mazes (seeds seed, seed+1, ...)")
	f.StringVarP(&flags.format, "format", "f", d.Format, "Output format: svg, dot, text")
	f.StringVarP(&flags.output, "output", "o", d.Output, "Output path ('-' = stdout); numbered when count > 1")
	f.Float64Var(&flags.cellSize, "cell-size", d.CellSize, "Hexagon radius in pixels (svg)")
	f.BoolVar(&flags.verify, "verify", false, "Check every maze is a spanning forest before writing it")

	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootOptions, flags *generateFlags) error {
	ctx, cfg, err := root.loadConfig(cmd, func(cfg *config.Config) {
		flags.grid.apply(cmd, cfg)
		fs := cmd.Flags()
		if fs.Changed("count") {
			cfg.Count = flags.count
		}
		if fs.Changed("format") {
			cfg.Format = flags.format
		}
		if fs.Changed("output") {
			cfg.Output = flags.output
		}
		if fs.Changed("cell-size") {
			cfg.CellSize = flags.cellSize
		}
	})
	if err != nil {
		return err
	}
	log := ctxlog.FromContext(ctx)

	grid, err := buildGrid(cfg)
	if err != nil {
		return fmt.Errorf("build grid: %w", err)
	}

	base := cfg.Seed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	// Every maze owns its generator; only the rendered bytes cross goroutines.
	outputs := make([][]byte, cfg.Count)
	seeds := make([]int64, cfg.Count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < cfg.Count; i++ {
		g.Go(func() error {
			m, out, err := renderOne(gctx, grid, cfg, seedAt(base, i), flags.verify)
			if err != nil {
				return fmt.Errorf("maze #%d: %w", i+1, err)
			}
			outputs[i], seeds[i] = out, m.Seed
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, out := range outputs {
		path := outputPath(cfg.Output, i, cfg.Count)
		if err := writeOutput(cmd.OutOrStdout(), path, out); err != nil {
			return err
		}
		log.Info("maze written", slog.String("path", path), slog.Int64("seed", seeds[i]))
	}

	return nil
}

// seedAt returns the seed of the i-th maze in a batch starting at base.
// 0 asks maze.Generate for a time-derived seed, so a batch stepping over it
// skips it and stays reproducible.
func seedAt(base int64, i int) int64 {
	seed := base + int64(i)
	if base < 0 && seed >= 0 {
		seed++
	}
	return seed
}

// renderOne generates a single maze and renders it in cfg.Format.
func renderOne(ctx context.Context, grid *hexgrid.HexGrid, cfg config.Config, seed int64, verify bool) (*maze.Maze, []byte, error) {
	m, err := maze.Generate(ctx, grid, maze.Options{Threshold: cfg.Threshold, Seed: seed})
	if err != nil {
		return nil, nil, err
	}
	if verify {
		if err := render.VerifyForest(m); err != nil {
			return nil, nil, err
		}
	}

	var buf bytes.Buffer
	switch cfg.Format {
	case config.FormatDOT:
		b, err := render.DOT(m)
		if err != nil {
			return nil, nil, err
		}
		buf.Write(b)
	case config.FormatText:
		err = render.Text(&buf, m)
	default:
		opts := render.DefaultSVGOptions()
		opts.CellSize = cfg.CellSize
		err = render.SVG(&buf, m, opts)
	}
	if err != nil {
		return nil, nil, err
	}

	return m, buf.Bytes(), nil
}

// outputPath numbers path when more than one maze is written to files:
// "maze.svg" becomes "maze-01.svg", "maze-02.svg", ...
func outputPath(path string, i, count int) string {
	if count == 1 || path == "-" {
		return path
	}
	ext := filepath.Ext(path)
	width := len(fmt.Sprint(count))
	return fmt.Sprintf("%s-%0*d%s", strings.TrimSuffix(path, ext), width, i+1, ext)
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

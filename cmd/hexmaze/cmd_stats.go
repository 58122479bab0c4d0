package main

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hexogen/hybrid"
	"github.com/katalvlaran/hexogen/internal/config"
	"github.com/katalvlaran/hexogen/internal/ctxlog"
	"github.com/katalvlaran/hexogen/maze"
)

var errSteps = errors.New("stats: --steps must be at least 1")

type statsFlags struct {
	grid     gridFlags
	steps    int
	markdown bool
}

// statsRow is one line of the texture table.
type statsRow struct {
	threshold float64
	stats     hybrid.Stats
	texture   maze.Texture
}

func newStatsCmd(root *rootOptions) *cobra.Command {
	flags := &statsFlags{}
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Compare maze texture across thresholds",
		Long: "stats carves the same grid with the same seed at evenly spaced thresholds\n" +
			"from 0 to 1 and prints dead ends, junctions and diameter for each.\n" +
			"With --steps=1 only the configured threshold is measured.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStats(cmd, root, flags)
		},
	}

	flags.grid.register(cmd)
	cmd.Flags().IntVar(&flags.steps, "steps", 5, "Number of thresholds sampled across [0,1]")
	cmd.Flags().BoolVar(&flags.markdown, "markdown", false, "Render the table as Markdown")

	return cmd
}

func runStats(cmd *cobra.Command, root *rootOptions, flags *statsFlags) error {
	if flags.steps < 1 {
		return errSteps
	}
	ctx, cfg, err := root.loadConfig(cmd, func(cfg *config.Config) {
		flags.grid.apply(cmd, cfg)
	})
	if err != nil {
		return err
	}
	log := ctxlog.FromContext(ctx)

	grid, err := buildGrid(cfg)
	if err != nil {
		return fmt.Errorf("build grid: %w", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	thresholds := sampleThresholds(cfg.Threshold, flags.steps)
	rows := make([]statsRow, len(thresholds))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, th := range thresholds {
		g.Go(func() error {
			m, err := maze.Generate(gctx, grid, maze.Options{Threshold: th, Seed: seed})
			if err != nil {
				return fmt.Errorf("threshold %.2f: %w", th, err)
			}
			rows[i] = statsRow{threshold: th, stats: m.Stats, texture: m.Texture()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	log.Debug("stats computed", slog.Int("steps", len(rows)), slog.Int64("seed", seed))

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"threshold", "tracer", "kruskal", "rejected", "dead ends", "junctions", "diameter"})
	for _, r := range rows {
		st, tx := r.stats, r.texture
		tw.AppendRow(table.Row{
			fmt.Sprintf("%.2f", r.threshold),
			st.Tracer, st.Kruskal, st.Rejected,
			tx.DeadEnds, tx.Junctions, tx.Diameter,
		})
	}
	cfgs := make([]table.ColumnConfig, 7)
	for i := range cfgs {
		cfgs[i] = table.ColumnConfig{Number: i + 1, Align: text.AlignRight}
	}
	tw.SetColumnConfigs(cfgs)

	out := tw.Render()
	if flags.markdown {
		out = tw.RenderMarkdown()
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "seed %d, %d cells\n%s\n", seed, rows[0].texture.Cells, out)

	return err
}

// sampleThresholds returns steps evenly spaced values over [0,1], or just
// fallback when steps is 1.
func sampleThresholds(fallback float64, steps int) []float64 {
	if steps == 1 {
		return []float64{fallback}
	}
	out := make([]float64, steps)
	for i := range out {
		out[i] = float64(i) / float64(steps-1)
	}
	return out
}

// Package maze turns a hexgrid.HexGrid into a maze by running a hybrid
// tracer/Kruskal generator over its shuffled doors.
//
// A Maze is the set of doors left open (passages). Over a connected grid it
// is a spanning tree; over a masked grid with islands it is a spanning forest
// with one tree per island.
package maze

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/hexogen/hexgrid"
	"github.com/katalvlaran/hexogen/hybrid"
	"github.com/katalvlaran/hexogen/internal/ctxlog"
)

// ErrNilGrid indicates Generate was called without a grid.
var ErrNilGrid = errors.New("maze: grid is nil")

// ctxCheckEvery is how many passages are carved between context checks.
const ctxCheckEvery = 1024

// Options configures Generate.
type Options struct {
	// Threshold is the probability of skipping the tracer on a step:
	// 0 gives long corridors, 1 gives a plain randomized Kruskal maze.
	Threshold float64
	// Seed drives both the door shuffle and the generator draws.
	// 0 picks a time-derived seed, reported back in Maze.Seed.
	Seed int64
}

// DefaultOptions returns Options with Threshold=0.5 and a time-derived seed.
func DefaultOptions() Options {
	return Options{Threshold: 0.5}
}

// Maze is a generated spanning forest over a grid.
type Maze struct {
	Grid      *hexgrid.HexGrid
	Passages  []hexgrid.Door
	Seed      int64
	Threshold float64
	Stats     hybrid.Stats

	adj map[hexgrid.Cell][]hexgrid.Cell
}

// Generate carves a maze into grid.
//
// Steps:
//  1. Resolve the seed and build one *rand.Rand from it.
//  2. Shuffle the grid's doors with that source.
//  3. Feed the doors to hybrid.New with the same source as rng.
//  4. Drain the generator, checking ctx every ctxCheckEvery passages.
//
// The same grid, threshold and non-zero seed always produce the same maze.
// Errors from hybrid.New (e.g. hybrid.ErrThreshold) are wrapped.
func Generate(ctx context.Context, grid *hexgrid.HexGrid, opts Options) (*Maze, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	log := ctxlog.FromContext(ctx)

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))
	doors := grid.ShuffledDoors(r)

	// Doors never join a cell to itself, so the self-loop scan is skipped.
	gen, err := hybrid.New[hexgrid.Cell, hexgrid.Door](doors, opts.Threshold, r.Float64, hybrid.WithValidation(false))
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}

	passages := make([]hexgrid.Door, 0, len(grid.Cells()))
	for {
		d, ok := gen.Next()
		if !ok {
			break
		}
		passages = append(passages, d)
		if len(passages)%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("maze: generation interrupted after %d passages: %w", len(passages), err)
			}
		}
	}

	m := &Maze{
		Grid:      grid,
		Passages:  passages,
		Seed:      seed,
		Threshold: opts.Threshold,
		Stats:     gen.Stats(),
	}
	m.buildAdjacency()

	log.Debug("maze generated",
		slog.Int("width", grid.Width),
		slog.Int("height", grid.Height),
		slog.Int64("seed", seed),
		slog.Float64("threshold", opts.Threshold),
		slog.Int("doors", len(doors)),
		slog.Int("passages", len(passages)),
		slog.Int("tracer", m.Stats.Tracer),
		slog.Int("kruskal", m.Stats.Kruskal),
		slog.Int("rejected", m.Stats.Rejected))

	return m, nil
}

func (m *Maze) buildAdjacency() {
	m.adj = make(map[hexgrid.Cell][]hexgrid.Cell, len(m.Passages)+1)
	for _, d := range m.Passages {
		m.adj[d.From] = append(m.adj[d.From], d.To)
		m.adj[d.To] = append(m.adj[d.To], d.From)
	}
}

// Open reports whether a passage joins a and b.
func (m *Maze) Open(a, b hexgrid.Cell) bool {
	for _, n := range m.adj[a] {
		if n == b {
			return true
		}
	}

	return false
}

// Degree returns the number of passages leaving c.
func (m *Maze) Degree(c hexgrid.Cell) int {
	return len(m.adj[c])
}

// Links returns the cells reachable from c through one passage.
func (m *Maze) Links(c hexgrid.Cell) []hexgrid.Cell {
	return m.adj[c]
}

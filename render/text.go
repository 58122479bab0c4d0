package render

import (
	"fmt"
	"io"

	"github.com/katalvlaran/hexogen/maze"
)

// Text writes a short human-readable summary of m.
func Text(w io.Writer, m *maze.Maze) error {
	tx := m.Texture()
	_, err := fmt.Fprintf(w,
		"size:      %dx%d\nseed:      %d\nthreshold: %.3f\ncells:     %d\npassages:  %d (tracer %d, kruskal %d, rejected %d)\ndead ends: %d\njunctions: %d\ndiameter:  %d\n",
		m.Grid.Width, m.Grid.Height, m.Seed, m.Threshold, tx.Cells,
		len(m.Passages), m.Stats.Tracer, m.Stats.Kruskal, m.Stats.Rejected,
		tx.DeadEnds, tx.Junctions, tx.Diameter)
	if err != nil {
		return fmt.Errorf("render: write text: %w", err)
	}

	return nil
}

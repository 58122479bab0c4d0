package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/hexogen/hexgrid"
	"github.com/katalvlaran/hexogen/maze"
)

// ErrCellSize indicates a non-positive hexagon size.
var ErrCellSize = errors.New("render: cell size must be positive")

var sqrt3 = math.Sqrt(3)

// SVGOptions controls SVG drawing.
type SVGOptions struct {
	// CellSize is the hexagon circumradius in pixels.
	CellSize float64
	// WallWidth is the stroke width of walls.
	WallWidth float64
	// Wall and Floor are CSS colours.
	Wall, Floor string
}

// DefaultSVGOptions returns 12px hexagons with 2px black walls on white.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		CellSize:  12,
		WallWidth: 2,
		Wall:      "#000",
		Floor:     "#fff",
	}
}

// center returns the pixel centre of c for pointy-top hexagons of
// circumradius size in odd-r layout, offset by margin.
func center(c hexgrid.Cell, size, margin float64) (x, y float64) {
	x = margin + sqrt3*size*(float64(c.X)+0.5*float64(c.Y&1)) + sqrt3*size/2
	y = margin + 1.5*size*float64(c.Y) + size
	return x, y
}

// corner returns corner i of the hexagon at (cx,cy). Side d of the hexagon
// runs from corner d to corner d+1 (mod 6), matching hexgrid.Direction.
func corner(cx, cy, size float64, i int) (x, y float64) {
	rad := math.Pi / 180 * float64(60*i-30)
	return cx + size*math.Cos(rad), cy + size*math.Sin(rad)
}

// SVG draws m as a standalone SVG document. Every open cell is filled and
// every side without a passage becomes a wall. Shared walls are drawn once.
func SVG(w io.Writer, m *maze.Maze, opts SVGOptions) error {
	if !(opts.CellSize > 0) {
		return ErrCellSize
	}
	size := opts.CellSize
	margin := opts.WallWidth + 1
	width := 2*margin + sqrt3*size*(float64(m.Grid.Width)+0.5)
	height := 2*margin + 1.5*size*float64(m.Grid.Height-1) + 2*size

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.2f %.2f">`+"\n",
		math.Ceil(width), math.Ceil(height), width, height)
	fmt.Fprintf(bw, `<g fill="%s" stroke="none">`+"\n", opts.Floor)
	for _, c := range m.Grid.Cells() {
		cx, cy := center(c, size, margin)
		bw.WriteString(`<polygon points="`)
		for i := 0; i < 6; i++ {
			x, y := corner(cx, cy, size, i)
			if i > 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, "%.2f,%.2f", x, y)
		}
		bw.WriteString(`"/>` + "\n")
	}
	bw.WriteString("</g>\n")

	fmt.Fprintf(bw, `<g stroke="%s" stroke-width="%.2f" stroke-linecap="round">`+"\n", opts.Wall, opts.WallWidth)
	for _, c := range m.Grid.Cells() {
		cx, cy := center(c, size, margin)
		for _, d := range hexgrid.Directions {
			n := m.Grid.Step(c, d)
			if m.Open(c, n) {
				continue
			}
			// An open neighbour on a backward side draws this wall itself.
			if d >= hexgrid.West && m.Grid.Open(n) {
				continue
			}
			x1, y1 := corner(cx, cy, size, int(d))
			x2, y2 := corner(cx, cy, size, (int(d)+1)%6)
			fmt.Fprintf(bw, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", x1, y1, x2, y2)
		}
	}
	bw.WriteString("</g>\n</svg>\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("render: write svg: %w", err)
	}

	return nil
}

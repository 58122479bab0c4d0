package hexgrid

import (
	"math/rand"
)

// oddR holds the neighbour steps for even (index 0) and odd (index 1) rows,
// indexed by Direction.
var oddR = [2][6][2]int{
	{{1, 0}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}},
	{{1, 0}, {1, 1}, {0, 1}, {-1, 0}, {0, -1}, {1, -1}},
}

// NewHexGrid constructs a HexGrid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewHexGrid(values [][]int, opts GridOptions) (*HexGrid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	return &HexGrid{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		OpenThreshold:   opts.OpenThreshold,
		neighborOffsets: oddR,
	}, nil
}

// NewRect returns a w×h grid with every cell open.
// Returns ErrBadSize if w or h is below 1.
func NewRect(w, h int) (*HexGrid, error) {
	if w < 1 || h < 1 {
		return nil, ErrBadSize
	}
	values := make([][]int, h)
	for y := range values {
		values[y] = make([]int, w)
		for x := range values[y] {
			values[y][x] = 1
		}
	}

	return NewHexGrid(values, DefaultGridOptions())
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (hg *HexGrid) InBounds(x, y int) bool {
	return x >= 0 && x < hg.Width && y >= 0 && y < hg.Height
}

// Open reports whether c is inside the grid and not a hole.
// Complexity: O(1).
func (hg *HexGrid) Open(c Cell) bool {
	return hg.InBounds(c.X, c.Y) && hg.CellValues[c.Y][c.X] >= hg.OpenThreshold
}

// Step returns the cell adjacent to c in direction d. The result may lie
// outside the grid.
func (hg *HexGrid) Step(c Cell, d Direction) Cell {
	off := hg.neighborOffsets[c.Y&1][d]
	return Cell{X: c.X + off[0], Y: c.Y + off[1]}
}

// DirectionTo returns the direction from a to b when they are adjacent.
func (hg *HexGrid) DirectionTo(a, b Cell) (Direction, bool) {
	for _, d := range Directions {
		if hg.Step(a, d) == b {
			return d, true
		}
	}

	return 0, false
}

// Neighbors returns the open cells adjacent to c in Directions order.
// Complexity: O(1).
func (hg *HexGrid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 6)
	for _, d := range Directions {
		n := hg.Step(c, d)
		if hg.Open(n) {
			out = append(out, n)
		}
	}

	return out
}

// Cells returns every open cell in row-major order.
func (hg *HexGrid) Cells() []Cell {
	out := make([]Cell, 0, hg.Width*hg.Height)
	for y := 0; y < hg.Height; y++ {
		for x := 0; x < hg.Width; x++ {
			if c := (Cell{X: x, Y: y}); hg.Open(c) {
				out = append(out, c)
			}
		}
	}

	return out
}

// Doors returns every pair of adjacent open cells exactly once, scanning
// cells in row-major order and looking only forward (E, SE, SW).
// The order is deterministic.
// Complexity: O(W×H).
func (hg *HexGrid) Doors() []Door {
	out := make([]Door, 0, 3*hg.Width*hg.Height)
	forward := [3]Direction{East, SouthEast, SouthWest}
	for y := 0; y < hg.Height; y++ {
		for x := 0; x < hg.Width; x++ {
			c := Cell{X: x, Y: y}
			if !hg.Open(c) {
				continue
			}
			for _, d := range forward {
				if n := hg.Step(c, d); hg.Open(n) {
					out = append(out, Door{From: c, To: n})
				}
			}
		}
	}

	return out
}

// ShuffledDoors returns Doors() in an order drawn from r (Fisher–Yates).
// The same r state yields the same order.
func (hg *HexGrid) ShuffledDoors(r *rand.Rand) []Door {
	doors := hg.Doors()
	r.Shuffle(len(doors), func(i, j int) {
		doors[i], doors[j] = doors[j], doors[i]
	})

	return doors
}

// Index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (hg *HexGrid) Index(c Cell) int {
	return c.Y*hg.Width + c.X
}

// Coordinate converts a row‑major index back to a Cell.
// Complexity: O(1).
func (hg *HexGrid) Coordinate(idx int) Cell {
	return Cell{X: idx % hg.Width, Y: idx / hg.Width}
}

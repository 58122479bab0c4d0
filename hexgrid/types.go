package hexgrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for hexgrid construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("hexgrid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("hexgrid: all rows must have the same length")
	// ErrBadSize indicates a non-positive width or height.
	ErrBadSize = errors.New("hexgrid: width and height must be positive")
)

// Direction names one of the six sides of a pointy-top hexagon.
type Direction int

const (
	// East is the right-hand side.
	East Direction = iota
	// SouthEast is the lower-right side.
	SouthEast
	// SouthWest is the lower-left side.
	SouthWest
	// West is the left-hand side.
	West
	// NorthWest is the upper-left side.
	NorthWest
	// NorthEast is the upper-right side.
	NorthEast
)

// Directions lists all six directions in neighbour order.
var Directions = [6]Direction{East, SouthEast, SouthWest, West, NorthWest, NorthEast}

var directionNames = [6]string{"E", "SE", "SW", "W", "NW", "NE"}

// String returns the compass abbreviation.
func (d Direction) String() string {
	if d < East || d > NorthEast {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	return (d + 3) % 6
}

// Cell identifies a hexagon by its offset coordinates. It is the node type
// fed to package hybrid, so it must stay comparable.
type Cell struct {
	X, Y int
}

// String formats the cell as "x,y".
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Door is an opening between two adjacent cells. It satisfies
// hybrid.Edge[Cell].
type Door struct {
	From, To Cell
}

// A returns the first cell.
func (d Door) A() Cell { return d.From }

// B returns the second cell.
func (d Door) B() Cell { return d.To }

// String formats the door as "x,y-x,y".
func (d Door) String() string {
	return d.From.String() + "-" + d.To.String()
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// OpenThreshold specifies the minimum cell value considered open.
	OpenThreshold int
}

// DefaultGridOptions returns GridOptions with OpenThreshold=1
// (values ≥1 are open, 0 is a hole).
func DefaultGridOptions() GridOptions {
	return GridOptions{
		OpenThreshold: 1,
	}
}

// HexGrid is an immutable hexagonal grid.
// Width and Height define dimensions; CellValues[y][x] holds the input value.
// neighborOffsets[parity][dir] is the (dx,dy) step for rows of that parity.
type HexGrid struct {
	Width, Height   int
	CellValues      [][]int
	OpenThreshold   int
	neighborOffsets [2][6][2]int
}

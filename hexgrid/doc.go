// Package hexgrid treats a rectangular patch of hexagonal cells as a graph and
// produces the edge sequence consumed by package hybrid.
//
// What:
//
//   - HexGrid wraps a rectangular [][]int of cell values in "odd-r" offset
//     coordinates: pointy-top hexagons, odd rows shifted right by half a cell.
//   - Cells with value ≥ OpenThreshold are open; the rest are holes, so a
//     masked grid can fall apart into several components.
//   - Each open cell has up to six neighbours (E, SE, SW, W, NW, NE).
//   - Doors() lists every adjacent open pair once; ShuffledDoors() shuffles
//     that list, which is what makes a Kruskal pass over it randomized.
//
// Why:
//
//   - Maze generation: a spanning tree over Doors() is a perfect maze.
//   - Masks: irregular outlines and islands produce spanning forests.
//
// Complexity:
//
//   - NewHexGrid:          O(W×H) time and memory.
//   - Doors, ShuffledDoors: O(W×H) time and memory (at most 3 doors per cell).
//   - ConnectedComponents: O(W×H×6) time, O(W×H) memory.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadSize: NewRect called with a non-positive dimension.
package hexgrid

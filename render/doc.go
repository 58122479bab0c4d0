// Package render consumes generated mazes: it draws them as SVG, exports
// their passage graph as Graphviz DOT, prints a text summary, and verifies
// the spanning-forest property independently of the generator.
//
// DOT export and verification go through gonum's graph packages
// (graph/simple, graph/topo, graph/encoding/dot), so the check shares no
// code with the union-find used during generation.
//
// Errors:
//
//   - ErrCycle:       the passages contain a cycle or a repeated door.
//   - ErrNotSpanning: some open region is not fully connected by passages.
//   - ErrCellSize:    SVGOptions.CellSize is not positive.
package render

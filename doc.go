// Package hexogen is a small toolkit for carving mazes into hexagonal grids
// with a tunable blend of two spanning-tree strategies.
//
// 🚀 What is hexogen?
//
//	A generic spanning-forest generator plus the grid, maze and rendering
//	layers around it:
//		• Union–find: disjoint sets with path halving and union by rank
//		• Hybrid generator: a tracer walk interleaved with a Kruskal pass
//		• Hex grids: odd-r offset layout, masks, doors, components
//		• Mazes: context-aware generation and texture metrics
//		• Rendering: SVG, Graphviz DOT, text and forest verification
//
// ✨ Why a hybrid?
//
//   - threshold 0 grows long winding corridors (tracer first)
//   - threshold 1 is plain randomized Kruskal (short branches, many dead ends)
//   - anything in between mixes the two per step
//
// Under the hood, everything is organized under these packages:
//
//	disjoint/    union–find over any comparable node type
//	hybrid/      Edge, EdgeIndex, Tracer, KruskalPass and the Hybrid iterator
//	hexgrid/     HexGrid, Cell, Door, Direction, ParseMask
//	maze/        Generate, Maze, Texture
//	render/      SVG, DOT, Text, VerifyForest
//	cmd/hexmaze  command-line front end (generate, stats, version)
//
// Quick start:
//
//	grid, _ := hexgrid.NewRect(24, 16)
//	m, _ := maze.Generate(ctx, grid, maze.Options{Threshold: 0.3, Seed: 42})
//	_ = render.SVG(os.Stdout, m, render.DefaultSVGOptions())
package hexogen

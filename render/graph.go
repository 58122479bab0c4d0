package render

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/hexogen/hexgrid"
	"github.com/katalvlaran/hexogen/maze"
)

var (
	// ErrCycle indicates the passages do not form a forest.
	ErrCycle = errors.New("render: passages contain a cycle")
	// ErrNotSpanning indicates an open region split into several trees.
	ErrNotSpanning = errors.New("render: passages do not span every open region")
)

// cellNode is a gonum node carrying its grid cell for DOT output.
type cellNode struct {
	id   int64
	cell hexgrid.Cell
}

func (n cellNode) ID() int64 { return n.id }

// DOTID names the node "cX_Y".
func (n cellNode) DOTID() string { return fmt.Sprintf("c%d_%d", n.cell.X, n.cell.Y) }

// Attributes pins the node at its hex centre so neato -n draws the grid shape.
func (n cellNode) Attributes() []encoding.Attribute {
	cx, cy := center(n.cell, 1, 0)
	return []encoding.Attribute{
		{Key: "pos", Value: fmt.Sprintf("\"%.3f,%.3f!\"", cx, -cy)},
	}
}

var (
	_ graph.Node          = cellNode{}
	_ dot.Node            = cellNode{}
	_ encoding.Attributer = cellNode{}
)

// passageGraph builds an undirected gonum graph with one node per open cell
// and one edge per passage. It also returns the number of passages that
// collapsed onto an existing edge.
func passageGraph(m *maze.Maze) (*simple.UndirectedGraph, int) {
	g := simple.NewUndirectedGraph()
	nodes := make(map[hexgrid.Cell]cellNode, m.Grid.Width*m.Grid.Height)
	for _, c := range m.Grid.Cells() {
		n := cellNode{id: int64(m.Grid.Index(c)), cell: c}
		nodes[c] = n
		g.AddNode(n)
	}
	dup := 0
	for _, d := range m.Passages {
		u, v := nodes[d.From], nodes[d.To]
		if g.HasEdgeBetween(u.ID(), v.ID()) {
			dup++
			continue
		}
		g.SetEdge(g.NewEdge(u, v))
	}

	return g, dup
}

// DOT renders the passage graph in Graphviz DOT syntax.
func DOT(m *maze.Maze) ([]byte, error) {
	g, _ := passageGraph(m)
	b, err := dot.Marshal(g, "maze", "", "\t")
	if err != nil {
		return nil, fmt.Errorf("render: marshal dot: %w", err)
	}

	return b, nil
}

// VerifyForest checks, with gonum's topo package, that the passages form a
// forest with exactly one tree per open region of the grid.
//
// For a simple graph, edges = nodes − components holds iff it is acyclic.
func VerifyForest(m *maze.Maze) error {
	g, dup := passageGraph(m)
	if dup > 0 {
		return fmt.Errorf("%w: %d repeated doors", ErrCycle, dup)
	}
	comps := topo.ConnectedComponents(g)
	nodes := g.Nodes().Len()
	edges := g.Edges().Len()
	if edges != nodes-len(comps) {
		return fmt.Errorf("%w: %d edges over %d nodes in %d components", ErrCycle, edges, nodes, len(comps))
	}
	if want := len(m.Grid.ConnectedComponents()); len(comps) != want {
		return fmt.Errorf("%w: %d trees for %d regions", ErrNotSpanning, len(comps), want)
	}

	return nil
}

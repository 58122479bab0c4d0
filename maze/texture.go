package maze

import "github.com/katalvlaran/hexogen/hexgrid"

// Texture summarizes the shape of a maze. Low thresholds favour few dead
// ends and a long diameter; high thresholds the opposite.
type Texture struct {
	Cells     int
	DeadEnds  int // cells with exactly one passage
	Junctions int // cells with three or more passages
	Diameter  int // longest shortest path, in passages, over all trees
}

// Texture computes the texture metrics.
// Complexity: O(W×H).
func (m *Maze) Texture() Texture {
	t := Texture{}
	for _, c := range m.Grid.Cells() {
		t.Cells++
		switch deg := m.Degree(c); {
		case deg == 1:
			t.DeadEnds++
		case deg >= 3:
			t.Junctions++
		}
	}
	for _, comp := range m.Grid.ConnectedComponents() {
		root := m.Grid.Coordinate(comp[0])
		far, _ := m.farthest(root)
		if _, d := m.farthest(far); d > t.Diameter {
			t.Diameter = d
		}
	}

	return t
}

// farthest runs a BFS over passages from start and returns the last cell
// reached with its distance. In a tree two sweeps find the diameter.
func (m *Maze) farthest(start hexgrid.Cell) (hexgrid.Cell, int) {
	dist := map[hexgrid.Cell]int{start: 0}
	queue := []hexgrid.Cell{start}
	last := start
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		last = u
		for _, v := range m.adj[u] {
			if _, ok := dist[v]; !ok {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return last, dist[last]
}

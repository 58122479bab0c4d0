package hexgrid

// ConnectedComponents finds all contiguous regions of open cells.
// Returns a slice of components; each component is a slice of row-major
// cell indices in BFS order. Components appear in row-major order of their
// first cell.
//
// To convert an index back to a Cell, use Coordinate(idx).
//
// Time:   O(W·H·6).
// Memory: O(W·H) for visited flags and output.
func (hg *HexGrid) ConnectedComponents() [][]int {
	seen := make([]bool, hg.Width*hg.Height)
	var comps [][]int

	for y := 0; y < hg.Height; y++ {
		for x := 0; x < hg.Width; x++ {
			start := Cell{X: x, Y: y}
			if !hg.Open(start) {
				continue // hole
			}
			i0 := hg.Index(start)
			if seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				u := hg.Coordinate(queue[qi])
				for _, v := range hg.Neighbors(u) {
					vi := hg.Index(v)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

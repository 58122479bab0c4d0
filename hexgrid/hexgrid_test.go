package hexgrid_test

import (
	"errors"
	"math/rand"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/katalvlaran/hexogen/hexgrid"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNewHexGrid_Errors verifies that NewHexGrid rejects empty or ragged inputs.
func TestNewHexGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, hexgrid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, hexgrid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, hexgrid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := hexgrid.NewHexGrid(tc.grid, hexgrid.DefaultGridOptions())
			if !errors.Is(err, tc.err) {
				t.Errorf("NewHexGrid(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewRect_BadSize rejects non-positive dimensions.
func TestNewRect_BadSize(t *testing.T) {
	for _, wh := range [][2]int{{0, 3}, {3, 0}, {-1, -1}} {
		if _, err := hexgrid.NewRect(wh[0], wh[1]); !errors.Is(err, hexgrid.ErrBadSize) {
			t.Errorf("NewRect(%d,%d) error = %v; want ErrBadSize", wh[0], wh[1], err)
		}
	}
}

// TestNewHexGrid_DeepCopy ensures later mutation of the input has no effect.
func TestNewHexGrid_DeepCopy(t *testing.T) {
	values := [][]int{{1, 1}, {1, 1}}
	hg, err := hexgrid.NewHexGrid(values, hexgrid.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewHexGrid error: %v", err)
	}
	values[0][0] = 0
	if !hg.Open(hexgrid.Cell{X: 0, Y: 0}) {
		t.Error("grid changed after mutating the input slice")
	}
}

//----------------------------------------------------------------------------//
// Adjacency
//----------------------------------------------------------------------------//

// TestNeighbors_Symmetric checks that adjacency is symmetric and that
// DirectionTo agrees with Opposite on every cell of a 5×4 grid.
func TestNeighbors_Symmetric(t *testing.T) {
	hg, err := hexgrid.NewRect(5, 4)
	if err != nil {
		t.Fatalf("NewRect error: %v", err)
	}
	for _, c := range hg.Cells() {
		for _, n := range hg.Neighbors(c) {
			d, ok := hg.DirectionTo(c, n)
			if !ok {
				t.Fatalf("DirectionTo(%v,%v) not found", c, n)
			}
			back, ok := hg.DirectionTo(n, c)
			if !ok || back != d.Opposite() {
				t.Errorf("DirectionTo(%v,%v)=%v; want %v", n, c, back, d.Opposite())
			}
		}
	}
}

// TestNeighbors_Interior checks the six neighbours of interior cells on both
// row parities.
func TestNeighbors_Interior(t *testing.T) {
	hg, _ := hexgrid.NewRect(5, 5)

	even := hg.Neighbors(hexgrid.Cell{X: 2, Y: 2})
	wantEven := []hexgrid.Cell{{3, 2}, {2, 3}, {1, 3}, {1, 2}, {1, 1}, {2, 1}}
	if !reflect.DeepEqual(even, wantEven) {
		t.Errorf("even row neighbours = %v; want %v", even, wantEven)
	}

	odd := hg.Neighbors(hexgrid.Cell{X: 2, Y: 1})
	wantOdd := []hexgrid.Cell{{3, 1}, {3, 2}, {2, 2}, {1, 1}, {2, 0}, {3, 0}}
	if !reflect.DeepEqual(odd, wantOdd) {
		t.Errorf("odd row neighbours = %v; want %v", odd, wantOdd)
	}
}

// TestNeighbors_Holes skips closed cells.
func TestNeighbors_Holes(t *testing.T) {
	hg, _ := hexgrid.NewHexGrid([][]int{
		{1, 0, 1},
		{1, 1, 0},
	}, hexgrid.DefaultGridOptions())

	got := hg.Neighbors(hexgrid.Cell{X: 0, Y: 0})
	want := []hexgrid.Cell{{0, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(0,0) = %v; want %v", got, want)
	}
}

//----------------------------------------------------------------------------//
// Doors
//----------------------------------------------------------------------------//

// TestDoors_Count matches the closed form (w-1)h + (2w-1)(h-1) for full grids.
func TestDoors_Count(t *testing.T) {
	for _, wh := range [][2]int{{1, 1}, {3, 2}, {4, 4}, {7, 3}} {
		hg, _ := hexgrid.NewRect(wh[0], wh[1])
		w, h := wh[0], wh[1]
		want := (w-1)*h + (2*w-1)*(h-1)
		if got := len(hg.Doors()); got != want {
			t.Errorf("%dx%d doors = %d; want %d", w, h, got, want)
		}
	}
}

// TestDoors_Unique ensures no pair appears twice in either orientation and
// that every door joins adjacent open cells.
func TestDoors_Unique(t *testing.T) {
	hg, _ := hexgrid.NewHexGrid([][]int{
		{1, 1, 1, 0},
		{1, 0, 1, 1},
		{1, 1, 1, 1},
	}, hexgrid.DefaultGridOptions())

	seen := map[[2]hexgrid.Cell]bool{}
	for _, d := range hg.Doors() {
		if !hg.Open(d.A()) || !hg.Open(d.B()) {
			t.Fatalf("door %v touches a hole", d)
		}
		if _, ok := hg.DirectionTo(d.A(), d.B()); !ok {
			t.Fatalf("door %v joins non-adjacent cells", d)
		}
		key, rev := [2]hexgrid.Cell{d.From, d.To}, [2]hexgrid.Cell{d.To, d.From}
		if seen[key] || seen[rev] {
			t.Fatalf("duplicate door %v", d)
		}
		seen[key] = true
	}
}

// TestShuffledDoors_Permutation checks the shuffle keeps the same set and is
// reproducible for a fixed seed.
func TestShuffledDoors_Permutation(t *testing.T) {
	hg, _ := hexgrid.NewRect(6, 5)
	a := hg.ShuffledDoors(rand.New(rand.NewSource(42)))
	b := hg.ShuffledDoors(rand.New(rand.NewSource(42)))
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed produced different orders")
	}

	key := func(ds []hexgrid.Door) []string {
		out := make([]string, len(ds))
		for i, d := range ds {
			out[i] = d.String()
		}
		sort.Strings(out)
		return out
	}
	if !reflect.DeepEqual(key(a), key(hg.Doors())) {
		t.Error("shuffle changed the set of doors")
	}
}

// TestIndexCoordinate round-trips row-major indices.
func TestIndexCoordinate(t *testing.T) {
	hg, _ := hexgrid.NewRect(4, 3)
	for i := 0; i < 12; i++ {
		if got := hg.Index(hg.Coordinate(i)); got != i {
			t.Errorf("Index(Coordinate(%d)) = %d", i, got)
		}
	}
}

// TestDirection_String covers names and the fallback.
func TestDirection_String(t *testing.T) {
	if hexgrid.SouthWest.String() != "SW" {
		t.Errorf("SouthWest = %q", hexgrid.SouthWest.String())
	}
	if hexgrid.Direction(9).String() != "Direction(9)" {
		t.Errorf("fallback = %q", hexgrid.Direction(9).String())
	}
}

// TestParseMask reads holes and open cells and rejects ragged masks.
func TestParseMask(t *testing.T) {
	got, err := hexgrid.ParseMask(strings.NewReader("..#\n\n.0.\r\n"))
	if err != nil {
		t.Fatalf("ParseMask error: %v", err)
	}
	want := [][]int{{1, 1, 0}, {1, 0, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseMask = %v; want %v", got, want)
	}

	if _, err := hexgrid.ParseMask(strings.NewReader("..\n...\n")); !errors.Is(err, hexgrid.ErrNonRectangular) {
		t.Errorf("ragged mask error = %v; want ErrNonRectangular", err)
	}
	if _, err := hexgrid.ParseMask(strings.NewReader("\n\n")); !errors.Is(err, hexgrid.ErrEmptyGrid) {
		t.Errorf("empty mask error = %v; want ErrEmptyGrid", err)
	}
}

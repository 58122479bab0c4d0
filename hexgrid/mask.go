package hexgrid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseMask reads a text mask into cell values usable with NewHexGrid:
// one grid row per line, one character per cell, '#' and '0' are holes (0)
// and anything else is open (1). Blank lines are ignored.
// Returns ErrEmptyGrid for a mask without rows and ErrNonRectangular when
// rows differ in length.
func ParseMask(r io.Reader) ([][]int, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" {
			continue
		}
		row := make([]int, 0, len(line))
		for _, ch := range line {
			switch ch {
			case '#', '0':
				row = append(row, 0)
			default:
				row = append(row, 1)
			}
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, len(rows)+1, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("hexgrid: read mask: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}

	return rows, nil
}

// Package world provides the minesweeper grid, mine placement and the reveal engine.
package world

// Position is a 0-indexed grid coordinate.
type Position struct {
	Row, Col int
}

// Neighborhood returns the 3×3 block centred on p, clipped to a grid of the
// given size, in row-major order. p itself is included.
func (p Position) Neighborhood(height, width int) []Position {
	minRow, maxRow := max(p.Row-1, 0), min(p.Row+1, height-1)
	minCol, maxCol := max(p.Col-1, 0), min(p.Col+1, width-1)

	out := make([]Position, 0, 9)
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			out = append(out, Position{Row: row, Col: col})
		}
	}
	return out
}

// Near reports whether other lies inside the square of half-size r around p,
// i.e. both axis distances are below r.
func (p Position) Near(other Position, r int) bool {
	return abs(p.Row-other.Row) < r && abs(p.Col-other.Col) < r
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

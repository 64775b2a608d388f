package world

const (
	// Default board dimensions and mine count.
	DefaultWidth     = 16
	DefaultHeight    = 16
	DefaultMineCount = 50
)

// Outcome is the result of a reveal.
type Outcome int

const (
	// OutcomeContinue means no mine was hit.
	OutcomeContinue Outcome = iota
	// OutcomeExploded means the revealed cell held a mine.
	OutcomeExploded
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeExploded:
		return "exploded"
	default:
		return "unknown"
	}
}

// Board is the grid of cell states the player sees.
type Board struct {
	Width  int
	Height int
	cells  [][]Cell
}

// NewBoard creates a board with every cell hidden.
func NewBoard(width, height int) *Board {
	cells := make([][]Cell, height)
	for row := range cells {
		cells[row] = make([]Cell, width)
		for col := range cells[row] {
			cells[row][col] = Hidden()
		}
	}

	return &Board{
		Width:  width,
		Height: height,
		cells:  cells,
	}
}

// InBounds reports whether p lies on the board.
func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.Height && p.Col >= 0 && p.Col < b.Width
}

// Cell returns the state at p. Out-of-bounds positions read as hidden.
func (b *Board) Cell(p Position) Cell {
	if !b.InBounds(p) {
		return Hidden()
	}
	return b.cells[p.Row][p.Col]
}

// ToggleFlag switches p between hidden and flagged. Other states are left alone.
func (b *Board) ToggleFlag(p Position) {
	if !b.InBounds(p) {
		return
	}
	switch b.cells[p.Row][p.Col].Kind {
	case CellHidden:
		b.cells[p.Row][p.Col] = Flagged()
	case CellFlagged:
		b.cells[p.Row][p.Col] = Hidden()
	}
}

// Reveal opens the hidden cell at p.
//
// Hitting a mine marks every mine as exploded. Otherwise the cell and any
// connected zero-count region are opened, together with the numbered cells
// bordering that region. The queue starts with p followed by the zero-count
// cells around p, so a numbered cell next to a zero region still opens it.
func (b *Board) Reveal(p Position, mines *MineField) Outcome {
	if !b.InBounds(p) || b.cells[p.Row][p.Col].Kind != CellHidden {
		return OutcomeContinue
	}

	if mines.Contains(p) {
		for _, m := range mines.Positions() {
			b.cells[m.Row][m.Col] = Exploded()
		}
		return OutcomeExploded
	}

	queue := []Position{p}
	for _, q := range p.Neighborhood(b.Height, b.Width) {
		if mines.CountAdjacent(q, b.Height, b.Width) == 0 {
			queue = append(queue, q)
		}
	}

	processed := make(map[Position]bool)
	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]
		if processed[pos] {
			continue
		}

		n := mines.CountAdjacent(pos, b.Height, b.Width)
		b.cells[pos.Row][pos.Col] = Revealed(n)
		if n == 0 {
			queue = append(queue, pos.Neighborhood(b.Height, b.Width)...)
		}
		processed[pos] = true
	}

	return OutcomeContinue
}

// IsWon reports whether every non-mine cell is revealed and nothing exploded.
func (b *Board) IsWon(mines *MineField) bool {
	for row := range b.cells {
		for col, c := range b.cells[row] {
			if c.Kind == CellExploded {
				return false
			}
			if c.Kind != CellRevealed && !mines.Contains(Position{Row: row, Col: col}) {
				return false
			}
		}
	}
	return true
}

// Count returns how many cells are in the given state.
func (b *Board) Count(kind CellKind) int {
	n := 0
	for row := range b.cells {
		for _, c := range b.cells[row] {
			if c.Kind == kind {
				n++
			}
		}
	}
	return n
}

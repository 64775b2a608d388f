package world

// CellKind is the semantic state of a board cell.
type CellKind uint8

const (
	// CellHidden has not been revealed or flagged.
	CellHidden CellKind = iota
	// CellFlagged is marked by the player as a suspected mine.
	CellFlagged
	// CellRevealed is open and shows its adjacent mine count.
	CellRevealed
	// CellExploded holds a mine shown after a loss.
	CellExploded
)

// String returns a human-readable kind name.
func (k CellKind) String() string {
	switch k {
	case CellHidden:
		return "hidden"
	case CellFlagged:
		return "flagged"
	case CellRevealed:
		return "revealed"
	case CellExploded:
		return "exploded"
	default:
		return "unknown"
	}
}

// Cell is one grid square. Count is only meaningful for CellRevealed.
type Cell struct {
	Kind  CellKind
	Count int
}

// Hidden is the initial state of every cell.
func Hidden() Cell { return Cell{Kind: CellHidden} }

// Flagged returns a flagged cell.
func Flagged() Cell { return Cell{Kind: CellFlagged} }

// Exploded returns a cell showing a mine.
func Exploded() Cell { return Cell{Kind: CellExploded} }

// Revealed returns an open cell with n adjacent mines.
func Revealed(n int) Cell { return Cell{Kind: CellRevealed, Count: n} }

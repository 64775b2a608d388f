// Package entity provides the player-controlled cursor.
package entity

import "github.com/samdwyer/minesweep/internal/world"

// Cursor is the highlighted cell. Movement wraps around the board edges.
type Cursor struct {
	row, col int
	height   int
	width    int
}

// NewCursor creates a cursor at the top-left of a board of the given size.
func NewCursor(width, height int) *Cursor {
	return &Cursor{height: height, width: width}
}

// Move shifts the cursor by the given delta, re-entering from the opposite
// edge when it leaves the board.
func (c *Cursor) Move(dRow, dCol int) {
	c.row = wrap(c.row+dRow, c.height)
	c.col = wrap(c.col+dCol, c.width)
}

// MoveTo places the cursor at p, wrapped onto the board.
func (c *Cursor) MoveTo(p world.Position) {
	c.row = wrap(p.Row, c.height)
	c.col = wrap(p.Col, c.width)
}

// Position returns the cursor as a board position.
func (c *Cursor) Position() world.Position {
	return world.Position{Row: c.row, Col: c.col}
}

func wrap(n, size int) int {
	return ((n % size) + size) % size
}

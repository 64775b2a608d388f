package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/minesweep/internal/gamedata"
	"github.com/samdwyer/minesweep/internal/world"
)

// cellWidth is the number of columns each board cell occupies: " c " or "[c]".
const cellWidth = 3

const helpText = "arrows: move  space: reveal  f: flag  esc: quit"

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	palette *gamedata.Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette *gamedata.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the board with the cursor highlighted, followed by a status
// line and the key help.
func (r *Renderer) Render(board *world.Board, cursor world.Position, status string) {
	r.screen.Clear()

	left, right := r.palette.CursorRunes()
	cursorStyle := r.palette.CursorStyle()

	for row := 0; row < board.Height; row++ {
		for col := 0; col < board.Width; col++ {
			p := world.Position{Row: row, Col: col}
			glyph := r.palette.For(board.Cell(p))
			x := col * cellWidth

			if p == cursor {
				r.screen.SetContent(x, row, left, cursorStyle)
				r.screen.SetContent(x+2, row, right, cursorStyle)
			}
			r.screen.SetContent(x+1, row, glyph.GlyphRune(), glyph.Style())
		}
	}

	r.RenderMessage(status, board.Height+1)
	r.renderText(helpText, board.Height+2, tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.renderText(msg, y, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

func (r *Renderer) renderText(msg string, y int, style tcell.Style) {
	x := 0
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}

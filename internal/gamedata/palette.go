package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/minesweep/internal/world"
)

// GlyphDef is the display form of one cell state.
type GlyphDef struct {
	Glyph string `json:"glyph"` // Single character (e.g. "?")
	Color string `json:"color"` // Hex colour (e.g. "#8B0000")
	Bold  bool   `json:"bold"`

	style tcell.Style
}

// GlyphRune returns the glyph as a rune for rendering.
func (g *GlyphDef) GlyphRune() rune {
	return firstRune(g.Glyph, ' ')
}

// Style returns the tcell style resolved when the palette was loaded.
func (g *GlyphDef) Style() tcell.Style {
	return g.style
}

// resolve parses the colour once. Unparseable colours fall back to white.
func (g *GlyphDef) resolve() {
	g.style = tcell.StyleDefault.Foreground(colorOr(g.Color, tcell.ColorWhite)).Bold(g.Bold)
}

// CursorDef describes the brackets drawn around the highlighted cell.
type CursorDef struct {
	Left  string `json:"left"`
	Right string `json:"right"`
	Color string `json:"color"`
}

// Palette maps cell states to glyphs. The board never carries colour.
type Palette struct {
	Hidden   GlyphDef   `json:"hidden"`
	Flagged  GlyphDef   `json:"flagged"`
	Exploded GlyphDef   `json:"exploded"`
	Empty    GlyphDef   `json:"empty"`
	Counts   []GlyphDef `json:"counts"` // Counts[n-1] is used for n adjacent mines
	Cursor   CursorDef  `json:"cursor"`

	cursorStyle tcell.Style
}

// LoadPalette loads the embedded palette.json.
func LoadPalette() (*Palette, error) {
	p, err := Load[Palette]("palette.json")
	if err != nil {
		return nil, err
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	p.resolve()
	return &p, nil
}

func (p *Palette) resolve() {
	for _, g := range []*GlyphDef{&p.Hidden, &p.Flagged, &p.Exploded, &p.Empty} {
		g.resolve()
	}
	for i := range p.Counts {
		p.Counts[i].resolve()
	}
	p.cursorStyle = tcell.StyleDefault.Foreground(colorOr(p.Cursor.Color, tcell.ColorWhite)).Bold(true)
}

func (p *Palette) validate() error {
	if len(p.Counts) != 8 {
		return fmt.Errorf("palette: want 8 count glyphs, got %d", len(p.Counts))
	}
	all := append([]GlyphDef{p.Hidden, p.Flagged, p.Exploded, p.Empty}, p.Counts...)
	for _, g := range all {
		if _, err := ParseHexColor(g.Color); err != nil {
			return fmt.Errorf("palette glyph %q: %w", g.Glyph, err)
		}
	}
	if _, err := ParseHexColor(p.Cursor.Color); err != nil {
		return fmt.Errorf("palette cursor: %w", err)
	}
	return nil
}

// For returns the glyph for a cell.
func (p *Palette) For(c world.Cell) *GlyphDef {
	switch c.Kind {
	case world.CellFlagged:
		return &p.Flagged
	case world.CellExploded:
		return &p.Exploded
	case world.CellRevealed:
		if c.Count > 0 && c.Count <= len(p.Counts) {
			return &p.Counts[c.Count-1]
		}
		return &p.Empty
	default:
		return &p.Hidden
	}
}

// CursorStyle returns the style of the cursor brackets.
func (p *Palette) CursorStyle() tcell.Style {
	return p.cursorStyle
}

// CursorRunes returns the left and right bracket runes.
func (p *Palette) CursorRunes() (rune, rune) {
	return firstRune(p.Cursor.Left, '['), firstRune(p.Cursor.Right, ']')
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

func colorOr(hex string, fallback tcell.Color) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		return fallback
	}
	return color
}

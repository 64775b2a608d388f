package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/minesweep/internal/gamedata"
	"github.com/samdwyer/minesweep/internal/ui"
	"github.com/samdwyer/minesweep/internal/world"
)

var errScreenClosed = errors.New("screen closed")

// Game ties a session to the terminal.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	log      *logrus.Logger
}

// New creates a new game instance.
func New(cfg Config, log *logrus.Logger) (*Game, error) {
	palette, err := gamedata.LoadPalette()
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return newGame(screen, palette, NewSession(cfg, log), log), nil
}

func newGame(screen *ui.Screen, palette *gamedata.Palette, session *Session, log *logrus.Logger) *Game {
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette),
		session:  session,
		log:      log,
	}
}

// Run executes the main loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	for g.session.State() != StateQuit {
		g.renderer.Render(g.session.Board(), g.session.Cursor(), statusLine(g.session))

		// Blocks until the next event.
		if err := g.handleInput(ctx); err != nil {
			return err
		}
	}
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) error {
	ev := g.screen.PollEvent()
	g.session.Tick()

	switch ev := ev.(type) {
	case nil:
		return errScreenClosed
	case *tcell.EventKey:
		in := inputFor(ev.Key(), ev.Rune())
		g.log.WithField("input", in).Trace("key")
		return g.session.Apply(ctx, in)
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return nil
}

// statusLine summarises the session for the line under the board.
func statusLine(s *Session) string {
	b := s.Board()
	flags := fmt.Sprintf("flags %d/%d", b.Count(world.CellFlagged), s.cfg.MineCount)

	switch {
	case s.State() == StateGameOver:
		return "BOOM! Press any key to play again."
	case s.Won():
		return "Board cleared!  " + flags
	default:
		return flags
	}
}

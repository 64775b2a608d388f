package game

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/minesweep/internal/gamedata"
	"github.com/samdwyer/minesweep/internal/ui"
	"github.com/samdwyer/minesweep/internal/world"
)

// newTestGame builds a game on a simulation screen. The caller owns closing it.
func newTestGame(t *testing.T, cfg Config) (*Game, tcell.SimulationScreen) {
	t.Helper()

	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := ui.NewScreenFrom(sim)
	require.NoError(t, err)
	sim.SetSize(80, 24)

	palette, err := gamedata.LoadPalette()
	require.NoError(t, err)

	log, _ := logtest.NewNullLogger()
	return newGame(screen, palette, NewSession(cfg, log), log), sim
}

func TestHandleInputTicksOnEveryEvent(t *testing.T) {
	g, sim := newTestGame(t, DefaultConfig())
	t.Cleanup(g.screen.Close)
	ctx := context.Background()
	start := g.session.ticks

	require.NoError(t, sim.PostEvent(tcell.NewEventResize(100, 30)))
	require.NoError(t, g.handleInput(ctx))

	assert.Equal(t, start+1, g.session.ticks, "resize must advance the tick counter")
	assert.Equal(t, world.Position{}, g.session.Cursor())

	sim.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	require.NoError(t, g.handleInput(ctx))

	assert.Equal(t, start+2, g.session.ticks)
	assert.Equal(t, world.Position{Row: 0, Col: 1}, g.session.Cursor())
}

func TestHandleInputRevealUsesTickSeed(t *testing.T) {
	// One tick from 0x12345678 seeds the first reveal with 0x12345679.
	g, sim := newTestGame(t, seededConfig(0x12345678))
	t.Cleanup(g.screen.Close)

	sim.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	require.NoError(t, g.handleInput(context.Background()))

	require.True(t, g.session.MinesGenerated())
	assert.Equal(t, world.Position{Row: 2, Col: 2}, g.session.Mines().Positions()[0])
}

func TestHandleInputQuitKey(t *testing.T) {
	g, sim := newTestGame(t, DefaultConfig())
	t.Cleanup(g.screen.Close)

	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	require.NoError(t, g.handleInput(context.Background()))

	assert.Equal(t, StateQuit, g.session.State())
}

func TestHandleInputClosedScreen(t *testing.T) {
	g, _ := newTestGame(t, DefaultConfig())
	g.screen.Close()

	err := g.handleInput(context.Background())

	assert.ErrorIs(t, err, errScreenClosed)
}

func TestRunStopsOnQuit(t *testing.T) {
	g, sim := newTestGame(t, DefaultConfig())

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	assert.NoError(t, g.Run(context.Background()))
	assert.Equal(t, StateQuit, g.session.State())
}

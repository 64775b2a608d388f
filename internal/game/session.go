package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/minesweep/internal/entity"
	"github.com/samdwyer/minesweep/internal/rng"
	"github.com/samdwyer/minesweep/internal/telemetry"
	"github.com/samdwyer/minesweep/internal/world"
)

// maxReseeds bounds how often a collapsed seed is bumped before giving up.
const maxReseeds = 8

// Session is one player's game: the board, its mines, the cursor and the
// play state. All methods run on the main loop's goroutine.
type Session struct {
	id             uuid.UUID
	cfg            Config
	board          *world.Board
	mines          *world.MineField
	cursor         *entity.Cursor
	state          State
	minesGenerated bool

	// ticks counts loop iterations for the whole process. Reset leaves it alone.
	ticks uint32

	log    *logrus.Logger
	tracer trace.Tracer
}

// NewSession creates a session with an empty board.
func NewSession(cfg Config, log *logrus.Logger) *Session {
	tracer := telemetry.NoopTracer()
	if cfg.Telemetry {
		tracer = telemetry.Tracer("session")
	}

	s := &Session{
		cfg:    cfg,
		cursor: entity.NewCursor(cfg.Width, cfg.Height),
		ticks:  cfg.Seed,
		log:    log,
		tracer: tracer,
	}
	s.Reset()
	return s
}

// Apply runs one input through the state machine.
//
// After a loss, any input only resets the board. Reveal errors are returned
// when mines cannot be placed.
func (s *Session) Apply(ctx context.Context, in Input) error {
	switch s.state {
	case StateGameOver:
		s.Reset()
		return nil
	case StateQuit:
		return nil
	}

	if dRow, dCol, ok := in.delta(); ok {
		s.cursor.Move(dRow, dCol)
		return nil
	}

	switch in {
	case InputReveal:
		return s.reveal(ctx)
	case InputToggleFlag:
		s.board.ToggleFlag(s.cursor.Position())
	case InputQuit:
		s.state = StateQuit
		s.log.WithField("game", s.id).Info("quit")
	}
	return nil
}

// Tick advances the tick counter. The main loop calls it once per event.
func (s *Session) Tick() {
	s.ticks++
}

// Reset starts a new game on a fresh board. The cursor stays where it is.
func (s *Session) Reset() {
	s.id = uuid.New()
	s.board = world.NewBoard(s.cfg.Width, s.cfg.Height)
	s.mines = world.NewMineField()
	s.minesGenerated = false
	s.state = StatePlaying

	s.log.WithFields(logrus.Fields{
		"game":   s.id,
		"width":  s.cfg.Width,
		"height": s.cfg.Height,
		"mines":  s.cfg.MineCount,
	}).Info("new game")
}

func (s *Session) reveal(ctx context.Context) error {
	p := s.cursor.Position()
	if s.board.Cell(p).Kind != world.CellHidden {
		return nil
	}

	ctx, span := s.tracer.Start(ctx, "session.reveal")
	defer span.End()
	span.SetAttributes(
		attribute.String("game.id", s.id.String()),
		attribute.Int("cursor.row", p.Row),
		attribute.Int("cursor.col", p.Col),
	)

	if !s.minesGenerated {
		if err := s.placeMines(ctx, p); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		s.minesGenerated = true
	}

	outcome := s.board.Reveal(p, s.mines)
	span.SetAttributes(attribute.String("reveal.outcome", outcome.String()))

	entry := s.log.WithFields(logrus.Fields{"game": s.id, "row": p.Row, "col": p.Col})
	switch {
	case outcome == world.OutcomeExploded:
		s.state = StateGameOver
		entry.Info("mine hit")
	case s.board.IsWon(s.mines):
		entry.Info("board cleared")
	default:
		entry.Debug("revealed")
	}
	return nil
}

// placeMines fills the field around p using the tick counter as seed,
// bumping the seed when the generator collapses.
func (s *Session) placeMines(ctx context.Context, p world.Position) error {
	seed := s.ticks
	for attempt := 0; ; attempt++ {
		err := s.mines.Generate(ctx, p, rng.New(seed), s.cfg.MineCount, s.cfg.Height, s.cfg.Width)
		if err == nil {
			s.log.WithFields(logrus.Fields{"game": s.id, "seed": seed}).Debug("mines placed")
			return nil
		}
		if !errors.Is(err, world.ErrPlacementExhausted) || attempt == maxReseeds {
			return fmt.Errorf("placing mines: %w", err)
		}

		s.log.WithError(err).WithField("seed", seed).Warn("reseeding mine placement")
		seed++
	}
}

// ID identifies the current play-through.
func (s *Session) ID() uuid.UUID { return s.id }

// Board returns the current board.
func (s *Session) Board() *world.Board { return s.board }

// Mines returns the current mine field.
func (s *Session) Mines() *world.MineField { return s.mines }

// Cursor returns the cursor position.
func (s *Session) Cursor() world.Position { return s.cursor.Position() }

// State returns the session state.
func (s *Session) State() State { return s.state }

// Alive reports whether the player can still act on the board.
func (s *Session) Alive() bool { return s.state == StatePlaying }

// MinesGenerated reports whether the first reveal has happened.
func (s *Session) MinesGenerated() bool { return s.minesGenerated }

// Won reports whether every safe cell has been revealed.
func (s *Session) Won() bool {
	return s.minesGenerated && s.board.IsWon(s.mines)
}

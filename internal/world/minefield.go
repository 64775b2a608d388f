package world

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/minesweep/internal/rng"
)

const (
	// ExclusionRange rejects candidate mines whose row and column distance
	// from the first reveal are both below it.
	ExclusionRange = 2

	// MaxDraws caps candidate draws per Generate call.
	MaxDraws = 10_000
)

var (
	// ErrTooManyMines means the grid cannot hold the requested mines outside
	// the exclusion zone.
	ErrTooManyMines = errors.New("mine count exceeds placeable cells")

	// ErrPlacementExhausted means the source stopped producing new
	// positions before the requested count was reached.
	ErrPlacementExhausted = errors.New("mine placement exhausted")
)

// MineField owns the mine positions of one game.
type MineField struct {
	set   map[Position]struct{}
	order []Position
}

// NewMineField creates an empty field.
func NewMineField() *MineField {
	return &MineField{set: make(map[Position]struct{})}
}

// Generate places mines until the field holds count of them. Candidates are
// drawn column first, then row, from src. Positions near exclude and
// duplicates are skipped. On error the field is left as it was.
//
// The span is started from the tracer provider of the span in ctx, so
// generation is traced only when the caller is.
func (m *MineField) Generate(ctx context.Context, exclude Position, src *rng.Source, count, height, width int) error {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("minesweep/world")
	_, span := tracer.Start(ctx, "minefield.generate")
	defer span.End()

	seed := src.Seed()
	if count > height*width-exclusionArea(exclude, height, width) {
		span.SetAttributes(attribute.Bool("failed", true))
		return fmt.Errorf("%w: %d mines on %dx%d", ErrTooManyMines, count, width, height)
	}

	start := len(m.order)
	draws := 0
	for len(m.order) < count {
		if draws >= MaxDraws {
			placed := len(m.order) - start
			m.truncate(start)
			span.SetAttributes(
				attribute.Int64("minefield.seed", int64(seed)),
				attribute.Int("minefield.draws", draws),
				attribute.Bool("failed", true),
			)
			return fmt.Errorf("%w: seed %d placed %d of %d after %d draws",
				ErrPlacementExhausted, seed, placed, count-start, draws)
		}
		draws++

		col := int(src.Next() % uint32(width))
		row := int(src.Next() % uint32(height))
		p := Position{Row: row, Col: col}

		if exclude.Near(p, ExclusionRange) || m.Contains(p) {
			continue
		}
		m.set[p] = struct{}{}
		m.order = append(m.order, p)
	}

	span.SetAttributes(
		attribute.Int64("minefield.seed", int64(seed)),
		attribute.Int("minefield.draws", draws),
		attribute.Int("minefield.mines", len(m.order)),
	)
	return nil
}

// Contains reports whether p holds a mine.
func (m *MineField) Contains(p Position) bool {
	_, ok := m.set[p]
	return ok
}

// CountAdjacent returns the number of mines in the 3×3 block around p,
// clipped to the grid. Edges clamp; they do not wrap.
func (m *MineField) CountAdjacent(p Position, height, width int) int {
	n := 0
	for _, q := range p.Neighborhood(height, width) {
		if m.Contains(q) {
			n++
		}
	}
	return n
}

// Len returns the number of placed mines.
func (m *MineField) Len() int {
	return len(m.order)
}

// Positions returns the mines in placement order.
func (m *MineField) Positions() []Position {
	out := make([]Position, len(m.order))
	copy(out, m.order)
	return out
}

func (m *MineField) truncate(n int) {
	for _, p := range m.order[n:] {
		delete(m.set, p)
	}
	m.order = m.order[:n]
}

// exclusionArea counts the in-bounds cells that Generate will never pick.
func exclusionArea(center Position, height, width int) int {
	r := ExclusionRange - 1
	rows := min(center.Row+r, height-1) - max(center.Row-r, 0) + 1
	cols := min(center.Col+r, width-1) - max(center.Col-r, 0) + 1
	if rows <= 0 || cols <= 0 {
		return 0
	}
	return rows * cols
}

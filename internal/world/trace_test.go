package world

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/samdwyer/minesweep/internal/rng"
)

func TestGenerateSpanFollowsCaller(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	ctx, parent := tp.Tracer("test").Start(context.Background(), "reveal")
	err := NewMineField().Generate(ctx, Position{}, rng.New(0x12345679), DefaultMineCount, DefaultHeight, DefaultWidth)
	parent.End()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	var found bool
	for _, s := range rec.Ended() {
		if s.Name() != "minefield.generate" {
			continue
		}
		found = true
		if s.Parent().SpanID() != parent.SpanContext().SpanID() {
			t.Errorf("minefield.generate parent = %v, want %v", s.Parent().SpanID(), parent.SpanContext().SpanID())
		}
	}
	if !found {
		t.Error("no minefield.generate span recorded under a traced caller")
	}
}

func TestGenerateUntracedCallerIgnoresGlobalProvider(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})

	err := NewMineField().Generate(context.Background(), Position{}, rng.New(0x12345679), DefaultMineCount, DefaultHeight, DefaultWidth)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if n := len(rec.Ended()); n != 0 {
		t.Errorf("recorded %d spans without a traced caller, want 0", n)
	}
}

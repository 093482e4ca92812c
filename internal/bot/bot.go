package bot

import (
	"context"
	"fmt"
	"log/slog"

	"ctchen222/Tic-Tac-Toe-Solo/internal/game"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("bot")

// MoveCalculator implements the room.MoveCalculator interface on top of Decide,
// recording a span and a decision counter for every move.
type MoveCalculator struct {
	decisions metric.Int64Counter
}

// NewMoveCalculator creates a calculator reporting to meter.
func NewMoveCalculator(meter metric.Meter) (*MoveCalculator, error) {
	decisions, err := meter.Int64Counter("bot.decisions",
		metric.WithDescription("Opponent moves by the policy rule that chose them"),
		metric.WithUnit("{move}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot.decisions counter: %w", err)
	}
	return &MoveCalculator{decisions: decisions}, nil
}

// CalculateNextMove returns the cell the opponent plays on board.
func (c *MoveCalculator) CalculateNextMove(ctx context.Context, board game.Board) (row, col int, err error) {
	ctx, span := tracer.Start(ctx, "bot.CalculateNextMove", trace.WithAttributes(
		attribute.String("board", board.String()),
	))
	defer span.End()

	decision, err := Decide(board)
	if err != nil {
		slog.ErrorContext(ctx, "opponent policy invoked on an unplayable board", "board", board.String(), "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Unplayable board")
		return -1, -1, err
	}

	branch := attribute.String("bot.branch", string(decision.Branch))
	c.decisions.Add(ctx, 1, metric.WithAttributes(branch))
	span.SetAttributes(
		branch,
		attribute.Int("move.row", decision.Position.Row),
		attribute.Int("move.col", decision.Position.Col),
	)
	slog.DebugContext(ctx, "Opponent chose a move",
		"bot.branch", decision.Branch,
		"move.row", decision.Position.Row,
		"move.col", decision.Position.Col,
	)

	return decision.Position.Row, decision.Position.Col, nil
}

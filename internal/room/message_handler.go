package room

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
	"ctchen222/Tic-Tac-Toe-Solo/pkg/proto"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const invalidMoveMessage = "invalid move, try again"

// handleHumanTurn reads moves until one is accepted. Rejected moves do not
// consume the turn.
func (r *Room) handleHumanTurn(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "room.handleHumanTurn", trace.WithAttributes(
		attribute.String("room.id", r.ID),
		attribute.String("player.id", r.human.ID),
	))
	defer span.End()

	for attempt := 1; ; attempt++ {
		input, err := r.human.Conn.ReadMove(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Failed to read move")
			return fmt.Errorf("failed to read move from player %s: %w", r.human.ID, err)
		}

		move, err := proto.ParseMove(input)
		if err == nil {
			err = r.applyMove(move.Position(), r.human.Mark)
		}
		if err == nil {
			span.SetAttributes(
				attribute.Int("move.row", move.Row),
				attribute.Int("move.col", move.Col),
				attribute.Int("move.attempts", attempt),
			)
			return nil
		}
		if !errors.Is(err, game.ErrInvalidMove) {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Failed to apply move")
			return err
		}

		r.invalidMoves.Add(ctx, 1)
		slog.InfoContext(ctx, "invalid move from player", "player.id", r.human.ID, "error", err)
		if err := r.human.Conn.WriteMessage(invalidMoveMessage); err != nil {
			return fmt.Errorf("failed to report invalid move: %w", err)
		}
	}
}

// handleOpponentTurn asks the move calculator for a cell and plays it. The
// opponent choosing an unplayable cell is an invariant violation.
func (r *Room) handleOpponentTurn(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "room.handleOpponentTurn", trace.WithAttributes(
		attribute.String("room.id", r.ID),
	))
	defer span.End()

	row, col, err := r.moveCalculator.CalculateNextMove(ctx, r.board)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Opponent could not move")
		return fmt.Errorf("opponent could not move: %w", err)
	}

	p := game.Position{Row: row, Col: col}
	if err := r.applyMove(p, game.Opponent); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Opponent chose an unplayable cell")
		if errors.Is(err, game.ErrInvariantViolation) {
			return err
		}
		return fmt.Errorf("%w: opponent chose %s: %v", game.ErrInvariantViolation, p, err)
	}

	span.SetAttributes(attribute.Int("move.row", row), attribute.Int("move.col", col))
	return nil
}

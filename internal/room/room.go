package room

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
	"ctchen222/Tic-Tac-Toe-Solo/internal/player"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -destination=../mocks/mock_move_calculator.go -package=mocks . MoveCalculator

var tracer = otel.Tracer("room")

// MoveCalculator defines an interface for an agent that can calculate a game move.
type MoveCalculator interface {
	CalculateNextMove(ctx context.Context, board game.Board) (row, col int, err error)
}

// Room is a single game between the human and the opponent. It owns the board
// and is the only code that mutates it.
type Room struct {
	ID             string
	human          *player.Player
	moveCalculator MoveCalculator

	board  game.Board
	turn   game.PlayerMark
	result game.GameResult

	games        metric.Int64Counter
	invalidMoves metric.Int64Counter
}

// NewRoom creates a room with an empty board and the human to move.
func NewRoom(human *player.Player, calculator MoveCalculator, meter metric.Meter) (*Room, error) {
	games, err := meter.Int64Counter("room.games",
		metric.WithDescription("Finished games by result"),
		metric.WithUnit("{game}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create room.games counter: %w", err)
	}
	invalidMoves, err := meter.Int64Counter("room.invalid_moves",
		metric.WithDescription("Rejected human moves"),
		metric.WithUnit("{move}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create room.invalid_moves counter: %w", err)
	}

	return &Room{
		ID:             uuid.New().String(),
		human:          human,
		moveCalculator: calculator,
		turn:           game.Human,
		result:         game.InProgress,
		games:          games,
		invalidMoves:   invalidMoves,
	}, nil
}

// Run plays the game to the end and announces the result to the human.
// Invalid human input is reported and asked for again; any returned error is
// either an input failure or an invariant violation.
func (r *Room) Run(ctx context.Context) (game.GameResult, error) {
	ctx, span := tracer.Start(ctx, "room.Run", trace.WithAttributes(
		attribute.String("room.id", r.ID),
		attribute.String("player.id", r.human.ID),
	))
	defer span.End()

	slog.InfoContext(ctx, "Game started", "room.id", r.ID, "player.id", r.human.ID)

	for r.result == game.InProgress {
		var err error
		if r.turn == game.Human {
			err = r.handleHumanTurn(ctx)
		} else {
			err = r.handleOpponentTurn(ctx)
		}
		if err == nil {
			err = r.broadcastBoard()
		}
		if err != nil {
			if errors.Is(err, game.ErrInvariantViolation) {
				slog.ErrorContext(ctx, "Game reached an impossible state", "room.id", r.ID, "board", r.board.String(), "error", err)
			} else {
				slog.WarnContext(ctx, "Game aborted", "room.id", r.ID, "error", err)
			}
			span.RecordError(err)
			span.SetStatus(codes.Error, "Game aborted")
			return r.result, err
		}
	}

	span.SetAttributes(attribute.String("game.result", string(r.result)))
	r.games.Add(ctx, 1, metric.WithAttributes(attribute.String("game.result", string(r.result))))
	slog.InfoContext(ctx, "Game finished", "room.id", r.ID, "game.result", r.result)

	if err := r.announceResult(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to announce result")
		return r.result, err
	}
	return r.result, nil
}

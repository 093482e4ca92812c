package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"ctchen222/Tic-Tac-Toe-Solo/internal/bot"
	"ctchen222/Tic-Tac-Toe-Solo/internal/config"
	"ctchen222/Tic-Tac-Toe-Solo/internal/console"
	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
	"ctchen222/Tic-Tac-Toe-Solo/internal/logger"
	"ctchen222/Tic-Tac-Toe-Solo/internal/player"
	"ctchen222/Tic-Tac-Toe-Solo/internal/room"
	"ctchen222/Tic-Tac-Toe-Solo/internal/telemetry"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "tictactoe: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	conf, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, conf.Telemetry)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			slog.WarnContext(ctx, "Error shutting down telemetry", "error", err)
		}
	}()

	// Game output owns stdout, so logs go to stderr.
	logger.Init(os.Stderr, conf.SlogLevel())

	calculator, err := bot.NewMoveCalculator(otel.Meter("bot"))
	if err != nil {
		return err
	}

	terminal := console.NewTerminal(os.Stdin, os.Stdout)
	defer terminal.Close()

	human := player.NewPlayer(uuid.New().String(), terminal)
	r, err := room.NewRoom(human, calculator, otel.Meter("room"))
	if err != nil {
		return err
	}

	if _, err := r.Run(ctx); err != nil {
		if errors.Is(err, game.ErrInvariantViolation) {
			return fmt.Errorf("game %s stopped on an internal error: %w", r.ID, err)
		}
		return err
	}
	return nil
}

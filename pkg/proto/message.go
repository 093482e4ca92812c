package proto

import (
	"fmt"
	"strconv"
	"strings"

	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
	"ctchen222/Tic-Tac-Toe-Solo/internal/validator"
)

// MoveInput is a human move exactly as it was typed: a row ("y") and a
// column ("x").
type MoveInput struct {
	Row string
	Col string
}

// Move is a move whose coordinates lie on the board.
type Move struct {
	Row int `validate:"board_index"`
	Col int `validate:"board_index"`
}

// Position converts the move to a board position.
func (m Move) Position() game.Position {
	return game.Position{Row: m.Row, Col: m.Col}
}

// ParseMove turns raw input into a Move. Any failure wraps game.ErrInvalidMove.
// Whether the target cell is empty is left to game.Board.Place.
func ParseMove(in MoveInput) (Move, error) {
	row, err := parseCoord("row", in.Row)
	if err != nil {
		return Move{}, err
	}
	col, err := parseCoord("column", in.Col)
	if err != nil {
		return Move{}, err
	}

	move := Move{Row: row, Col: col}
	if err := validator.GetValidator().Struct(move); err != nil {
		return Move{}, fmt.Errorf("%w: %v", game.ErrInvalidMove, err)
	}
	return move, nil
}

func parseCoord(name, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", game.ErrInvalidMove, name, raw)
	}
	return v, nil
}

package room

import (
	"fmt"

	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
)

// applyMove places mark at p, re-derives the result and hands the turn over.
// The turn is frozen once the game is over.
func (r *Room) applyMove(p game.Position, mark game.PlayerMark) error {
	if r.result != game.InProgress {
		return fmt.Errorf("%w: move after the game ended with %s", game.ErrInvariantViolation, r.result)
	}
	if mark != r.turn {
		return fmt.Errorf("%w: %s moved out of turn", game.ErrInvariantViolation, mark)
	}
	if err := r.board.Place(p.Row, p.Col, mark); err != nil {
		return err
	}

	result, err := r.board.Result()
	if err != nil {
		return err
	}
	r.result = result
	if result == game.InProgress {
		r.turn = mark.Other()
	}
	return nil
}

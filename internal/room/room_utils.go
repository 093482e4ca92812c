package room

import "ctchen222/Tic-Tac-Toe-Solo/internal/game"

// Board returns a copy of the current board.
func (r *Room) Board() game.Board {
	return r.board
}

// Turn returns the mark that moves next.
func (r *Room) Turn() game.PlayerMark {
	return r.turn
}

// Result returns the current game result.
func (r *Room) Result() game.GameResult {
	return r.result
}

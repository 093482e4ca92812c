package room

import (
	"fmt"

	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
)

const (
	opponentWonMessage = "The AI won"
	drawMessage        = "The game has ended in a draw"
)

// broadcastBoard shows the current board to the human.
func (r *Room) broadcastBoard() error {
	if err := r.human.Conn.WriteBoard(r.board); err != nil {
		return fmt.Errorf("failed to write board to player %s: %w", r.human.ID, err)
	}
	return nil
}

// announceResult tells the human how the game ended. The opponent winning is
// the only outcome other than a draw.
func (r *Room) announceResult() error {
	message := drawMessage
	if r.result == game.OpponentWon {
		message = opponentWonMessage
	}
	if err := r.human.Conn.WriteMessage(message); err != nil {
		return fmt.Errorf("failed to announce result to player %s: %w", r.human.ID, err)
	}
	return nil
}

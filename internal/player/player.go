package player

import (
	"context"

	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
	"ctchen222/Tic-Tac-Toe-Solo/pkg/proto"
)

//go:generate mockgen -destination=../mocks/mock_connection.go -package=mocks . Connection

// Connection is an interface that abstracts the terminal the human plays on.
type Connection interface {
	// ReadMove blocks until the player has entered a row and a column.
	ReadMove(ctx context.Context) (proto.MoveInput, error)
	WriteBoard(board game.Board) error
	WriteMessage(message string) error
	Close() error
}

// Player represents the human in a room.
type Player struct {
	ID   string
	Mark game.PlayerMark
	Conn Connection
}

// NewPlayer creates the human player. Humans always play X.
func NewPlayer(id string, conn Connection) *Player {
	return &Player{
		ID:   id,
		Mark: game.Human,
		Conn: conn,
	}
}

package game

import (
	"errors"
	"fmt"
)

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string
type GameResult string

const (
	// Player marks
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"

	// The human always plays X and moves first.
	Human    = PlayerX
	Opponent = PlayerO

	// Game results
	InProgress  GameResult = "in_progress"
	OpponentWon GameResult = "opponent_won"
	Draw        GameResult = "draw"

	// Board boundaries
	BorderMin = 0
	BorderMax = 2
)

var (
	// ErrInvalidMove is returned when a move targets a cell outside the board
	// or a cell that is already occupied.
	ErrInvalidMove = errors.New("invalid move")
	// ErrInvariantViolation reports a state the turn loop must never reach.
	ErrInvariantViolation = errors.New("invariant violation")
)

// Symbol is the single character used to draw the mark.
func (m PlayerMark) Symbol() string {
	if m == None {
		return " "
	}
	return string(m)
}

// Other returns the opposing mark.
func (m PlayerMark) Other() PlayerMark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return None
	}
}

// Position addresses one cell of the board.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// InBounds reports whether the position lies on the 3x3 board.
func (p Position) InBounds() bool {
	return p.Row >= BorderMin && p.Row <= BorderMax && p.Col >= BorderMin && p.Col <= BorderMax
}

// Center is the middle cell of the board.
var Center = Position{Row: 1, Col: 1}

package bot

import (
	"fmt"

	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
)

// Branch names the rule of the policy that produced a move.
type Branch string

const (
	BranchOpening       Branch = "opening"
	BranchWin           Branch = "win"
	BranchBlock         Branch = "block"
	BranchCounterThreat Branch = "counter_threat"
	BranchFallback      Branch = "fallback"
)

// Decision is the opponent's chosen cell and the rule that chose it.
type Decision struct {
	Position game.Position
	Branch   Branch
}

// Decide picks the opponent's next cell. The rules are tried in order and the
// first one that applies wins:
//
//  1. Opening: answer a center opening with the top-left corner, anything
//     else with the center.
//  2. Win: complete an opponent line.
//  3. Block: fill the cell that would complete a human line.
//  4. Counter-threat: start an opponent threat whose answering cell does not
//     help the human build a fork.
//  5. Fallback: the first empty cell in row-major order.
//
// The board is never modified. Calling Decide on an empty, full or already
// decided board is an invariant violation.
func Decide(board game.Board) (Decision, error) {
	if err := checkPlayable(&board); err != nil {
		return Decision{}, err
	}

	if board.MarkCount() == 1 {
		if board.At(game.Center) == game.Human {
			return Decision{Position: game.Position{Row: 0, Col: 0}, Branch: BranchOpening}, nil
		}
		return Decision{Position: game.Center, Branch: BranchOpening}, nil
	}

	if p, ok := firstWinMove(&board, game.Opponent); ok {
		return Decision{Position: p, Branch: BranchWin}, nil
	}

	if p, ok := firstWinMove(&board, game.Human); ok {
		return Decision{Position: p, Branch: BranchBlock}, nil
	}

	scores := ForkHalfCounts(&board, game.Human)
	if p, ok := counterThreat(&board, scores); ok {
		return Decision{Position: p, Branch: BranchCounterThreat}, nil
	}

	empty := board.EmptyCells()
	if len(empty) == 0 {
		return Decision{}, fmt.Errorf("%w: no empty cell for fallback on board %s", game.ErrInvariantViolation, &board)
	}
	return Decision{Position: empty[0], Branch: BranchFallback}, nil
}

func checkPlayable(board *game.Board) error {
	switch {
	case board.MarkCount() == 0:
		return fmt.Errorf("%w: opponent asked to open the game", game.ErrInvariantViolation)
	case board.IsFull():
		return fmt.Errorf("%w: opponent asked to move on full board %s", game.ErrInvariantViolation, board)
	case board.DetectWin(game.Human), board.DetectWin(game.Opponent):
		return fmt.Errorf("%w: opponent asked to move on finished board %s", game.ErrInvariantViolation, board)
	}
	return nil
}

// counterThreat scans lines holding one opponent mark and two empty cells. It
// plays an empty cell of such a line when the line's other empty cell, where
// the human is forced to answer, is a target-cell.
func counterThreat(board *game.Board, scores ForkScores) (game.Position, bool) {
	for _, line := range game.Lines() {
		if marks, empty := board.LineCounts(line, game.Opponent); marks != 1 || empty != 2 {
			continue
		}

		var cells []game.Position
		for _, p := range line {
			if board.At(p) == game.None {
				cells = append(cells, p)
			}
		}
		for i, p := range cells {
			if scores.IsTarget(cells[1-i]) {
				return p, true
			}
		}
	}
	return game.Position{}, false
}

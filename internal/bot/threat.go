package bot

import (
	"iter"

	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
)

// Threat is a line that needs a single mark at Cell to be completed.
type Threat struct {
	Line game.Line
	Cell game.Position
}

// ImmediateWinMoves yields every line holding two of mark and one empty cell,
// in line scan order. Playing the yielded cell completes the line for mark.
func ImmediateWinMoves(board *game.Board, mark game.PlayerMark) iter.Seq[Threat] {
	return func(yield func(Threat) bool) {
		for _, line := range game.Lines() {
			if marks, empty := board.LineCounts(line, mark); marks != 2 || empty != 1 {
				continue
			}
			for _, p := range line {
				if board.At(p) == game.None {
					if !yield(Threat{Line: line, Cell: p}) {
						return
					}
					break
				}
			}
		}
	}
}

// firstWinMove returns the cell of the first immediate threat for mark.
func firstWinMove(board *game.Board, mark game.PlayerMark) (game.Position, bool) {
	for threat := range ImmediateWinMoves(board, mark) {
		return threat.Cell, true
	}
	return game.Position{}, false
}

// ForkScores holds, for every empty cell, the number of fork halves passing
// through it. A fork half is a line with exactly one of the scored mark and two
// empty cells.
type ForkScores struct {
	counts [3][3]int
	empty  [3][3]bool
	max    int
}

// ForkHalfCounts scores every empty cell of board for mark.
func ForkHalfCounts(board *game.Board, mark game.PlayerMark) ForkScores {
	var s ForkScores
	for _, p := range board.EmptyCells() {
		s.empty[p.Row][p.Col] = true
	}

	for _, line := range game.Lines() {
		if marks, empty := board.LineCounts(line, mark); marks != 1 || empty != 2 {
			continue
		}
		for _, p := range line {
			if s.empty[p.Row][p.Col] {
				s.counts[p.Row][p.Col]++
			}
		}
	}

	for r := range [3]int{} {
		for c := range [3]int{} {
			if s.empty[r][c] && s.counts[r][c] > s.max {
				s.max = s.counts[r][c]
			}
		}
	}
	return s
}

// Count returns the score of p and whether p is an empty cell.
func (s ForkScores) Count(p game.Position) (int, bool) {
	if !p.InBounds() || !s.empty[p.Row][p.Col] {
		return 0, false
	}
	return s.counts[p.Row][p.Col], true
}

// Max is the highest score over all empty cells.
func (s ForkScores) Max() int {
	return s.max
}

// IsAvoid reports whether p is an empty cell carrying the maximum score. When
// every empty cell scores zero, every empty cell is an avoid-cell.
func (s ForkScores) IsAvoid(p game.Position) bool {
	n, ok := s.Count(p)
	return ok && n == s.max
}

// IsTarget reports whether p is an empty cell that is not an avoid-cell.
func (s ForkScores) IsTarget(p game.Position) bool {
	n, ok := s.Count(p)
	return ok && n != s.max
}

// AvoidCells lists the avoid-cells in row-major order.
func (s ForkScores) AvoidCells() []game.Position {
	return s.filter(s.IsAvoid)
}

// TargetCells lists the target-cells in row-major order.
func (s ForkScores) TargetCells() []game.Position {
	return s.filter(s.IsTarget)
}

func (s ForkScores) filter(keep func(game.Position) bool) []game.Position {
	var cells []game.Position
	for r := range [3]int{} {
		for c := range [3]int{} {
			if p := (game.Position{Row: r, Col: c}); keep(p) {
				cells = append(cells, p)
			}
		}
	}
	return cells
}

package game

import (
	"fmt"
	"strings"
)

// Board is the 3x3 grid. Place is its only mutator; every other method is a
// pure query.
type Board [3][3]PlayerMark

// At returns the mark at p. p must be in bounds.
func (b *Board) At(p Position) PlayerMark {
	return b[p.Row][p.Col]
}

// Place puts mark into the empty cell at (row, col).
func (b *Board) Place(row, col int, mark PlayerMark) error {
	if mark != PlayerX && mark != PlayerO {
		return fmt.Errorf("%w: %q is not a player mark", ErrInvalidMove, string(mark))
	}
	p := Position{Row: row, Col: col}
	if !p.InBounds() {
		return fmt.Errorf("%w: %s is off the board", ErrInvalidMove, p)
	}
	if b[row][col] != None {
		return fmt.Errorf("%w: cell %s already occupied", ErrInvalidMove, p)
	}

	b[row][col] = mark
	return nil
}

// LineCounts returns how many cells of l hold mark and how many are empty.
func (b *Board) LineCounts(l Line, mark PlayerMark) (marks, empty int) {
	for _, p := range l {
		switch b.At(p) {
		case None:
			empty++
		case mark:
			marks++
		}
	}
	return marks, empty
}

// DetectWin reports whether mark occupies any complete line.
func (b *Board) DetectWin(mark PlayerMark) bool {
	for _, l := range Lines() {
		if n, _ := b.LineCounts(l, mark); n == 3 {
			return true
		}
	}
	return false
}

// IsFull reports whether no empty cells remain.
func (b *Board) IsFull() bool {
	return b.MarkCount() == 9
}

// MarkCount returns the number of occupied cells.
func (b *Board) MarkCount() int {
	count := 0
	for r := range [3]int{} {
		for c := range [3]int{} {
			if b[r][c] != None {
				count++
			}
		}
	}
	return count
}

// EmptyCells lists the empty cells in row-major order.
func (b *Board) EmptyCells() []Position {
	cells := make([]Position, 0, 9)
	for r := range [3]int{} {
		for c := range [3]int{} {
			if b[r][c] == None {
				cells = append(cells, Position{Row: r, Col: c})
			}
		}
	}
	return cells
}

// Result derives the game state. A completed human line cannot arise under the
// opponent's policy and is reported as ErrInvariantViolation.
func (b *Board) Result() (GameResult, error) {
	if b.DetectWin(Human) {
		return InProgress, fmt.Errorf("%w: human completed a line on board %s", ErrInvariantViolation, b)
	}
	if b.DetectWin(Opponent) {
		return OpponentWon, nil
	}
	if b.IsFull() {
		return Draw, nil
	}
	return InProgress, nil
}

// String renders the board on one line, rows separated by '/'.
func (b *Board) String() string {
	var sb strings.Builder
	for r := range [3]int{} {
		if r > 0 {
			sb.WriteByte('/')
		}
		for c := range [3]int{} {
			sb.WriteString(b[r][c].Symbol())
		}
	}
	return sb.String()
}

// ParseBoard builds a board from three row strings using 'X', 'O' and ' ' (or
// '.') for empty cells. It is mainly useful for describing positions in tests.
func ParseBoard(rows ...string) (Board, error) {
	var b Board
	if len(rows) != 3 {
		return b, fmt.Errorf("expected 3 rows, got %d", len(rows))
	}
	for r, row := range rows {
		if len(row) != 3 {
			return b, fmt.Errorf("row %d: expected 3 cells, got %q", r, row)
		}
		for c, ch := range []byte(row) {
			switch ch {
			case 'X':
				b[r][c] = PlayerX
			case 'O':
				b[r][c] = PlayerO
			case ' ', '.':
				b[r][c] = None
			default:
				return b, fmt.Errorf("row %d: unknown cell %q", r, ch)
			}
		}
	}
	return b, nil
}

// MustParseBoard is like ParseBoard but panics on malformed input.
func MustParseBoard(rows ...string) Board {
	b, err := ParseBoard(rows...)
	if err != nil {
		panic(err)
	}
	return b
}

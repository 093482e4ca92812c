package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlace(t *testing.T) {
	tests := []struct {
		name     string
		board    Board
		row, col int
		mark     PlayerMark
		wantErr  error
	}{
		{name: "Empty cell", board: Board{}, row: 1, col: 2, mark: PlayerX},
		{name: "Corner", board: Board{}, row: 2, col: 0, mark: PlayerO},
		{name: "Row below board", board: Board{}, row: -1, col: 0, mark: PlayerX, wantErr: ErrInvalidMove},
		{name: "Row above board", board: Board{}, row: 3, col: 0, mark: PlayerX, wantErr: ErrInvalidMove},
		{name: "Col above board", board: Board{}, row: 0, col: 3, mark: PlayerX, wantErr: ErrInvalidMove},
		{
			name:    "Occupied cell",
			board:   MustParseBoard("X..", "...", "..."),
			row:     0,
			col:     0,
			mark:    PlayerO,
			wantErr: ErrInvalidMove,
		},
		{name: "Empty mark", board: Board{}, row: 0, col: 0, mark: None, wantErr: ErrInvalidMove},
		{name: "Unknown mark", board: Board{}, row: 0, col: 0, mark: "Z", wantErr: ErrInvalidMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.board
			err := tt.board.Place(tt.row, tt.col, tt.mark)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, before, tt.board, "a rejected move must not touch the board")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.mark, tt.board[tt.row][tt.col])
			assert.Equal(t, before.MarkCount()+1, tt.board.MarkCount())
		})
	}
}

func TestPlace_CellNeverReverts(t *testing.T) {
	var b Board
	require.NoError(t, b.Place(1, 1, PlayerX))

	for _, mark := range []PlayerMark{PlayerX, PlayerO, None} {
		require.ErrorIs(t, b.Place(1, 1, mark), ErrInvalidMove)
	}
	assert.Equal(t, PlayerX, b[1][1])
}

func TestLines(t *testing.T) {
	ls := Lines()

	seen := map[Line]bool{}
	for _, l := range ls {
		assert.False(t, seen[l], "duplicate line %v", l)
		seen[l] = true
		for _, p := range l {
			assert.True(t, p.InBounds())
		}
	}

	// Rows, then columns, then diagonals.
	assert.Equal(t, Line{{0, 0}, {0, 1}, {0, 2}}, ls[0])
	assert.Equal(t, Line{{0, 0}, {1, 0}, {2, 0}}, ls[3])
	assert.Equal(t, Line{{0, 0}, {1, 1}, {2, 2}}, ls[6])
	assert.Equal(t, Line{{2, 0}, {1, 1}, {0, 2}}, ls[7])

	// Callers get a copy.
	ls[0][0] = Position{Row: 2, Col: 2}
	assert.Equal(t, Position{Row: 0, Col: 0}, Lines()[0][0])
}

func TestLineCounts(t *testing.T) {
	b := MustParseBoard(
		"XX.",
		"O.O",
		"...",
	)
	ls := Lines()

	marks, empty := b.LineCounts(ls[0], PlayerX)
	assert.Equal(t, 2, marks)
	assert.Equal(t, 1, empty)

	marks, empty = b.LineCounts(ls[1], PlayerX)
	assert.Equal(t, 0, marks)
	assert.Equal(t, 1, empty)

	marks, empty = b.LineCounts(ls[1], PlayerO)
	assert.Equal(t, 2, marks)
	assert.Equal(t, 1, empty)

	marks, empty = b.LineCounts(ls[2], PlayerO)
	assert.Equal(t, 0, marks)
	assert.Equal(t, 3, empty)
}

func TestDetectWin(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		mark  PlayerMark
		want  bool
	}{
		{name: "Empty board", board: Board{}, mark: PlayerO, want: false},
		{name: "Partial board", board: MustParseBoard("X..", ".O.", "..."), mark: PlayerX, want: false},
		{name: "O wins - first row", board: MustParseBoard("OOO", "XX.", "X.."), mark: PlayerO, want: true},
		{name: "O wins - second column", board: MustParseBoard("XO.", "XO.", ".O."), mark: PlayerO, want: true},
		{name: "O wins - main diagonal", board: MustParseBoard("OX.", "XO.", "..O"), mark: PlayerO, want: true},
		{name: "O wins - anti-diagonal", board: MustParseBoard("..O", "XOX", "O.."), mark: PlayerO, want: true},
		{name: "O line reported only for O", board: MustParseBoard("OOO", "XX.", "X.."), mark: PlayerX, want: false},
		{name: "Full board without a line", board: MustParseBoard("XOX", "XOO", "OXX"), mark: PlayerX, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.board.DetectWin(tt.mark))
		})
	}
}

func TestIsFull(t *testing.T) {
	assert.False(t, (&Board{}).IsFull())
	b := MustParseBoard("XOX", "XOO", "OX.")
	assert.False(t, b.IsFull())
	require.NoError(t, b.Place(2, 2, PlayerX))
	assert.True(t, b.IsFull())
	assert.Empty(t, b.EmptyCells())
}

func TestQueriesArePure(t *testing.T) {
	b := MustParseBoard("XO.", ".X.", "..O")
	snapshot := b

	for range 3 {
		assert.False(t, b.DetectWin(PlayerX))
		assert.False(t, b.IsFull())
		assert.Equal(t, 4, b.MarkCount())
		assert.Equal(t, []Position{{0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}}, b.EmptyCells())
	}
	assert.Equal(t, snapshot, b)
}

func TestResult(t *testing.T) {
	tests := []struct {
		name    string
		board   Board
		want    GameResult
		wantErr error
	}{
		{name: "Empty board", board: Board{}, want: InProgress},
		{name: "Opponent completed a line", board: MustParseBoard("OOO", "XX.", "X.."), want: OpponentWon},
		{name: "Full board is a draw", board: MustParseBoard("XOX", "XOO", "OXX"), want: Draw},
		{name: "Opponent line on a full board", board: MustParseBoard("XXO", "XOO", "OXX"), want: OpponentWon},
		{name: "Human line is impossible", board: MustParseBoard("XXX", "OO.", "..."), wantErr: ErrInvariantViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.board.Result()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBoard(t *testing.T) {
	b, err := ParseBoard("X O", " . ", "OOX")
	require.NoError(t, err)
	assert.Equal(t, PlayerX, b[0][0])
	assert.Equal(t, None, b[0][1])
	assert.Equal(t, None, b[1][1])
	assert.Equal(t, "X O/   /OOX", b.String())

	_, err = ParseBoard("XXX", "OOO")
	assert.Error(t, err)
	_, err = ParseBoard("XX", "OOO", "...")
	assert.Error(t, err)
	_, err = ParseBoard("XXZ", "OOO", "...")
	assert.Error(t, err)
}

func TestPlayerMark(t *testing.T) {
	assert.Equal(t, " ", None.Symbol())
	assert.Equal(t, "X", Human.Symbol())
	assert.Equal(t, "O", Opponent.Symbol())
	assert.Equal(t, PlayerO, PlayerX.Other())
	assert.Equal(t, PlayerX, PlayerO.Other())
	assert.Equal(t, None, None.Other())
}

func TestDetectWin_HumanMoveNeverCompletesOpponentLine(t *testing.T) {
	start := MustParseBoard(
		"OX.",
		".O.",
		"..X",
	)

	for _, p := range start.EmptyCells() {
		b := start
		require.NoError(t, b.Place(p.Row, p.Col, Human))
		assert.False(t, b.DetectWin(Human), "human at %s", p)
		assert.False(t, b.DetectWin(Opponent), "human at %s", p)
	}
}

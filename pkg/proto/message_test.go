package proto

import (
	"testing"

	"ctchen222/Tic-Tac-Toe-Solo/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		name    string
		in      MoveInput
		want    Move
		wantErr bool
	}{
		{name: "Top-left", in: MoveInput{Row: "0", Col: "0"}, want: Move{Row: 0, Col: 0}},
		{name: "Surrounding whitespace", in: MoveInput{Row: " 2\r", Col: "1 "}, want: Move{Row: 2, Col: 1}},
		{name: "Empty row", in: MoveInput{Row: "", Col: "1"}, wantErr: true},
		{name: "Letters", in: MoveInput{Row: "a", Col: "1"}, wantErr: true},
		{name: "Two digit column", in: MoveInput{Row: "1", Col: "12"}, wantErr: true},
		{name: "Negative", in: MoveInput{Row: "-1", Col: "0"}, wantErr: true},
		{name: "Too large", in: MoveInput{Row: "1", Col: "3"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMove(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, game.ErrInvalidMove)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, game.Position{Row: tt.want.Row, Col: tt.want.Col}, got.Position())
		})
	}
}

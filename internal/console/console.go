package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
	"ctchen222/Tic-Tac-Toe-Solo/pkg/proto"
)

const (
	rowPrompt = "enter y-coord"
	colPrompt = "enter x-coord"
)

// Terminal implements the player.Connection interface over a line-oriented
// reader and writer, usually stdin and stdout.
type Terminal struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewTerminal creates a terminal reading moves from in and writing to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// ReadMove prompts for the row, then the column. It returns io.EOF once the
// input is exhausted.
func (t *Terminal) ReadMove(ctx context.Context) (proto.MoveInput, error) {
	row, err := t.prompt(rowPrompt)
	if err != nil {
		return proto.MoveInput{}, err
	}
	col, err := t.prompt(colPrompt)
	if err != nil {
		return proto.MoveInput{}, err
	}
	return proto.MoveInput{Row: row, Col: col}, nil
}

func (t *Terminal) prompt(text string) (string, error) {
	if _, err := fmt.Fprintln(t.out, text); err != nil {
		return "", err
	}
	if !t.in.Scan() {
		if err := t.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return t.in.Text(), nil
}

// WriteBoard prints the three rows of the board, one per line, e.g.
// ['X', ' ', 'O'].
func (t *Terminal) WriteBoard(board game.Board) error {
	for _, row := range board {
		cells := make([]string, len(row))
		for i, mark := range row {
			cells[i] = "'" + mark.Symbol() + "'"
		}
		if _, err := fmt.Fprintf(t.out, "[%s]\n", strings.Join(cells, ", ")); err != nil {
			return err
		}
	}
	return nil
}

// WriteMessage prints message on its own line.
func (t *Terminal) WriteMessage(message string) error {
	_, err := fmt.Fprintln(t.out, message)
	return err
}

// Close is a no-op; the terminal does not own its streams.
func (t *Terminal) Close() error {
	return nil
}

package engine

import (
	"bufio"
	"fmt"
	"hex/game"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// ConsoleInput reads "row col" lines, prompting again until a legal move is
// entered.
type ConsoleInput struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewConsoleInput(in io.Reader, out io.Writer) *ConsoleInput {
	return &ConsoleInput{scanner: bufio.NewScanner(in), out: out}
}

func (c *ConsoleInput) ReadMove(board *game.Board, player game.Player, legal []game.Move) (game.Move, error) {
	fmt.Fprintf(c.out, "%s\n", board)
	for {
		fmt.Fprintf(c.out, "%s to move (row col): ", player)
		if !c.scanner.Scan() {
			if err := c.scanner.Err(); err != nil {
				return game.NoMove, err
			}
			return game.NoMove, io.ErrUnexpectedEOF
		}

		move, err := parseMove(c.scanner.Text())
		if err != nil {
			fmt.Fprintf(c.out, "%v\n", err)
			continue
		}
		if !slices.Contains(legal, move) {
			fmt.Fprintf(c.out, "%s is not a legal move\n", move)
			continue
		}
		return move, nil
	}
}

func parseMove(line string) (game.Move, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 2 {
		return game.NoMove, fmt.Errorf("expected two numbers, got %q", line)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return game.NoMove, fmt.Errorf("bad row: %w", err)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return game.NoMove, fmt.Errorf("bad col: %w", err)
	}
	return game.Move{Row: row, Col: col}, nil
}

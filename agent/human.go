package agent

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"othello/experiments/metrics"
	"othello/game"
	"othello/utils"
	"strconv"
	"strings"
)

var errMoveFormat = errors.New("expected two numbers: row col")

type humanAgent struct {
	in  *bufio.Reader
	out io.Writer
}

// NewHuman returns an agent that reads "row col" lines from in. Malformed or
// illegal input is asked for again; the board is never touched here. Passing
// the same *bufio.Reader to several readers keeps them from losing input.
func NewHuman(in io.Reader, out io.Writer) Agent {
	return &humanAgent{in: bufio.NewReader(in), out: out}
}

func (a *humanAgent) FindMove(b *game.Board, side game.Color) (game.Move, metrics.SearchMetric, error) {
	moves := game.LegalMoves(b, side)
	for {
		fmt.Fprintf(a.out, "%s, enter your move (row col): ", side)
		line, err := utils.ReadLine(a.in)
		if err != nil {
			return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("failed to read move: %w", err)
		}

		move, err := parseMove(line)
		if err != nil {
			fmt.Fprintf(a.out, "Invalid input: %v.\n", err)
			continue
		}
		if utils.FindIndex(moves, move) < 0 {
			fmt.Fprintf(a.out, "%v is not a valid move.\n", move)
			continue
		}
		return move, metrics.SearchMetric{}, nil
	}
}

func parseMove(line string) (game.Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return game.Move{}, errMoveFormat
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return game.Move{}, errMoveFormat
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return game.Move{}, errMoveFormat
	}
	return game.Move{Row: row, Col: col}, nil
}

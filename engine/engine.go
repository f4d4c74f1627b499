package engine

import (
	"errors"
	"fmt"
	"othello/game"
	"othello/utils"
)

var (
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrIllegalMove = errors.New("illegal move")
)

// Result is the final disk count and verdict of a finished game.
type Result struct {
	Black  int
	White  int
	Winner game.Color // Empty on a draw
}

func newResult(b *game.Board) Result {
	return Result{
		Black:  b.Count(game.Black),
		White:  b.Count(game.White),
		Winner: game.Winner(b),
	}
}

// Score is the final count line.
func (r Result) Score() string {
	return fmt.Sprintf("Final score - %s: %d, %s: %d", game.Black, r.Black, game.White, r.White)
}

// Verdict names the winner and the margin, or reports a draw.
func (r Result) Verdict() string {
	if r.Winner == game.Empty {
		return "It's a draw!"
	}
	return fmt.Sprintf("%s wins by %d!", r.Winner.Name(), utils.Abs(r.Black-r.White))
}

func (r Result) String() string {
	return r.Score() + "\n" + r.Verdict()
}

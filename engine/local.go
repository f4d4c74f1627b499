package engine

import (
	"fmt"
	"io"
	"othello/agent"
	"othello/experiments/metrics"
	"othello/game"
	"othello/utils"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// Engine drives one game. It is either awaiting a move from Turn or over.
type Engine struct {
	Board *game.Board
	Turn  game.Color

	agents      map[game.Color]agent.Agent
	out         io.Writer
	over        bool
	passes      int
	moveMetrics []metrics.MoveMetric
}

// WithBoard starts from b instead of the initial position.
func WithBoard(b *game.Board) Option {
	return func(e *Engine) {
		if b != nil {
			e.Board = b
		}
	}
}

func WithStartingPlayer(side game.Color) Option {
	return func(e *Engine) {
		if side == game.Black || side == game.White {
			e.Turn = side
		}
	}
}

// WithOutput renders boards, turns and the result to w.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) {
		if w != nil {
			e.out = w
		}
	}
}

func New(agents map[game.Color]agent.Agent, options ...Option) *Engine {
	for _, side := range game.Sides {
		if agents[side] == nil {
			panic(fmt.Sprintf("no agent for %s", side.Name()))
		}
	}

	e := &Engine{ // Black always opens
		Board:  game.NewBoard(),
		Turn:   game.Black,
		agents: agents,
		out:    io.Discard,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Engine) Over() bool {
	return e.over
}

// Step performs one transition. A side without legal moves passes; if its
// opponent cannot move either the game is over. Otherwise the side's agent
// picks a move, which is applied before the turn changes.
func (e *Engine) Step() (over bool, err error) {
	if e.over {
		return true, ErrGameOver
	}

	fmt.Fprint(e.out, e.Board)

	moves := game.LegalMoves(e.Board, e.Turn)
	if len(moves) == 0 {
		fmt.Fprintf(e.out, "No valid moves for %s. Passing turn.\n", e.Turn)
		log.Debug().Msgf("%s passes", e.Turn.Name())
		e.passes++
		e.Turn = e.Turn.Opponent()

		if !game.HasLegalMove(e.Board, e.Turn) {
			fmt.Fprintln(e.out, "No moves for either player. Game over!")
			e.over = true
		}
		return e.over, nil
	}

	fmt.Fprintf(e.out, "%s's turn. Valid moves: %s\n", e.Turn, formatMoves(moves))

	move, searchMetric, err := e.agents[e.Turn].FindMove(e.Board.Clone(), e.Turn)
	if err != nil {
		return false, fmt.Errorf("%s failed to move: %w", e.Turn.Name(), err)
	}
	if utils.FindIndex(moves, move) < 0 {
		return false, fmt.Errorf("%w: %s played %v", ErrIllegalMove, e.Turn.Name(), move)
	}

	flips := game.Apply(e.Board, move, e.Turn)
	fmt.Fprintf(e.out, "%s plays %v\n", e.Turn, move)

	e.moveMetrics = append(e.moveMetrics, metrics.MoveMetric{
		Step:         len(e.moveMetrics) + 1,
		Player:       e.Turn.Name(),
		Move:         move.String(),
		Flips:        flips,
		SearchMetric: searchMetric,
	})
	e.Turn = e.Turn.Opponent()
	return false, nil
}

// Run executes the game loop until neither side can move.
func (e *Engine) Run() (Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Turn.Name(),
		StartTime:      time.Now(),
	}

	log.Info().Msgf("%s is starting", e.Turn.Name())

	for !e.over {
		if _, err := e.Step(); err != nil {
			return Result{}, gameMetric, e.moveMetrics, err
		}
	}

	result := newResult(e.Board)
	fmt.Fprintln(e.out, result)

	gameMetric.Winner = result.Winner.Name()
	gameMetric.Black = result.Black
	gameMetric.White = result.White
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(e.moveMetrics)
	gameMetric.Passes = e.passes

	log.Info().Msgf("game over after %d moves: %s", gameMetric.TotalMoves, result.Verdict())

	return result, gameMetric, e.moveMetrics, nil
}

func formatMoves(moves []game.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}


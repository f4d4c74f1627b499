package agent

import (
	"fmt"
	"io"
	"othello/config"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

type Agent interface {
	// FindMove returns side's move on b and search metrics (if collected). It is
	// only called when side has at least one legal move.
	FindMove(b *game.Board, side game.Color) (game.Move, metrics.SearchMetric, error)
}

// New builds the agent described by p. Human agents read from in and prompt on out.
func New(p config.Player, in io.Reader, out io.Writer, seed uint64) (Agent, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	switch p.Kind {
	case config.Human:
		return NewHuman(in, out), nil
	case config.Search:
		ab := searcher.NewAlphaBeta(
			searcher.WithDepth(p.Depth),
			searcher.WithDuration(p.TimeLimit),
			searcher.WithNamedEvaluator(p.Evaluator),
			searcher.WithMetrics(),
		)
		return NewSearch(ab), nil
	case config.Random:
		return NewRandom(seed), nil
	default:
		return nil, fmt.Errorf("%w: %v", config.ErrUnknownKind, p.Kind)
	}
}

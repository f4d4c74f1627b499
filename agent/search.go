package agent

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

type searchAgent struct {
	ab *searcher.AlphaBeta
}

// NewSearch returns an agent that plays the alpha-beta searcher's best move.
func NewSearch(ab *searcher.AlphaBeta) Agent {
	return searchAgent{ab: ab}
}

func (a searchAgent) FindMove(b *game.Board, side game.Color) (game.Move, metrics.SearchMetric, error) {
	move, metric, ok := a.ab.BestMove(b, side)
	if !ok {
		panic("search agent asked to move without legal moves")
	}
	return move, metric, nil
}

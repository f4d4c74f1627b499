package agent

import (
	"othello/experiments/metrics"
	"othello/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandom returns an agent that picks uniformly among the legal moves.
func NewRandom(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(b *game.Board, side game.Color) (game.Move, metrics.SearchMetric, error) {
	moves := game.LegalMoves(b, side)
	if len(moves) == 0 {
		panic("random agent asked to move without legal moves")
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}

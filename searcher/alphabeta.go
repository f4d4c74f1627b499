package searcher

import (
	"math"
	"othello/experiments/metrics"
	"othello/game"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(ab *AlphaBeta)

// AlphaBeta is a depth-limited minimax searcher with alpha-beta pruning and a
// wall-clock cutoff. It is not safe for concurrent use.
type AlphaBeta struct {
	depth     int
	duration  time.Duration
	evaluate  game.Evaluator
	evalName  string
	metrics   metrics.Collector
	now       func() time.Time
	rootSide  game.Color
	startTime time.Time
}

func WithDepth(depth int) Option {
	return func(ab *AlphaBeta) {
		if depth > 0 {
			ab.depth = depth
		}
	}
}

// WithDuration sets the time limit of a search. Zero means no limit.
func WithDuration(duration time.Duration) Option {
	return func(ab *AlphaBeta) {
		if duration > 0 {
			ab.duration = duration
		}
	}
}

func WithEvaluator(evaluate game.Evaluator) Option {
	return func(ab *AlphaBeta) {
		if evaluate != nil {
			ab.evaluate = evaluate
			ab.evalName = "custom"
		}
	}
}

// WithNamedEvaluator uses the evaluator registered under name. It panics on
// unknown names, callers validate names up front.
func WithNamedEvaluator(name string) Option {
	return func(ab *AlphaBeta) {
		evaluate, err := game.LookupEvaluator(name)
		if err != nil {
			panic(err)
		}
		ab.evaluate = evaluate
		ab.evalName = name
	}
}

func WithMetrics() Option {
	return func(ab *AlphaBeta) {
		ab.metrics = metrics.NewCollector()
	}
}

func withClock(now func() time.Time) Option {
	return func(ab *AlphaBeta) {
		ab.now = now
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	ab := &AlphaBeta{ // Default values
		depth:    DefaultDepth,
		evaluate: game.PieceCount,
		evalName: DefaultEvaluator,
		metrics:  metrics.NewDummyCollector(),
		now:      time.Now,
	}
	for _, option := range options {
		option(ab)
	}
	return ab
}

// BestMove searches for side's move on b. The result is false only when side
// has no legal move. If the time limit expires before the first child of the
// root is searched, the first legal move is returned.
func (ab *AlphaBeta) BestMove(b *game.Board, side game.Color) (game.Move, metrics.SearchMetric, bool) {
	ab.metrics.Start(ab.depth, ab.duration, ab.evalName)
	score, move, ok := ab.Search(b, side)
	metric := ab.metrics.Complete(score)

	if !ok {
		moves := game.LegalMoves(b, side)
		if len(moves) == 0 {
			return game.Move{}, metric, false
		}
		log.Warn().Msgf("search for %s cut off at the root, falling back to %v", side.Name(), moves[0])
		move = moves[0]
	}

	log.Debug().
		Str("side", side.Name()).
		Str("move", move.String()).
		Int("score", score).
		Int("nodes", metric.Nodes).
		Int("prunes", metric.Prunes).
		Bool("timedOut", metric.TimedOut).
		Dur("duration", metric.Duration).
		Msg("search complete")

	return move, metric, true
}

// Search runs the full-depth search from side's perspective and returns the
// root score and move. ok is false when the root itself is a leaf.
func (ab *AlphaBeta) Search(b *game.Board, side game.Color) (score int, move game.Move, ok bool) {
	ab.rootSide = side
	ab.startTime = ab.now()
	return ab.search(b, ab.depth, math.MinInt, math.MaxInt, true)
}

// search returns the minimax value of b from the root side's perspective. The
// side to move is the root side when maximizing and its opponent otherwise.
// A node without legal moves is a leaf: a pass does not recurse into the
// other side's turn.
func (ab *AlphaBeta) search(b *game.Board, depth, alpha, beta int, maximizing bool) (int, game.Move, bool) {
	ab.metrics.AddNode()

	side := ab.rootSide
	if !maximizing {
		side = side.Opponent()
	}

	moves := game.LegalMoves(b, side)
	if depth == 0 || len(moves) == 0 || ab.expired() {
		ab.metrics.AddLeaf()
		return ab.evaluate.Score(b, ab.rootSide), game.Move{}, false
	}

	var best game.Move
	if maximizing {
		maxScore := math.MinInt
		for i, move := range moves {
			child := b.Clone()
			game.Apply(child, move, side)
			score, _, _ := ab.search(child, depth-1, alpha, beta, false)
			if i == 0 || score > maxScore {
				maxScore = score
				best = move
			}
			alpha = max(alpha, score)
			if ab.stop(alpha, beta, i, len(moves)) {
				break
			}
		}
		return maxScore, best, true
	}

	minScore := math.MaxInt
	for i, move := range moves {
		child := b.Clone()
		game.Apply(child, move, side)
		score, _, _ := ab.search(child, depth-1, alpha, beta, true)
		if i == 0 || score < minScore {
			minScore = score
			best = move
		}
		beta = min(beta, score)
		if ab.stop(alpha, beta, i, len(moves)) {
			break
		}
	}
	return minScore, best, true
}

// stop reports whether the remaining siblings after the i-th move should be skipped.
func (ab *AlphaBeta) stop(alpha, beta, i, n int) bool {
	if beta <= alpha {
		if i < n-1 {
			ab.metrics.AddPrune()
		}
		return true
	}
	return ab.expired()
}

func (ab *AlphaBeta) expired() bool {
	if ab.duration <= 0 {
		return false
	}
	if ab.now().Sub(ab.startTime) > ab.duration {
		ab.metrics.SetTimedOut()
		return true
	}
	return false
}

package game

import (
	"errors"
	"fmt"
	"sort"
)

const (
	CornerWeight   = 5
	MobilityWeight = 2
)

var ErrUnknownEvaluator = errors.New("unknown evaluator")

// Evaluator scores a board from side's perspective, higher is better for side.
// Implementations must be pure: no shared state and no mutation of the board.
type Evaluator interface {
	Score(b *Board, side Color) int
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(b *Board, side Color) int

func (f EvaluatorFunc) Score(b *Board, side Color) int {
	return f(b, side)
}

// PieceCount is the disk difference between side and its opponent.
var PieceCount = EvaluatorFunc(EvaluatePieceCount)

// Advanced combines disk difference, corner ownership and mobility.
var Advanced = EvaluatorFunc(EvaluateAdvanced)

func EvaluatePieceCount(b *Board, side Color) int {
	return b.Count(side) - b.Count(side.Opponent())
}

// EvaluateAdvanced adds CornerWeight per net corner held and MobilityWeight per
// net legal move to the disk difference.
func EvaluateAdvanced(b *Board, side Color) int {
	opponent := side.Opponent()

	pieces := EvaluatePieceCount(b, side)
	corners := cornerScore(b, side)
	mobility := len(LegalMoves(b, side)) - len(LegalMoves(b, opponent))

	return pieces + CornerWeight*corners + MobilityWeight*mobility
}

func cornerScore(b *Board, side Color) int {
	opponent := side.Opponent()
	score := 0
	for _, corner := range [4]Move{{0, 0}, {0, Size - 1}, {Size - 1, 0}, {Size - 1, Size - 1}} {
		switch b[corner.Row][corner.Col] {
		case side:
			score++
		case opponent:
			score--
		}
	}
	return score
}

var evaluators = map[string]Evaluator{
	"piece-count": PieceCount,
	"advanced":    Advanced,
}

// RegisterEvaluator makes e available under name for LookupEvaluator.
func RegisterEvaluator(name string, e Evaluator) {
	if e == nil {
		panic("nil evaluator")
	}
	evaluators[name] = e
}

// LookupEvaluator returns the evaluator registered under name.
func LookupEvaluator(name string) (Evaluator, error) {
	e, ok := evaluators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvaluator, name)
	}
	return e, nil
}

// EvaluatorNames returns the registered names, sorted.
func EvaluatorNames() []string {
	names := make([]string, 0, len(evaluators))
	for name := range evaluators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

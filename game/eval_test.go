package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluatePieceCount(t *testing.T) {
	b := NewBoard()
	Apply(b, Move{2, 3}, Black)

	require.Equal(t, 3, PieceCount.Score(b, Black))
	require.Equal(t, -3, PieceCount.Score(b, White))
}

func TestEvaluateAdvanced(t *testing.T) {
	t.Run("initial position is balanced", func(t *testing.T) {
		require.Equal(t, 0, Advanced.Score(NewBoard(), Black))
		require.Equal(t, 0, Advanced.Score(NewBoard(), White))
	})

	t.Run("one corner adds exactly the corner weight", func(t *testing.T) {
		// Both sides own one isolated disk and have no moves, Black's is a corner
		b := &Board{}
		b.Set(0, 0, Black)
		b.Set(4, 4, White)
		require.Empty(t, LegalMoves(b, Black))
		require.Empty(t, LegalMoves(b, White))

		advanced := Advanced.Score(b, Black)
		pieces := PieceCount.Score(b, Black)

		require.Equal(t, pieces+5, advanced)
		require.Equal(t, pieces-5, Advanced.Score(b, White))
	})

	t.Run("mobility is weighted by two", func(t *testing.T) {
		b := NewBoard()
		Apply(b, Move{2, 3}, Black)

		mobility := len(LegalMoves(b, Black)) - len(LegalMoves(b, White))

		require.Equal(t, PieceCount.Score(b, Black)+2*mobility, Advanced.Score(b, Black))
	})
}

func TestLookupEvaluator(t *testing.T) {
	t.Run("known names", func(t *testing.T) {
		for _, name := range []string{"piece-count", "advanced"} {
			e, err := LookupEvaluator(name)
			require.NoError(t, err)
			require.NotNil(t, e)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := LookupEvaluator("parity")
		require.ErrorIs(t, err, ErrUnknownEvaluator)
	})

	t.Run("registered evaluators are listed", func(t *testing.T) {
		RegisterEvaluator("test-constant", EvaluatorFunc(func(*Board, Color) int { return 1 }))
		defer delete(evaluators, "test-constant")

		require.Contains(t, EvaluatorNames(), "test-constant")
		e, err := LookupEvaluator("test-constant")
		require.NoError(t, err)
		require.Equal(t, 1, e.Score(NewBoard(), Black))
	})
}

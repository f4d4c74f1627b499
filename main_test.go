package main

import (
	"othello/config"
	"othello/game"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func flags(kind, evaluator string, limit float64) sideFlags {
	return sideFlags{kind: &kind, evaluator: &evaluator, timeLimit: &limit}
}

func TestSetupFromFlags(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		setup, err := setupFromFlags(flags("random", "advanced", 1), flags("Search", "piece-count", 0.5))
		require.NoError(t, err)
		require.Equal(t, config.Random, setup.Players[game.Black].Kind)
		require.Equal(t, config.Player{Kind: config.Search, Evaluator: "piece-count", TimeLimit: 500 * time.Millisecond}, setup.Players[game.White])
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := setupFromFlags(flags("robot", "advanced", 1), flags("search", "advanced", 1))
		require.ErrorIs(t, err, config.ErrUnknownKind)
	})

	t.Run("invalid time limit", func(t *testing.T) {
		_, err := setupFromFlags(flags("human", "advanced", 1), flags("search", "advanced", 0))
		require.ErrorIs(t, err, config.ErrInvalidTimeLimit)
	})

	t.Run("unknown evaluator", func(t *testing.T) {
		_, err := setupFromFlags(flags("human", "advanced", 1), flags("search", "greedy", 1))
		require.ErrorIs(t, err, game.ErrUnknownEvaluator)
	})
}

func TestSetupFromFlagsTimeLimits(t *testing.T) {
	t.Run("limits a duration cannot hold", func(t *testing.T) {
		for _, limit := range []float64{1e-10, 1e10} {
			_, err := setupFromFlags(flags("human", "advanced", 1), flags("search", "advanced", limit))
			require.ErrorIs(t, err, config.ErrInvalidTimeLimit, limit)
		}
	})

	t.Run("non-search players ignore the limit", func(t *testing.T) {
		setup, err := setupFromFlags(flags("random", "advanced", 0), flags("human", "advanced", -1))
		require.NoError(t, err)
		require.Zero(t, setup.Players[game.Black].TimeLimit)
	})
}

func TestSeedOrClock(t *testing.T) {
	clock := func() time.Time { return time.Unix(0, 42) }

	require.Equal(t, uint64(7), seedOrClock(7, clock))
	require.Equal(t, uint64(42), seedOrClock(0, clock))
}

func TestRunExperimentUnknown(t *testing.T) {
	require.Error(t, runExperiment("tournament", t.TempDir(), 1))
}

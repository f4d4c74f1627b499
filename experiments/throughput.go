package experiments

import (
	"othello/config"
	"othello/experiments/metrics"
	"time"
)

var timeLimits = []time.Duration{
	10 * time.Millisecond,
	50 * time.Millisecond,
	250 * time.Millisecond,
	time.Second,
}

// RunTimeLimitExperiment measures how much of the tree the advanced search
// covers under growing time limits. Each limit plays the shortest one, so the
// move records show nodes per move and the game records show the strength gain.
func RunTimeLimitExperiment(dir string, numGames int) (string, error) {
	if numGames <= 0 {
		numGames = NumGames
	}

	configs := make([]metrics.AgentConfig, len(timeLimits))
	for i, limit := range timeLimits {
		configs[i] = metrics.AgentConfig{
			ID:     i + 1,
			Player: config.Player{Kind: config.Search, Evaluator: "advanced", TimeLimit: limit},
		}
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, c := range configs[1:] {
		matchUps = append(matchUps, []metrics.AgentConfig{configs[0], c})
	}

	return Run("time_limits", configs, matchUps, numGames, dir)
}

package experiments

import (
	"fmt"
	"io"
	"othello/agent"
	"othello/config"
	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	NumGames   = 10 // Per match up
	TimeBudget = 100 * time.Millisecond
)

// RunEvaluatorExperiment pits the two evaluators against each other and each
// against a random baseline.
func RunEvaluatorExperiment(dir string, numGames int, limit time.Duration) (string, error) {
	if numGames <= 0 {
		numGames = NumGames
	}
	if limit <= 0 {
		limit = TimeBudget
	}

	baseline := metrics.AgentConfig{ID: 0, Player: config.Player{Kind: config.Random}, Seed: 1}
	pieceCount := metrics.AgentConfig{ID: 1, Player: config.Player{Kind: config.Search, Evaluator: "piece-count", TimeLimit: limit}}
	advanced := metrics.AgentConfig{ID: 2, Player: config.Player{Kind: config.Search, Evaluator: "advanced", TimeLimit: limit}}

	matchUps := [][]metrics.AgentConfig{
		{pieceCount, advanced},
		{baseline, pieceCount},
		{baseline, advanced},
	}

	return Run("evaluators", []metrics.AgentConfig{baseline, pieceCount, advanced}, matchUps, numGames, dir)
}

// Run plays numGames games per matchup, swapping colours every game, and
// stores the configs and results under dir. It returns the output directory.
func Run(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, numGames int, dir string) (string, error) {
	for _, c := range configs {
		if c.Kind == config.Human {
			return "", fmt.Errorf("agent %d: human players cannot take part in experiments", c.ID)
		}
		if err := c.Validate(); err != nil {
			return "", fmt.Errorf("agent %d: %w", c.ID, err)
		}
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		if len(matchup) != 2 {
			return "", fmt.Errorf("matchup %d has %d agents, want 2", mi+1, len(matchup))
		}

		log.Info().Msgf("starting matchup %d of %d between agent %d (%v) and agent %d (%v)...", mi+1, len(matchUps), matchup[0].ID, matchup[0], matchup[1].ID, matchup[1])

		for i := 0; i < numGames; i++ {
			black, white := matchup[0], matchup[1]
			if i%2 == 1 {
				black, white = white, black
			}

			count++
			result, gameMetric, moveMetrics, err := runGame(black, white, uint64(count))
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     black.ID,
				Agent2:     white.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d: %s", mi+1, len(matchUps), i+1, strings.ReplaceAll(result.String(), "\n", ", "))
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame executes a single game between two agents. Random agents are
// reseeded per game so repeated matchups differ.
func runGame(black, white metrics.AgentConfig, gameID uint64) (engine.Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	blackAgent, err := agent.New(black.Player, nil, io.Discard, black.Seed+gameID)
	if err != nil {
		return engine.Result{}, metrics.GameMetric{}, nil, err
	}
	whiteAgent, err := agent.New(white.Player, nil, io.Discard, white.Seed+gameID)
	if err != nil {
		return engine.Result{}, metrics.GameMetric{}, nil, err
	}

	e := engine.New(map[game.Color]agent.Agent{
		game.Black: blackAgent,
		game.White: whiteAgent,
	})
	return e.Run()
}

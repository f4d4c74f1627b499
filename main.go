package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"othello/agent"
	"othello/config"
	"othello/engine"
	"othello/experiments"
	"othello/game"
	"time"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type sideFlags struct {
	kind      *string
	evaluator *string
	timeLimit *float64
}

func main() {
	black := sideFlags{
		kind:      flag.String("black", "human", "Black player type: human, search or random"),
		evaluator: flag.String("black-eval", "advanced", "Black evaluator when searching"),
		timeLimit: flag.Float64("black-time", 1, "Black time limit per move in seconds when searching"),
	}
	white := sideFlags{
		kind:      flag.String("white", "search", "White player type: human, search or random"),
		evaluator: flag.String("white-eval", "advanced", "White evaluator when searching"),
		timeLimit: flag.Float64("white-time", 1, "White time limit per move in seconds when searching"),
	}
	depth := flag.Int("depth", 0, "Search depth (0 uses the default)")
	seed := flag.Uint64("seed", 0, "Seed for random players (0 seeds from the clock)")
	interactive := flag.Bool("interactive", false, "Prompt for the player setup")
	experiment := flag.String("experiment", "", "Run a self-play experiment instead of a game: evaluators or time-limits")
	games := flag.Int("games", experiments.NumGames, "Games per matchup in experiments")
	out := flag.String("out", "experiments", "Output directory for experiment records")
	debug := flag.Bool("debug", false, "Log search statistics")
	cpuProfile := flag.Bool("profile", false, "Write a CPU profile to the working directory")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	if *experiment != "" {
		if err := runExperiment(*experiment, *out, *games); err != nil {
			log.Error().Err(err).Msg("experiment failed")
			os.Exit(1)
		}
		return
	}

	in := bufio.NewReader(os.Stdin)
	var setup config.Game
	if *interactive {
		fmt.Println("Welcome to Othello!")
		var err error
		setup, err = config.Prompt(in, os.Stdout)
		if err != nil {
			log.Error().Err(err).Msg("setup failed")
			os.Exit(1)
		}
	} else {
		var err error
		setup, err = setupFromFlags(black, white)
		if err != nil {
			log.Error().Err(err).Msg("invalid flags")
			flag.Usage()
			os.Exit(2)
		}
	}

	if err := play(setup, in, *depth, seedOrClock(*seed, time.Now)); err != nil {
		log.Error().Err(err).Msg("game aborted")
		os.Exit(1)
	}
}

func setupFromFlags(black, white sideFlags) (config.Game, error) {
	setup := config.Game{Players: map[game.Color]config.Player{}}
	for side, f := range map[game.Color]sideFlags{game.Black: black, game.White: white} {
		kind, err := config.ParseKind(*f.kind)
		if err != nil {
			return config.Game{}, err
		}
		p := config.Player{Kind: kind, Evaluator: *f.evaluator}
		if kind == config.Search {
			if p.TimeLimit, err = config.Seconds(*f.timeLimit); err != nil {
				return config.Game{}, fmt.Errorf("invalid %s player: %w", side.Name(), err)
			}
		}
		setup.Players[side] = p
	}
	return setup, setup.Validate()
}

// seedOrClock returns seed, or the current time when seed is left at zero.
func seedOrClock(seed uint64, now func() time.Time) uint64 {
	if seed != 0 {
		return seed
	}
	return uint64(now().UnixNano())
}

func play(setup config.Game, in *bufio.Reader, depth int, seed uint64) error {
	agents := make(map[game.Color]agent.Agent, len(game.Sides))
	for i, side := range game.Sides {
		p := setup.Players[side]
		p.Depth = depth
		a, err := agent.New(p, in, os.Stdout, seed+uint64(i))
		if err != nil {
			return fmt.Errorf("%s: %w", side.Name(), err)
		}
		agents[side] = a
		log.Info().Msgf("%s is played by %v", side.Name(), p)
	}

	e := engine.New(agents, engine.WithOutput(os.Stdout))
	_, _, _, err := e.Run()
	return err
}

func runExperiment(name, dir string, games int) error {
	var err error
	switch name {
	case "evaluators":
		_, err = experiments.RunEvaluatorExperiment(dir, games, experiments.TimeBudget)
	case "time-limits":
		_, err = experiments.RunTimeLimitExperiment(dir, games)
	default:
		err = fmt.Errorf("unknown experiment %q", name)
	}
	return err
}

package config

import (
	"errors"
	"fmt"
	"math"
	"othello/game"
	"strconv"
	"strings"
	"time"
)

var (
	ErrUnknownKind      = errors.New("unknown player type")
	ErrInvalidTimeLimit = errors.New("time limit must be a positive number of seconds")
)

// Kind selects where a side's moves come from.
type Kind int

const (
	Human Kind = iota
	Search
	Random
)

func (k Kind) String() string {
	switch k {
	case Human:
		return "human"
	case Search:
		return "search"
	case Random:
		return "random"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts the long names and their usual short forms, ignoring case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "human", "h":
		return Human, nil
	case "search", "computer", "ai", "c", "s":
		return Search, nil
	case "random", "r":
		return Random, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Player configures one side.
type Player struct {
	Kind      Kind
	Evaluator string        // Search only
	TimeLimit time.Duration // Search only
	Depth     int           // Search only, 0 uses the searcher default
}

func (p Player) Validate() error {
	if p.Kind < Human || p.Kind > Random {
		return fmt.Errorf("%w: %v", ErrUnknownKind, p.Kind)
	}
	if p.Kind != Search {
		return nil
	}
	if _, err := game.LookupEvaluator(p.Evaluator); err != nil {
		return err
	}
	if p.TimeLimit <= 0 {
		return ErrInvalidTimeLimit
	}
	if p.Depth < 0 {
		return fmt.Errorf("search depth must not be negative, got %d", p.Depth)
	}
	return nil
}

func (p Player) String() string {
	if p.Kind != Search {
		return p.Kind.String()
	}
	return fmt.Sprintf("search(%s, %v)", p.Evaluator, p.TimeLimit)
}

// Game configures both sides.
type Game struct {
	Players map[game.Color]Player
}

// Default pits a human playing Black against the advanced search.
func Default() Game {
	return Game{
		Players: map[game.Color]Player{
			game.Black: {Kind: Human},
			game.White: {Kind: Search, Evaluator: "advanced", TimeLimit: time.Second},
		},
	}
}

func (g Game) Validate() error {
	for _, side := range game.Sides {
		p, ok := g.Players[side]
		if !ok {
			return fmt.Errorf("no player configured for %s", side.Name())
		}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("invalid %s player: %w", side.Name(), err)
		}
	}
	return nil
}

// ParseSeconds converts a positive real number of seconds to a duration.
func ParseSeconds(s string) (time.Duration, error) {
	seconds, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeLimit, s)
	}
	return Seconds(seconds)
}

// maxSeconds is the longest limit a time.Duration can hold.
var maxSeconds = float64(math.MaxInt64) / float64(time.Second)

// Seconds converts seconds to a duration. The result must be at least one
// nanosecond and must fit in a time.Duration.
func Seconds(seconds float64) (time.Duration, error) {
	if math.IsNaN(seconds) || seconds <= 0 || seconds >= maxSeconds {
		return 0, fmt.Errorf("%w: %v", ErrInvalidTimeLimit, seconds)
	}
	d := time.Duration(seconds * float64(time.Second))
	if d <= 0 {
		return 0, fmt.Errorf("%w: %v is shorter than a nanosecond", ErrInvalidTimeLimit, seconds)
	}
	return d, nil
}

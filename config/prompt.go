package config

import (
	"bufio"
	"fmt"
	"io"
	"othello/game"
	"othello/utils"
	"strings"
)

// Prompt asks for each side's player type and, for search players, the
// evaluator and time limit. Invalid answers are asked again.
func Prompt(in io.Reader, out io.Writer) (Game, error) {
	p := prompter{in: bufio.NewReader(in), out: out}
	g := Game{Players: make(map[game.Color]Player, len(game.Sides))}

	for _, side := range game.Sides {
		player, err := p.player(side)
		if err != nil {
			return Game{}, err
		}
		g.Players[side] = player
	}
	return g, nil
}

type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func (p prompter) player(side game.Color) (Player, error) {
	var player Player

	err := p.ask(fmt.Sprintf("Player type for %s (human, search, random): ", side.Name()), func(answer string) error {
		kind, err := ParseKind(answer)
		player.Kind = kind
		return err
	})
	if err != nil || player.Kind != Search {
		return player, err
	}

	names := game.EvaluatorNames()
	err = p.ask(fmt.Sprintf("Evaluator for %s (%s): ", side.Name(), strings.Join(names, ", ")), func(answer string) error {
		name := strings.ToLower(strings.TrimSpace(answer))
		if _, err := game.LookupEvaluator(name); err != nil {
			return err
		}
		player.Evaluator = name
		return nil
	})
	if err != nil {
		return player, err
	}

	err = p.ask(fmt.Sprintf("Time limit for %s's moves (in seconds): ", side.Name()), func(answer string) error {
		limit, err := ParseSeconds(answer)
		player.TimeLimit = limit
		return err
	})
	return player, err
}

// ask repeats question until accept returns nil. It fails only when input runs out.
func (p prompter) ask(question string, accept func(answer string) error) error {
	for {
		fmt.Fprint(p.out, question)
		answer, err := utils.ReadLine(p.in)
		if err != nil {
			return fmt.Errorf("failed to read answer: %w", err)
		}
		err = accept(answer)
		if err == nil {
			return nil
		}
		fmt.Fprintf(p.out, "Invalid answer: %v. Please try again.\n", err)
	}
}

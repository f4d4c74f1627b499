package config

import (
	"bytes"
	"io"
	"othello/game"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	t.Run("accepts names and short forms", func(t *testing.T) {
		cases := map[string]Kind{
			"human":    Human,
			"H":        Human,
			"search":   Search,
			"Computer": Search,
			" ai ":     Search,
			"random":   Random,
			"r":        Random,
		}
		for input, want := range cases {
			got, err := ParseKind(input)
			require.NoError(t, err, input)
			require.Equal(t, want, got, input)
		}
	})

	t.Run("rejects anything else", func(t *testing.T) {
		_, err := ParseKind("robot")
		require.ErrorIs(t, err, ErrUnknownKind)
	})
}

func TestParseSeconds(t *testing.T) {
	t.Run("positive reals", func(t *testing.T) {
		d, err := ParseSeconds("1.5")
		require.NoError(t, err)
		require.Equal(t, 1500*time.Millisecond, d)

		d, err = ParseSeconds(" 2 ")
		require.NoError(t, err)
		require.Equal(t, 2*time.Second, d)
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, input := range []string{"", "abc", "0", "-1", "1.5s", "NaN", "+Inf", "1e-10", "1e10"} {
			_, err := ParseSeconds(input)
			require.ErrorIs(t, err, ErrInvalidTimeLimit, input)
		}
	})
}

func TestSeconds(t *testing.T) {
	t.Run("smallest and largest limits", func(t *testing.T) {
		d, err := Seconds(1e-9)
		require.NoError(t, err)
		require.Positive(t, d)

		d, err = Seconds(9e9)
		require.NoError(t, err)
		require.Positive(t, d)
	})

	t.Run("limits a duration cannot hold", func(t *testing.T) {
		for _, seconds := range []float64{1e-10, 1e10, maxSeconds} {
			_, err := Seconds(seconds)
			require.ErrorIs(t, err, ErrInvalidTimeLimit, seconds)
		}
	})
}

func TestValidate(t *testing.T) {
	t.Run("default configuration is valid", func(t *testing.T) {
		require.NoError(t, Default().Validate())
	})

	t.Run("search player needs a known evaluator", func(t *testing.T) {
		p := Player{Kind: Search, Evaluator: "parity", TimeLimit: time.Second}
		require.ErrorIs(t, p.Validate(), game.ErrUnknownEvaluator)
	})

	t.Run("search player needs a positive time limit", func(t *testing.T) {
		p := Player{Kind: Search, Evaluator: "advanced"}
		require.ErrorIs(t, p.Validate(), ErrInvalidTimeLimit)
	})

	t.Run("random player ignores search settings", func(t *testing.T) {
		require.NoError(t, Player{Kind: Random}.Validate())
	})

	t.Run("missing side", func(t *testing.T) {
		g := Game{Players: map[game.Color]Player{game.Black: {Kind: Human}}}
		require.Error(t, g.Validate())
	})

	t.Run("invalid side is wrapped", func(t *testing.T) {
		g := Default()
		g.Players[game.White] = Player{Kind: Search, Evaluator: "advanced"}
		require.ErrorIs(t, g.Validate(), ErrInvalidTimeLimit)
	})
}

func TestPrompt(t *testing.T) {
	t.Run("reads both sides", func(t *testing.T) {
		in := strings.NewReader("human\nsearch\nadvanced\n0.5\n")
		var out bytes.Buffer

		g, err := Prompt(in, &out)

		require.NoError(t, err)
		require.Equal(t, Player{Kind: Human}, g.Players[game.Black])
		require.Equal(t, Player{Kind: Search, Evaluator: "advanced", TimeLimit: 500 * time.Millisecond}, g.Players[game.White])
		require.NoError(t, g.Validate())
		require.Contains(t, out.String(), "Player type for Black")
		require.Contains(t, out.String(), "Time limit for White's moves")
	})

	t.Run("asks again after invalid answers", func(t *testing.T) {
		in := strings.NewReader("robot\nsearch\nparity\npiece-count\nsoon\n-2\n3\nrandom\n")
		var out bytes.Buffer

		g, err := Prompt(in, &out)

		require.NoError(t, err)
		require.Equal(t, Player{Kind: Search, Evaluator: "piece-count", TimeLimit: 3 * time.Second}, g.Players[game.Black])
		require.Equal(t, Player{Kind: Random}, g.Players[game.White])
		require.Equal(t, 4, strings.Count(out.String(), "Invalid answer"))
	})

	t.Run("asks again for limits that round to nothing or overflow", func(t *testing.T) {
		in := strings.NewReader("search\nadvanced\n1e-10\n1e10\n2\nrandom\n")
		var out bytes.Buffer

		g, err := Prompt(in, &out)

		require.NoError(t, err)
		require.Equal(t, 2*time.Second, g.Players[game.Black].TimeLimit)
		require.NoError(t, g.Validate())
		require.Equal(t, 2, strings.Count(out.String(), "Invalid answer"))
	})

	t.Run("fails when input runs out", func(t *testing.T) {
		_, err := Prompt(strings.NewReader("human\n"), io.Discard)
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}

package game

const Size = 8

// Color is the content of a cell. Black and White double as the two sides.
type Color int8

const (
	Empty Color = iota
	Black
	White
)

// Opponent maps Black to White and back. Empty has no opponent.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (c Color) String() string {
	switch c {
	case Black:
		return "B"
	case White:
		return "W"
	default:
		return "."
	}
}

// Name is the long form used in verdicts and logs.
func (c Color) Name() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Nobody"
	}
}

// Sides lists both players, Black first since Black always opens.
var Sides = [2]Color{Black, White}

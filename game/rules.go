package game

// All eight compass directions as (row, col) steps
var directions = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// IsLegal reports whether side may place a disk at (row, col): the cell is
// empty and at least one direction walks over one or more opponent disks and
// ends on a disk of side.
func IsLegal(b *Board, row, col int, side Color) bool {
	if !InBounds(row, col) || b[row][col] != Empty {
		return false
	}
	for _, d := range directions {
		if captures(b, row, col, d[0], d[1], side) > 0 {
			return true
		}
	}
	return false
}

// captures returns the length of the opponent run starting next to (row, col)
// in direction (dr, dc), or 0 if the run is not closed by a disk of side.
func captures(b *Board, row, col, dr, dc int, side Color) int {
	opponent := side.Opponent()
	r, c := row+dr, col+dc
	run := 0
	for InBounds(r, c) && b[r][c] == opponent {
		run++
		r += dr
		c += dc
	}
	if run == 0 || !InBounds(r, c) || b[r][c] != side {
		return 0
	}
	return run
}

// LegalMoves returns all legal moves of side in row-major order.
func LegalMoves(b *Board, side Color) []Move {
	var moves []Move
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if IsLegal(b, r, c, side) {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}
	return moves
}

// HasLegalMove is LegalMoves(b, side) != empty without building the slice.
func HasLegalMove(b *Board, side Color) bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if IsLegal(b, r, c, side) {
				return true
			}
		}
	}
	return false
}

// Apply places a disk of side at m and flips every capturing run, each
// direction on its own. The move must be legal; Apply does not check.
// It returns the number of flipped disks.
func Apply(b *Board, m Move, side Color) int {
	b[m.Row][m.Col] = side
	flipped := 0
	for _, d := range directions {
		run := captures(b, m.Row, m.Col, d[0], d[1], side)
		r, c := m.Row+d[0], m.Col+d[1]
		for i := 0; i < run; i++ {
			b[r][c] = side
			r += d[0]
			c += d[1]
		}
		flipped += run
	}
	return flipped
}

// IsOver reports whether neither side can move.
func IsOver(b *Board) bool {
	return !HasLegalMove(b, Black) && !HasLegalMove(b, White)
}

// Winner returns the side with strictly more disks, or Empty on a draw.
func Winner(b *Board) Color {
	black, white := b.Count(Black), b.Count(White)
	switch {
	case black > white:
		return Black
	case white > black:
		return White
	default:
		return Empty
	}
}

package game

import "strings"

// Board is the 8x8 grid. It is a value type, so assigning or cloning it never
// aliases cells with the original.
type Board [Size][Size]Color

// NewBoard returns the starting position: two disks per side on the centre diagonals.
func NewBoard() *Board {
	b := &Board{}
	mid := Size / 2
	b[mid-1][mid-1], b[mid][mid] = White, White
	b[mid-1][mid], b[mid][mid-1] = Black, Black
	return b
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

func (b *Board) At(row, col int) Color {
	return b[row][col]
}

// Set places a disk without any rule checks. Meant for setting up positions.
func (b *Board) Set(row, col int, c Color) {
	b[row][col] = c
}

// Count returns the number of cells holding c.
func (b *Board) Count(c Color) int {
	count := 0
	for r := 0; r < Size; r++ {
		for col := 0; col < Size; col++ {
			if b[r][col] == c {
				count++
			}
		}
	}
	return count
}

// Disks returns the number of occupied cells.
func (b *Board) Disks() int {
	return Size*Size - b.Count(Empty)
}

func (b *Board) Full() bool {
	return b.Count(Empty) == 0
}

// String renders column indices as a header and row indices as a leading column.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString(" ")
	for col := 0; col < Size; col++ {
		sb.WriteByte(' ')
		sb.WriteByte(byte('0' + col))
	}
	sb.WriteByte('\n')
	for r := 0; r < Size; r++ {
		sb.WriteByte(byte('0' + r))
		for col := 0; col < Size; col++ {
			sb.WriteByte(' ')
			sb.WriteString(b[r][col].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

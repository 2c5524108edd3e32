package board

import "math/bits"

// EmptyCount returns the number of squares with no digit, regardless of
// piece markers.
func (b *Board) EmptyCount() int {
	n := 0
	for _, c := range b.cells {
		if c.Digit == 0 {
			n++
		}
	}
	return n
}

// IsFull reports whether every square holds a digit.
func (b *Board) IsFull() bool {
	for _, c := range b.cells {
		if c.Digit == 0 {
			return false
		}
	}
	return true
}

// IsValidSudoku reports whether the filled digits alone satisfy classical
// Sudoku uniqueness (row/column/box), ignoring piece rules entirely. Used
// to check the pieces=[] scenario (spec §8 end-to-end scenario 1) through
// IsCompleteSudokuSolution.
func (b *Board) IsValidSudoku() bool {
	var rowSeen, colSeen, boxSeen [9]uint16
	for sq := 0; sq < CellCount; sq++ {
		d := b.cells[sq].Digit
		if d == 0 {
			continue
		}
		row, col := RowCol(sq)
		box := BoxOf(sq)
		bit := uint16(1) << uint(d-1)
		if rowSeen[row]&bit != 0 || colSeen[col]&bit != 0 || boxSeen[box]&bit != 0 {
			return false
		}
		rowSeen[row] |= bit
		colSeen[col] |= bit
		boxSeen[box] |= bit
	}
	return true
}

// IsCompleteSudokuSolution reports whether the board is full and every
// row/column/box is a permutation of 1-9.
func (b *Board) IsCompleteSudokuSolution() bool {
	if !b.IsFull() {
		return false
	}
	if !b.IsValidSudoku() {
		return false
	}
	for u := 0; u < 9; u++ {
		if popcountUnit(Row(u), b) != 9 || popcountUnit(Col(u), b) != 9 || popcountUnit(Box(u), b) != 9 {
			return false
		}
	}
	return true
}

func popcountUnit(squares [9]int, b *Board) int {
	var mask uint16
	for _, sq := range squares {
		d := b.cells[sq].Digit
		if d != 0 {
			mask |= uint16(1) << uint(d-1)
		}
	}
	return bits.OnesCount16(mask)
}

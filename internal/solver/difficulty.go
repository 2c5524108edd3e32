package solver

import (
	"github.com/NaZe0320/chessudoku-puzzle/internal/board"
	"github.com/NaZe0320/chessudoku-puzzle/internal/constraints"
	"github.com/NaZe0320/chessudoku-puzzle/internal/pieces"
)

// Difficulty returns an advisory, purely structural measure of how
// constrained a puzzle's search tree is: the total number of branches
// explored by an exhaustive MRV walk. It is a supplement to spec.md's
// hole-count difficulty label (carver.DifficultyLabel), not a
// replacement — generalized from rybkr-sudoku's traceDifficulty, which
// this module adapts to also branch over piece-attack candidates via
// constraints.Index rather than Sudoku peers alone. Exposed purely as a
// number; this package attaches no ranking or ordering semantics to it,
// so it does not reintroduce the "puzzle ranking by human-difficulty
// estimation" Non-goal from spec §1.
func Difficulty(b *board.Board, ps []pieces.Piece) int {
	clone := b.Clone()
	idx := constraints.New(clone, ps)
	return traceDifficulty(clone, idx)
}

func traceDifficulty(b *board.Board, idx *constraints.Index) int {
	sq, mask := findMRVIn(idx)
	if sq == -1 {
		return 0
	}
	if mask == 0 {
		return 0
	}

	score := 0
	for _, d := range candidateOrder(mask, nil) {
		mark := idx.Mark()
		row, col := board.RowCol(sq)
		b.SetDigit(row, col, d)
		_, ok := idx.Place(sq, d)
		if ok {
			score += 1 + traceDifficulty(b, idx)
		}
		idx.Undo(mark)
		b.ClearDigit(row, col)
	}
	return score
}

func findMRVIn(idx *constraints.Index) (int, uint16) {
	c := &core{idx: idx}
	return c.findMRV()
}

// Package logical implements LogicalSolver (spec §4.E): a fixed
// repertoire of human solving techniques — constraint propagation, naked
// singles, hidden singles, naked pairs — applied to a fixed point. It
// answers "can a human solve this without guessing?" for the carver, and
// never mutates the caller's board: every call clones both board and
// candidate state internally and discards them on return.
package logical

import (
	"math/bits"

	"github.com/NaZe0320/chessudoku-puzzle/internal/board"
	"github.com/NaZe0320/chessudoku-puzzle/internal/constraints"
	"github.com/NaZe0320/chessudoku-puzzle/internal/pieces"
)

// maxIterations caps the propagation loop as a guard against accidental
// cycles (spec §4.E).
const maxIterations = 100

// IsSolvableLogically reports whether b can be fully solved using only
// the fixed technique repertoire below, without any guessing/backtracking.
// b and ps are never mutated; the solver works on a private clone.
func IsSolvableLogically(b *board.Board, ps []pieces.Piece) bool {
	clone := b.Clone()
	idx := constraints.New(clone, ps)

	for i := 0; i < maxIterations; i++ {
		progress := false

		if idx.Recompute(clone) {
			progress = true
		}
		if applyNakedSingles(clone, idx) {
			progress = true
		}
		if applyHiddenSingles(clone, idx) {
			progress = true
		}
		if applyNakedPairs(clone, idx) {
			progress = true
		}

		if idx.HasContradiction() {
			return false
		}
		if clone.IsFull() {
			return true
		}
		if !progress {
			return false
		}
	}
	return clone.IsFull()
}

// assign writes digit into sq on both the clone board and the index and
// strikes digit from every still-empty peer's candidate mask, so later
// techniques in the same pass see up-to-date candidates. No journaling —
// IsSolvableLogically discards its whole working state on return, so
// there is nothing to undo.
func assign(b *board.Board, idx *constraints.Index, sq, digit int) {
	row, col := board.RowCol(sq)
	b.SetDigit(row, col, digit)
	idx.MarkFilled(sq)
	bit := uint16(1) << uint(digit-1)
	for _, p := range idx.Peers(sq) {
		if !idx.IsFilled(p) {
			idx.SetCandidateMask(p, idx.CandidateMask(p)&^bit)
		}
	}
}

// applyNakedSingles fills every empty cell whose candidate mask has
// exactly one bit set (spec §4.E point 2).
func applyNakedSingles(b *board.Board, idx *constraints.Index) bool {
	changed := false
	for sq := 0; sq < board.CellCount; sq++ {
		if idx.IsFilled(sq) {
			continue
		}
		mask := idx.CandidateMask(sq)
		if bits.OnesCount16(mask) == 1 {
			d := bits.TrailingZeros16(mask) + 1
			assign(b, idx, sq, d)
			changed = true
		}
	}
	return changed
}

// applyHiddenSingles finds, for each digit and each house (row, column,
// box), a digit with exactly one possible cell in that house and assigns
// it there (spec §4.E point 3).
func applyHiddenSingles(b *board.Board, idx *constraints.Index) bool {
	changed := false
	for h := 0; h < 9; h++ {
		changed = hiddenSinglesInHouse(b, idx, board.Row(h)) || changed
		changed = hiddenSinglesInHouse(b, idx, board.Col(h)) || changed
		changed = hiddenSinglesInHouse(b, idx, board.Box(h)) || changed
	}
	return changed
}

func hiddenSinglesInHouse(b *board.Board, idx *constraints.Index, house [9]int) bool {
	changed := false
	var onlyCell [10]int
	var count [10]int
	for _, sq := range house {
		if idx.IsFilled(sq) {
			continue
		}
		mask := idx.CandidateMask(sq)
		for d := 1; d <= 9; d++ {
			if mask&(uint16(1)<<uint(d-1)) != 0 {
				count[d]++
				onlyCell[d] = sq
			}
		}
	}
	for d := 1; d <= 9; d++ {
		if count[d] == 1 {
			assign(b, idx, onlyCell[d], d)
			changed = true
		}
	}
	return changed
}

// applyNakedPairs scans each row and each column (boxes intentionally
// excluded — spec §4.E point 4 and §9's preserved Open Question) for two
// empty cells sharing an identical 2-candidate set, then strikes those two
// digits from every other empty cell in that house.
func applyNakedPairs(b *board.Board, idx *constraints.Index) bool {
	changed := false
	for h := 0; h < 9; h++ {
		changed = nakedPairsInHouse(idx, board.Row(h)) || changed
		changed = nakedPairsInHouse(idx, board.Col(h)) || changed
	}
	return changed
}

func nakedPairsInHouse(idx *constraints.Index, house [9]int) bool {
	changed := false
	for i := 0; i < len(house); i++ {
		a := house[i]
		if idx.IsFilled(a) || bits.OnesCount16(idx.CandidateMask(a)) != 2 {
			continue
		}
		for j := i + 1; j < len(house); j++ {
			c := house[j]
			if idx.IsFilled(c) || idx.CandidateMask(c) != idx.CandidateMask(a) {
				continue
			}
			mask := idx.CandidateMask(a)
			except := map[int]bool{a: true, c: true}
			for d := 1; d <= 9; d++ {
				if mask&(uint16(1)<<uint(d-1)) != 0 {
					if idx.EliminateFromHouse(house[:], except, d) {
						changed = true
					}
				}
			}
		}
	}
	return changed
}

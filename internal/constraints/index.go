package constraints

import (
	"fmt"
	"math/bits"

	"github.com/NaZe0320/chessudoku-puzzle/internal/board"
	"github.com/NaZe0320/chessudoku-puzzle/internal/pieces"
)

// fullMask has bits 0-8 set, representing digits 1-9 all still candidate.
const fullMask = uint16(0x1FF)

// ErrInvariantBreach marks a programmer error: an empty candidate set
// discovered outside the normal forward-checking failure path, or a
// placement that should have been legal turning out not to be. These must
// never occur on valid input (spec §7 kind 3) — callers that hit this
// have a bug, not bad data, so the package panics wrapping this error
// rather than returning it.
var ErrInvariantBreach = fmt.Errorf("constraints: internal invariant violated")

// entry is one journaled candidate-mask change: sq had bits removed (the
// bits that were cleared, so undo can OR them back in one step). wasFill
// marks the single entry per placement that also needs to flip the cell
// back to "not filled" on undo.
type entry struct {
	sq      int
	removed uint16
	wasFill bool
}

// Journal is an ordered log of candidate-set changes, sufficient to
// restore the Index's candidate state (not the caller's board) to its
// state at any earlier mark — the reversible "move journal" of spec §3, preferred
// over deep-copying candidate sets per §9's design notes.
type Journal struct {
	entries []entry
}

// Mark returns a checkpoint that a later Undo(mark) can roll back to.
func (j *Journal) Mark() int {
	return len(j.entries)
}

// Index is the per-instance composite Sudoku+piece candidate tracker
// (spec §4.C). It owns no board of its own; callers mutate a board.Board
// in lockstep via Place/Undo.
type Index struct {
	cand   [board.CellCount]uint16
	filled [board.CellCount]bool

	// peers[sq] is classicPeers[sq] extended with piece-rule links: if sq
	// is a piece's own square, its attacked squares are added; if sq is
	// attacked by some piece, that piece's own square is added. This
	// collapses the "symmetric piece rule" (spec §9) into a single
	// adjacency list walked by one Place implementation, rather than two
	// separate directional checks.
	peers [board.CellCount][]int

	journal Journal
}

// New builds an Index for the given board and piece placement. Cells that
// already hold a digit (as on partially-solved boards passed to the
// logical solver, where piece squares keep their digit) seed filled/cand
// accordingly. The supplied board is read, never mutated.
func New(b *board.Board, ps []pieces.Piece) *Index {
	idx := &Index{}
	for sq := 0; sq < board.CellCount; sq++ {
		idx.peers[sq] = append([]int(nil), classicPeers[sq]...)
	}
	for _, p := range ps {
		sq := p.Square()
		for _, atk := range pieces.Attacks(p.Kind, sq).Squares() {
			idx.peers[sq] = appendUnique(idx.peers[sq], atk)
			idx.peers[atk] = appendUnique(idx.peers[atk], sq)
		}
	}

	for sq := 0; sq < board.CellCount; sq++ {
		if d := b.GetAt(sq).Digit; d != 0 {
			idx.filled[sq] = true
			idx.cand[sq] = 0
		} else {
			idx.cand[sq] = fullMask
		}
	}
	// Strike candidates made illegal by any pre-placed digits (partial
	// boards only — a freshly-pieced, otherwise empty board is a no-op
	// here since no digits are filled yet).
	for sq := 0; sq < board.CellCount; sq++ {
		if !idx.filled[sq] {
			continue
		}
		d := b.GetAt(sq).Digit
		bit := uint16(1) << uint(d-1)
		for _, p := range idx.peers[sq] {
			if !idx.filled[p] {
				idx.cand[p] &^= bit
			}
		}
	}
	return idx
}

func appendUnique(list []int, v int) []int {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}

// CandidateMask returns the bitmask of digits (bit d-1 = digit d) still
// legal at sq. Zero for a filled square, or for an empty square with no
// remaining legal digit.
func (idx *Index) CandidateMask(sq int) uint16 {
	return idx.cand[sq]
}

// Candidates returns the legal digits at sq in ascending order.
func (idx *Index) Candidates(sq int) []int {
	mask := idx.cand[sq]
	out := make([]int, 0, bits.OnesCount16(mask))
	for d := 1; d <= 9; d++ {
		if mask&(uint16(1)<<uint(d-1)) != 0 {
			out = append(out, d)
		}
	}
	return out
}

// IsFilled reports whether sq currently holds a digit, as tracked by this
// Index (kept in lockstep with the board via Place/Undo).
func (idx *Index) IsFilled(sq int) bool {
	return idx.filled[sq]
}

// Mark returns a journal checkpoint; pair with Undo to roll back.
func (idx *Index) Mark() int {
	return idx.journal.Mark()
}

// Place fills sq with digit, forward-checking it against every peer (the
// classic Sudoku row/col/box neighbors plus any piece-attack links): the
// digit is struck from each still-empty peer's candidate set. Returns
// false if any peer's candidate set becomes empty as a result — a
// contradiction — in which case the caller MUST call Undo(mark) using the
// mark captured before Place to restore state (spec §4.D forward
// checking). Place does not stop at the first emptied set: it strikes
// digit from every peer and journals each removal, so Undo(mark) from
// before the call is always sufficient.
func (idx *Index) Place(sq, digit int) (mark int, ok bool) {
	mark = idx.Mark()
	if idx.filled[sq] {
		panic(fmt.Errorf("%w: Place called on already-filled square %d", ErrInvariantBreach, sq))
	}
	bit := uint16(1) << uint(digit-1)
	if idx.cand[sq]&bit == 0 {
		panic(fmt.Errorf("%w: digit %d is not a candidate at square %d", ErrInvariantBreach, digit, sq))
	}

	idx.journal.entries = append(idx.journal.entries, entry{sq: sq, removed: idx.cand[sq], wasFill: true})
	idx.cand[sq] = 0
	idx.filled[sq] = true

	ok = true
	for _, p := range idx.peers[sq] {
		if idx.filled[p] {
			continue
		}
		if idx.cand[p]&bit == 0 {
			continue
		}
		idx.journal.entries = append(idx.journal.entries, entry{sq: p, removed: bit})
		idx.cand[p] &^= bit
		if idx.cand[p] == 0 {
			ok = false
		}
	}
	return mark, ok
}

// Undo reverts every candidate-set change recorded since mark, restoring
// the Index to the state captured at that checkpoint (spec's round-trip
// invariant P2). The caller is responsible for also clearing the board
// cell(s) Place wrote digits into; Index tracks only candidate state.
func (idx *Index) Undo(mark int) {
	for len(idx.journal.entries) > mark {
		last := len(idx.journal.entries) - 1
		e := idx.journal.entries[last]
		idx.journal.entries = idx.journal.entries[:last]
		idx.cand[e.sq] |= e.removed
		if e.wasFill {
			idx.filled[e.sq] = false
		}
	}
}

// HasContradiction reports whether any still-empty square has no legal
// candidate remaining.
func (idx *Index) HasContradiction() bool {
	for sq := 0; sq < board.CellCount; sq++ {
		if !idx.filled[sq] && idx.cand[sq] == 0 {
			return true
		}
	}
	return false
}

// EliminateFromHouse clears digit from every still-empty square in
// squares other than except, without journaling — used by naked-pair
// elimination in the logical solver, which operates on a throwaway clone
// and never needs to undo (spec §4.E point 4).
func (idx *Index) EliminateFromHouse(squares []int, except map[int]bool, digit int) bool {
	bit := uint16(1) << uint(digit-1)
	changed := false
	for _, sq := range squares {
		if except[sq] || idx.filled[sq] {
			continue
		}
		if idx.cand[sq]&bit != 0 {
			idx.cand[sq] &^= bit
			changed = true
		}
	}
	return changed
}

// SetCandidateMask forcibly overwrites sq's candidate mask, without
// journaling — used by the logical solver to strike a just-assigned digit
// from the assigned square's peers.
func (idx *Index) SetCandidateMask(sq int, mask uint16) {
	idx.cand[sq] = mask
}

// MarkFilled records sq as filled with no remaining candidates, without
// journaling — used when the logical solver assigns a naked/hidden single
// directly (it discards its whole Index on return, so no undo is needed).
func (idx *Index) MarkFilled(sq int) {
	idx.filled[sq] = true
	idx.cand[sq] = 0
}

// Peers exposes the peer list of sq (classic Sudoku peers plus piece-rule
// links), read-only, for callers that walk a square's peers themselves
// (the logical solver's assign, and solver.Fill's check of pre-filled
// digits).
func (idx *Index) Peers(sq int) []int {
	return idx.peers[sq]
}

// Recompute rebuilds the candidate mask of every still-empty square
// directly from the digits currently on b (every digit held by one of the
// square's peers is struck from a full mask), rather than relying on
// incrementally-narrowed state — this is
// "constraint propagation" as spec §4.E literally describes it: a full
// re-derivation, not forward checking. Reports whether any square's mask
// changed.
func (idx *Index) Recompute(b *board.Board) bool {
	changed := false
	for sq := 0; sq < board.CellCount; sq++ {
		if idx.filled[sq] {
			continue
		}
		mask := fullMask
		for _, p := range idx.peers[sq] {
			if d := b.GetAt(p).Digit; d != 0 {
				mask &^= uint16(1) << uint(d-1)
			}
		}
		if mask != idx.cand[sq] {
			changed = true
		}
		idx.cand[sq] = mask
	}
	return changed
}

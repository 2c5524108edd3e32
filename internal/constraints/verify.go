package constraints

import "github.com/NaZe0320/chessudoku-puzzle/internal/board"

// VerifySolved reports whether a fully-filled board satisfies every
// Sudoku and piece constraint: no repeated digit in any row/column/box,
// and no piece sharing a digit with any square it attacks (spec P1).
// solver.Fill calls this as a post-fill sanity check, panicking wrapping
// ErrInvariantBreach if it ever fails (spec §7 kind 3) — a correct
// backtracker should never produce a board VerifySolved rejects, so a
// failure here means the forward-checking invariant itself was broken,
// not that the input was bad. It is O(cells * peers), not the
// incremental path used during search.
func VerifySolved(b *board.Board, idx *Index) bool {
	for sq := 0; sq < board.CellCount; sq++ {
		d := b.GetAt(sq).Digit
		if d == 0 {
			return false
		}
		for _, p := range idx.peers[sq] {
			if b.GetAt(p).Digit == d {
				return false
			}
		}
	}
	return true
}

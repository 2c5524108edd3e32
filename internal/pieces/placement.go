package pieces

import "errors"

// ErrInvalidPieceSet is returned when a requested piece placement violates
// the PiecesSet invariant (spec §3): two pieces on the same square, or two
// pieces that attack each other. The original Python implementation
// (random_placer.py) enforces exactly this pair of checks before accepting
// a placement, and it is preserved here unchanged: even a configuration
// that Sudoku's own row/column rule would make moot (two rooks sharing a
// row) is still rejected at placement time, not deferred to the solver.
var ErrInvalidPieceSet = errors.New("pieces: placement violates PiecesSet invariant")

// Validate reports ErrInvalidPieceSet if any two pieces in ps occupy the
// same square or attack each other, and nil otherwise.
func Validate(ps []Piece) error {
	for i := range ps {
		for j := i + 1; j < len(ps); j++ {
			a, b := ps[i], ps[j]
			if a.Square() == b.Square() {
				return ErrInvalidPieceSet
			}
			if Attacks(a.Kind, a.Square()).Has(b.Square()) || Attacks(b.Kind, b.Square()).Has(a.Square()) {
				return ErrInvalidPieceSet
			}
		}
	}
	return nil
}

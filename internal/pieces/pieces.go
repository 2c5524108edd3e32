// Package pieces implements chess-piece attack geometry for Chess-Sudoku:
// pure functions of a piece kind and origin square, with no notion of
// blockers, turn order, or legality beyond "this square lies on a line of
// attack". See board.go and the layout it imposes for the 9x9 coordinate
// system these squares index into.
package pieces

import "fmt"

// Kind identifies a chess piece type. Callers should always use one of the
// named constants below; Knight, the zero value, is itself a valid Kind.
type Kind uint8

const (
	Knight Kind = iota
	King
	Rook
	Bishop
	Queen
)

// numKinds is the count of Kind constants, used to size the attack table.
const numKinds = 5

func (k Kind) String() string {
	switch k {
	case Knight:
		return "knight"
	case King:
		return "king"
	case Rook:
		return "rook"
	case Bishop:
		return "bishop"
	case Queen:
		return "queen"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// MarshalJSON renders a Kind as its lowercase name, matching the puzzle
// descriptor's "type" field (§6 of the spec).
func (k Kind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// ParseKind maps a descriptor "type" string back to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "knight":
		return Knight, nil
	case "king":
		return King, nil
	case "rook":
		return Rook, nil
	case "bishop":
		return Bishop, nil
	case "queen":
		return Queen, nil
	default:
		return 0, fmt.Errorf("pieces: unknown piece type %q", s)
	}
}

// Piece is an immutable placement of one chess piece on the board. Once
// created at placement time a Piece is never moved (spec §3).
type Piece struct {
	Kind     Kind
	Row, Col int
}

// Square returns the piece's linear board index (row*9+col).
func (p Piece) Square() int {
	return p.Row*9 + p.Col
}

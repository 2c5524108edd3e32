package pieces

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindStringAndParseRoundTrip(t *testing.T) {
	for _, k := range []Kind{Knight, King, Rook, Bishop, Queen} {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
}

func TestParseKindRejectsUnknown(t *testing.T) {
	_, err := ParseKind("pawn")
	assert.Error(t, err)
}

func TestMarshalJSONLowercase(t *testing.T) {
	data, err := Rook.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"rook"`, string(data))
}

func TestKnightAttacksLShape(t *testing.T) {
	atk := AttacksFrom(Knight, 4, 4)
	assert.True(t, atk.Has(Piece{Row: 5, Col: 6}.Square()))
	assert.False(t, atk.Has(Piece{Row: 4, Col: 4}.Square())) // never attacks its own square
	assert.Equal(t, 8, atk.Count())                          // fully surrounded knight has 8 targets
}

func TestRookAttacksFullLine(t *testing.T) {
	atk := AttacksFrom(Rook, 0, 0)
	assert.Equal(t, 16, atk.Count()) // 8 on row + 8 on col
	assert.True(t, atk.Has(Piece{Row: 0, Col: 8}.Square()))
	assert.True(t, atk.Has(Piece{Row: 8, Col: 0}.Square()))
	assert.False(t, atk.Has(Piece{Row: 1, Col: 1}.Square()))
}

func TestBishopAttacksDiagonals(t *testing.T) {
	atk := AttacksFrom(Bishop, 4, 4)
	assert.True(t, atk.Has(Piece{Row: 0, Col: 0}.Square()))
	assert.True(t, atk.Has(Piece{Row: 8, Col: 8}.Square()))
	assert.False(t, atk.Has(Piece{Row: 4, Col: 0}.Square()))
}

func TestQueenIsRookUnionBishop(t *testing.T) {
	rook := AttacksFrom(Rook, 3, 3)
	bishop := AttacksFrom(Bishop, 3, 3)
	queen := AttacksFrom(Queen, 3, 3)
	assert.Equal(t, rook.Union(bishop), queen)
}

func TestKingAttacksAdjacentOnly(t *testing.T) {
	atk := AttacksFrom(King, 4, 4)
	assert.Equal(t, 8, atk.Count())
	assert.False(t, atk.Has(Piece{Row: 4, Col: 6}.Square()))
}

func TestValidateRejectsSameSquare(t *testing.T) {
	ps := []Piece{{Kind: Knight, Row: 0, Col: 0}, {Kind: King, Row: 0, Col: 0}}
	assert.ErrorIs(t, Validate(ps), ErrInvalidPieceSet)
}

func TestValidateRejectsMutualAttack(t *testing.T) {
	ps := []Piece{{Kind: Rook, Row: 0, Col: 0}, {Kind: Rook, Row: 0, Col: 4}}
	assert.ErrorIs(t, Validate(ps), ErrInvalidPieceSet)
}

func TestValidateAcceptsNonAttackingSet(t *testing.T) {
	ps := []Piece{{Kind: Knight, Row: 0, Col: 0}, {Kind: Bishop, Row: 4, Col: 5}}
	assert.NoError(t, Validate(ps))
}

func TestBitboardSquaresAscending(t *testing.T) {
	var b Bitboard
	b.Set(70)
	b.Set(3)
	b.Set(40)
	assert.Equal(t, []int{3, 40, 70}, b.Squares())
}

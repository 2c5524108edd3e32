package logical

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NaZe0320/chessudoku-puzzle/internal/board"
	"github.com/NaZe0320/chessudoku-puzzle/internal/pieces"
	"github.com/NaZe0320/chessudoku-puzzle/internal/solver"
)

func TestEmptyBoardIsNotLogicallySolvable(t *testing.T) {
	// No piece constraints and no filled cells give naked/hidden singles
	// nothing to latch onto; a solved board must come from guessing.
	b := board.New()
	assert.False(t, IsSolvableLogically(b, nil))
}

func TestSingleHoleIsLogicallySolvable(t *testing.T) {
	b := board.New()
	require.NoError(t, solver.Fill(b, nil, rand.New(rand.NewSource(5))))
	b.ClearDigit(0, 0)

	assert.True(t, IsSolvableLogically(b, nil)) // the one hole has exactly one legal digit: a naked single
}

func TestIsSolvableLogicallyDoesNotMutateInput(t *testing.T) {
	b := board.New()
	require.NoError(t, solver.Fill(b, nil, rand.New(rand.NewSource(6))))
	b.ClearDigit(0, 0)
	before := b.String()

	IsSolvableLogically(b, nil)
	assert.Equal(t, before, b.String())
}

func TestHiddenSingleFillsConstrainedHouse(t *testing.T) {
	b := board.New()
	ps := []pieces.Piece{{Kind: pieces.Rook, Row: 0, Col: 8}}
	require.NoError(t, b.PlacePieces(ps))
	require.NoError(t, solver.Fill(b, ps, rand.New(rand.NewSource(7))))

	// Clear row 0 except the rook's square (0,8): every one of the 8 holes
	// still has the other 8 cells of its column filled, so each hole is
	// determined regardless of piece rules.
	for col := 0; col < 8; col++ {
		b.ClearDigit(0, col)
	}

	assert.True(t, IsSolvableLogically(b, ps))
}

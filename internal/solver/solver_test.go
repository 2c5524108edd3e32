package solver

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NaZe0320/chessudoku-puzzle/internal/board"
	"github.com/NaZe0320/chessudoku-puzzle/internal/pieces"
)

func TestFillEmptyBoardNoPieces(t *testing.T) {
	b := board.New()
	err := Fill(b, nil, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.True(t, b.IsCompleteSudokuSolution())
}

func TestFillDeterministicWithNilRNG(t *testing.T) {
	b1 := board.New()
	require.NoError(t, Fill(b1, nil, nil))
	b2 := board.New()
	require.NoError(t, Fill(b2, nil, nil))
	assert.Equal(t, b1.String(), b2.String())
}

func TestFillRespectsPieceAttackConstraint(t *testing.T) {
	ps := []pieces.Piece{{Kind: pieces.Rook, Row: 0, Col: 0}}
	b := board.New()
	require.NoError(t, b.PlacePieces(ps))
	require.NoError(t, Fill(b, ps, rand.New(rand.NewSource(2))))

	rookDigit := b.Get(0, 0).Digit
	for _, sq := range pieces.Attacks(pieces.Rook, 0).Squares() {
		row, col := board.RowCol(sq)
		assert.NotEqual(t, rookDigit, b.Get(row, col).Digit)
	}
}

func TestFillUnsatisfiableLeavesBoardUntouched(t *testing.T) {
	b := board.New()
	b.SetDigit(0, 0, 1)
	b.SetDigit(0, 1, 1) // same row, same digit: immediate contradiction
	snapshot := b.String()

	err := Fill(b, nil, nil)
	assert.ErrorIs(t, err, ErrUnsatisfiable)
	assert.Equal(t, snapshot, b.String())
}

func TestCountSolutionsUniqueSolvedBoard(t *testing.T) {
	b := board.New()
	require.NoError(t, Fill(b, nil, rand.New(rand.NewSource(3))))
	assert.Equal(t, 1, CountSolutions(b, nil, 2))
}

func TestCountSolutionsEmptyBoardHitsCap(t *testing.T) {
	b := board.New()
	assert.Equal(t, 2, CountSolutions(b, nil, 2))
}

func TestCountSolutionsDoesNotMutateInput(t *testing.T) {
	b := board.New()
	b.SetDigit(0, 0, 5)
	before := b.String()
	CountSolutions(b, nil, 2)
	assert.Equal(t, before, b.String())
}

func TestDifficultyIsNonNegative(t *testing.T) {
	b := board.New()
	require.NoError(t, Fill(b, nil, rand.New(rand.NewSource(4))))
	assert.GreaterOrEqual(t, Difficulty(b, nil), 0)
}

package chessudoku

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 1: empty pieces must yield a valid classical Sudoku solution,
// and distinct seeds must yield distinct boards.
func TestGenerateCompleteEmptyPiecesIsValidSudoku(t *testing.T) {
	seen := make(map[string]bool)
	for seed := int64(1); seed <= 10; seed++ {
		b, err := GenerateComplete(nil, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		assert.True(t, b.IsCompleteSudokuSolution())
		seen[b.String()] = true
	}
	assert.Greater(t, len(seen), 1) // overwhelmingly likely to differ across 10 seeds
}

// Scenario 2: a single knight forbids its own digit on every knight-move square.
func TestGenerateCompleteSingleKnight(t *testing.T) {
	ps := []Piece{{Kind: Knight, Row: 4, Col: 4}}
	b, err := GenerateComplete(ps, rand.New(rand.NewSource(40)))
	require.NoError(t, err)

	d := b.Get(4, 4).Digit
	for _, off := range [8][2]int{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	} {
		r, c := 4+off[0], 4+off[1]
		if r < 0 || r > 8 || c < 0 || c > 8 {
			continue
		}
		assert.NotEqual(t, d, b.Get(r, c).Digit)
	}
}

// Scenario 3: a rook at (0,0) still holds its own digit, and no other cell
// in its row/column matches it (already guaranteed by Sudoku).
func TestGenerateCompleteRookAtOrigin(t *testing.T) {
	ps := []Piece{{Kind: Rook, Row: 0, Col: 0}}
	b, err := GenerateComplete(ps, rand.New(rand.NewSource(41)))
	require.NoError(t, err)

	d := b.Get(0, 0).Digit
	require.NotZero(t, d)
	for i := 1; i < 9; i++ {
		assert.NotEqual(t, d, b.Get(0, i).Digit)
		assert.NotEqual(t, d, b.Get(i, 0).Digit)
	}
}

// Scenario 4: carving to a 20-30 hole budget preserves piece squares and
// stays logically solvable.
func TestCarveToThirty(t *testing.T) {
	ps := []Piece{{Kind: Knight, Row: 2, Col: 2}, {Kind: Bishop, Row: 5, Col: 6}}
	answer, err := GenerateComplete(ps, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	result := Carve(answer, ps, 30, 20, rand.New(rand.NewSource(43)))
	assert.GreaterOrEqual(t, result.Carved, 20)
	assert.True(t, VerifyLogicallySolvable(result.Board, ps))

	for _, p := range ps {
		cell := result.Board.Get(p.Row, p.Col)
		assert.True(t, cell.HasPiece)
		assert.NotZero(t, cell.Digit)
	}
}

// Scenario 5: a 25-hole carved puzzle proves unique under CountSolutions.
func TestUniquenessProbe(t *testing.T) {
	answer, err := GenerateComplete(nil, rand.New(rand.NewSource(44)))
	require.NoError(t, err)

	result := Carve(answer, nil, 25, 20, rand.New(rand.NewSource(45)))
	require.GreaterOrEqual(t, result.Carved, 20)
	assert.Equal(t, 1, CountSolutions(result.Board, nil, 2))
}

// Scenario 6: nine rooks packed into row 0 over-constrain the board and
// generation must fail cleanly.
func TestGenerateCompleteNineRooksInRowIsUnsatisfiable(t *testing.T) {
	ps := make([]Piece, 0, 9)
	for col := 0; col < 9; col++ {
		ps = append(ps, Piece{Kind: Rook, Row: 0, Col: col})
	}
	_, err := GenerateComplete(ps, rand.New(rand.NewSource(46)))
	assert.Error(t, err)
}

func TestDescriptorRoundTripsThroughPublicAPI(t *testing.T) {
	ps := []Piece{{Kind: King, Row: 8, Col: 8}}
	answer, err := GenerateComplete(ps, rand.New(rand.NewSource(47)))
	require.NoError(t, err)
	result := Carve(answer, ps, 25, 20, rand.New(rand.NewSource(48)))

	d := NewDescriptor(result.Board, answer, ps)
	assert.Equal(t, 0, d.Board[8][8]) // piece square always reported as 0
	assert.NotZero(t, d.Answer[8][8])
	assert.Equal(t, "king", d.Pieces[0].Type)
}

func TestDifficultyLabelAndSearchDifficultyAreIndependent(t *testing.T) {
	answer, err := GenerateComplete(nil, rand.New(rand.NewSource(49)))
	require.NoError(t, err)
	assert.NotEmpty(t, DifficultyLabel(30))
	assert.GreaterOrEqual(t, SearchDifficulty(answer, nil), 0)
}

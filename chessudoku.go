// Package chessudoku is the public surface of the Chess-Sudoku
// constraint-satisfaction core (spec §6): generate a complete board with
// pieces pre-placed, carve it into a human-solvable puzzle, and verify
// solvability/uniqueness. Everything behind these four operations —
// board representation, piece geometry, the composite Sudoku+piece
// constraint index, the backtracking and logical solvers, and the
// carver — lives under internal/ and is not part of this module's public
// API, matching spec §1's scope: an HTTP upload client or a
// difficulty-label store needs only this package and pkg/puzzleio. The
// bundled CLI driver (cmd/chessudoku) also imports internal/pieces for
// piece-kind parsing.
package chessudoku

import (
	"math/rand"

	"github.com/NaZe0320/chessudoku-puzzle/internal/board"
	"github.com/NaZe0320/chessudoku-puzzle/internal/carver"
	"github.com/NaZe0320/chessudoku-puzzle/internal/logical"
	"github.com/NaZe0320/chessudoku-puzzle/internal/pieces"
	"github.com/NaZe0320/chessudoku-puzzle/internal/puzzle"
	"github.com/NaZe0320/chessudoku-puzzle/internal/solver"
)

// Re-exported piece vocabulary so callers never need to import internal/pieces.
type (
	PieceKind = pieces.Kind
	Piece     = pieces.Piece
)

const (
	Knight = pieces.Knight
	King   = pieces.King
	Rook   = pieces.Rook
	Bishop = pieces.Bishop
	Queen  = pieces.Queen
)

// ErrUnsatisfiable is returned by GenerateComplete when the requested
// piece configuration admits no complete solution (spec §7 kind 1).
var ErrUnsatisfiable = solver.ErrUnsatisfiable

// ErrInvalidPieceSet is returned when pieces overlap or mutually attack
// at placement time (spec §3, §4.B/§4.C).
var ErrInvalidPieceSet = pieces.ErrInvalidPieceSet

// Board is the opaque completed/partial board type threaded between the
// operations below and into Descriptor construction.
type Board = board.Board

// GenerateComplete places ps on a fresh board and fills every cell
// (including piece squares) with a backtracking search seeded by rng,
// returning the completed board (spec §4.D, §6 generate_complete). rng
// must be non-nil for reproducible, varied output; pass a fixed-seed
// *rand.Rand for deterministic generation.
func GenerateComplete(ps []Piece, rng *rand.Rand) (*Board, error) {
	b := board.New()
	if err := b.PlacePieces(ps); err != nil {
		return nil, err
	}
	if err := solver.Fill(b, ps, rng); err != nil {
		return nil, err
	}
	return b, nil
}

// Carve removes digits from answer one at a time, verifying after each
// removal that the residual puzzle remains solvable by LogicalSolver,
// until maxHoles cells are carved or the iteration budget is exhausted
// (spec §4.G, §6 carve). A shortfall (fewer than minHoles carved) is
// reported via Warning, not an error (spec §7 kind 2). rng supplies the
// random group/cell selection that diversifies carved puzzles; pass nil
// for deterministic selection, the same nil convention GenerateComplete
// follows.
func Carve(answer *Board, ps []Piece, maxHoles, minHoles int, rng *rand.Rand) carver.Result {
	return carver.New(answer, ps, maxHoles, minHoles, rng).Run()
}

// VerifyLogicallySolvable reports whether puz can be fully solved using
// only the fixed human-technique repertoire (spec §4.E, §6
// verify_logically_solvable).
func VerifyLogicallySolvable(puz *Board, ps []Piece) bool {
	return logical.IsSolvableLogically(puz, ps)
}

// CountSolutions counts solutions of puz up to cap (spec §4.F, §6
// count_solutions) — pass cap=2 to prove uniqueness via CountSolutions(...) == 1.
func CountSolutions(puz *Board, ps []Piece, cap int) int {
	return solver.CountSolutions(puz, ps, cap)
}

// Descriptor and NewDescriptor re-export the puzzle handoff shape (spec
// §6) so callers only ever import this one package.
type Descriptor = puzzle.Descriptor

// NewDescriptor builds the immutable puzzle descriptor handed to upload
// and storage collaborators from a carved puzzle board, its answer board,
// and the piece set placed on both.
func NewDescriptor(puzzleBoard, answerBoard *Board, ps []Piece) Descriptor {
	return puzzle.New(puzzleBoard, answerBoard, ps)
}

// DifficultyLabel derives the spec's advisory hole-count difficulty label
// (spec §4.G) from a carved puzzle's hole count.
func DifficultyLabel(holes int) string {
	return carver.DifficultyLabel(holes)
}

// SearchDifficulty returns the advisory search-tree-size difficulty score
// (spec §9 design notes, supplementing the hole-count label with a metric
// present in the original Python implementation's difficulty estimation).
func SearchDifficulty(b *Board, ps []Piece) int {
	return solver.Difficulty(b, ps)
}

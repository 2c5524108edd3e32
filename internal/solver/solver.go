// Package solver implements CompleteBoardSolver and UniquenessChecker
// (spec §4.D, §4.F): random-restart backtracking with MRV ordering and
// forward checking, sharing one recursive core between "fill every cell"
// and "count solutions up to a cap" by toggling deterministic-vs-random
// candidate order and a solution cap. Grounded on rybkr-sudoku's
// Solver.backtrack / FindMRVCell, generalized to also forward-check
// piece-attack links via constraints.Index instead of only Sudoku peers,
// and to use an explicit journal instead of board.Clone() per node.
package solver

import (
	"errors"
	"fmt"
	"math/bits"
	"math/rand"

	"github.com/NaZe0320/chessudoku-puzzle/internal/board"
	"github.com/NaZe0320/chessudoku-puzzle/internal/constraints"
	"github.com/NaZe0320/chessudoku-puzzle/internal/pieces"
)

// ErrUnsatisfiable is returned by Fill when the piece configuration (plus
// Sudoku's own rules) admits no complete solution (spec §7 kind 1).
var ErrUnsatisfiable = errors.New("solver: piece configuration admits no solution")

type core struct {
	b             *board.Board
	idx           *constraints.Index
	rng           *rand.Rand // nil => deterministic ascending candidate order
	solutionCap   int        // read only by countBacktrack, which stops once solutionCount >= solutionCap; Fill ignores it
	solutionCount int
}

// Fill completes every empty cell of b (including piece squares) with a
// digit, respecting both Sudoku and piece-attack constraints. rng
// supplies the random candidate order that diversifies generated boards
// (spec §4.D); pass nil for deterministic ascending order. On success b is
// mutated in place to the completed board, after constraints.VerifySolved
// confirms it is actually legal (panicking wrapping
// constraints.ErrInvariantBreach if not — spec §7 kind 3). On failure b is
// left exactly as it was passed in and ErrUnsatisfiable is returned — no
// partial board ever escapes a failed Fill (spec §7 kind 1).
func Fill(b *board.Board, ps []pieces.Piece, rng *rand.Rand) error {
	idx := constraints.New(b, ps)
	if idx.HasContradiction() {
		return ErrUnsatisfiable
	}
	for sq := 0; sq < board.CellCount; sq++ {
		d := b.GetAt(sq).Digit
		if d == 0 {
			continue
		}
		for _, p := range idx.Peers(sq) {
			if b.GetAt(p).Digit == d {
				return ErrUnsatisfiable // two pre-filled peers already share a digit
			}
		}
	}
	c := &core{b: b, idx: idx, rng: rng}
	if !c.backtrackFill() {
		return ErrUnsatisfiable
	}
	if !constraints.VerifySolved(b, idx) {
		panic(fmt.Errorf("solver: Fill produced an illegal board: %w", constraints.ErrInvariantBreach))
	}
	return nil
}

// backtrackFill performs MRV-ordered backtracking with forward checking
// only (no naked/hidden-single propagation — that technique repertoire
// belongs to the logical package's distinct, human-oriented solver, per
// spec §4.D/§4.E's separation of components).
func (c *core) backtrackFill() bool {
	sq, mask := c.findMRV()
	if sq == -1 {
		return true // no empty cell remains
	}
	if mask == 0 {
		return false
	}

	for _, d := range candidateOrder(mask, c.rng) {
		mark := c.idx.Mark()
		ok := c.placeAndCheck(sq, d)
		if ok && c.backtrackFill() {
			return true
		}
		c.undo(sq, mark)
	}
	return false
}

// placeAndCheck writes d into sq on both the board and the candidate
// index, forward-checking peers; callers must call undo(sq, mark) if it
// (or the recursion above it) fails.
func (c *core) placeAndCheck(sq, d int) bool {
	row, col := board.RowCol(sq)
	c.b.SetDigit(row, col, d)
	_, ok := c.idx.Place(sq, d)
	return ok
}

func (c *core) undo(sq, mark int) {
	c.idx.Undo(mark)
	row, col := board.RowCol(sq)
	c.b.ClearDigit(row, col)
}

// findMRV returns the empty square with the fewest candidates (ties
// broken by row-major scan order) and its candidate mask, or (-1, 0) if
// every square is filled.
func (c *core) findMRV() (sq int, mask uint16) {
	best := -1
	bestCount := 10
	var bestMask uint16
	for s := 0; s < board.CellCount; s++ {
		if c.idx.IsFilled(s) {
			continue
		}
		m := c.idx.CandidateMask(s)
		n := bits.OnesCount16(m)
		if n < bestCount {
			best, bestCount, bestMask = s, n, m
			if n <= 1 {
				break
			}
		}
	}
	return best, bestMask
}

// candidateOrder extracts the set bits of mask as digits, in ascending
// order if rng is nil, else shuffled.
func candidateOrder(mask uint16, rng *rand.Rand) []int {
	out := make([]int, 0, bits.OnesCount16(mask))
	for d := 1; d <= 9; d++ {
		if mask&(uint16(1)<<uint(d-1)) != 0 {
			out = append(out, d)
		}
	}
	if rng != nil {
		rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	}
	return out
}

// CountSolutions runs the same backtracking search deterministically
// (ascending candidate order) and stops as soon as cap solutions have
// been found, returning the exact count capped at cap (spec §4.F). b is
// left unmodified; the search runs on an internal clone.
func CountSolutions(b *board.Board, ps []pieces.Piece, cap int) int {
	clone := b.Clone()
	idx := constraints.New(clone, ps)
	if idx.HasContradiction() {
		return 0
	}
	c := &core{b: clone, idx: idx, rng: nil, solutionCap: cap}
	c.countBacktrack()
	return c.solutionCount
}

// countBacktrack returns true once the caller should stop searching
// (solutionCount has reached solutionCap).
func (c *core) countBacktrack() bool {
	sq, mask := c.findMRV()
	if sq == -1 {
		c.solutionCount++
		return c.solutionCount >= c.solutionCap
	}
	if mask == 0 {
		return false
	}
	for _, d := range candidateOrder(mask, nil) {
		mark := c.idx.Mark()
		ok := c.placeAndCheck(sq, d)
		stop := false
		if ok {
			stop = c.countBacktrack()
		}
		c.undo(sq, mark)
		if stop {
			return true
		}
	}
	return false
}

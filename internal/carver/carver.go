// Package carver implements PuzzleCarver (spec §4.G): it removes digits
// from a solved Chess-Sudoku board one at a time, using weighted
// candidate-group selection biased toward cells that are easy to carve
// safely, rejecting any removal that would make the residual puzzle
// unsolvable by logical.IsSolvableLogically. Grounded on rybkr-sudoku's
// generator.removeCells (clone, try a cell, verify, restore-on-failure)
// but replacing its uniform-random cell choice with the spec's weighted
// completed-line / unconstrained / regular grouping.
package carver

import (
	"math/rand"

	"github.com/NaZe0320/chessudoku-puzzle/internal/board"
	"github.com/NaZe0320/chessudoku-puzzle/internal/logical"
	"github.com/NaZe0320/chessudoku-puzzle/internal/pieces"
)

// state is the carver's lifecycle (spec §4.G: "Initialized -> Carving ->
// Done", monotonic, non-resumable).
type state int

const (
	stateInitialized state = iota
	stateCarving
	stateDone
)

// group classifies a carvable cell for weighted selection.
type group int

const (
	groupCompletedLine group = iota
	groupUnconstrained
	groupRegular
	numGroups
)

// groupWeights mirrors spec §4.G step 2b exactly: completed-line is
// favored most, then unconstrained, then regular.
var groupWeights = [numGroups]float64{
	groupCompletedLine: 0.6,
	groupUnconstrained: 0.3,
	groupRegular:       0.1,
}

// Result is what Carve returns: the carved puzzle board, how many cells
// were actually removed, and an advisory warning (spec §7 kind 2: a carve
// shortfall is not an error) set when fewer than minHoles were carved.
type Result struct {
	Board   *board.Board
	Carved  int
	Warning string
}

// Carver drives one carve() run. It is single-use: construct with New,
// call Run once, and discard — matching the spec's explicit non-resumable
// state machine.
type Carver struct {
	answer   *board.Board
	pieces   []pieces.Piece
	maxHoles int
	minHoles int
	rng      *rand.Rand

	puzzle      *board.Board
	carved      map[int]bool
	pieceSquare map[int]bool
	state       state
}

// New constructs a Carver for one carve run from answer (the complete
// solved board) and pieces. maxHoles/minHoles bound how many cells should
// be removed (spec §4.G, §6). rng supplies the random group and cell
// selection that diversifies carved puzzles; pass nil for deterministic
// selection (always the highest-priority non-empty group, always its
// first cell), matching solver.Fill's nil convention.
func New(answer *board.Board, ps []pieces.Piece, maxHoles, minHoles int, rng *rand.Rand) *Carver {
	pieceSquare := make(map[int]bool, len(ps))
	for _, p := range ps {
		pieceSquare[p.Square()] = true
	}
	return &Carver{
		answer:      answer,
		pieces:      ps,
		maxHoles:    maxHoles,
		minHoles:    minHoles,
		rng:         rng,
		puzzle:      answer.Clone(),
		carved:      make(map[int]bool),
		pieceSquare: pieceSquare,
		state:       stateInitialized,
	}
}

// Run executes the carve procedure to completion and returns the result.
// Calling Run more than once panics — the state machine is non-resumable
// by design (spec §4.G).
func (c *Carver) Run() Result {
	c.advance(stateInitialized, stateCarving)

	maxAttempts := 3 * c.maxHoles
	for attempt := 0; attempt < maxAttempts && len(c.carved) < c.maxHoles; attempt++ {
		sq, ok := c.pickCandidate()
		if !ok {
			break // every group empty: nothing left worth trying
		}
		c.tryCarve(sq)
	}

	c.advance(stateCarving, stateDone)

	result := Result{Board: c.puzzle, Carved: len(c.carved)}
	if len(c.carved) < c.minHoles {
		result.Warning = "carve: reached iteration budget with fewer than min_holes carved"
	}
	return result
}

func (c *Carver) advance(from, to state) {
	if c.state != from {
		panic("carver: state machine advanced out of order")
	}
	c.state = to
}

// intn returns a random index in [0, n) from c.rng, or 0 if rng is nil —
// nil means "deterministic first choice", not "crash" (mirrors
// solver.candidateOrder's nil-means-ascending-order convention).
func (c *Carver) intn(n int) int {
	if c.rng == nil {
		return 0
	}
	return c.rng.Intn(n)
}

// float64 returns a random float in [0, 1) from c.rng, or 0 if rng is nil
// — 0 always falls in the first weight bucket, so a nil rng deterministically
// always draws the highest-priority group.
func (c *Carver) float64() float64 {
	if c.rng == nil {
		return 0
	}
	return c.rng.Float64()
}

// tryCarve tentatively clears sq, probes logical solvability, and commits
// or restores. The probe is side-effect-free on failure (spec §7): the
// digit is restored exactly and sq is left out of carved.
func (c *Carver) tryCarve(sq int) {
	row, col := board.RowCol(sq)
	digit := c.puzzle.Get(row, col).Digit

	c.puzzle.ClearDigit(row, col)
	if logical.IsSolvableLogically(c.puzzle, c.pieces) {
		c.carved[sq] = true
		return
	}
	c.puzzle.SetDigit(row, col, digit)
}

// pickCandidate classifies every still-carvable cell into the three
// groups, picks a group by weighted random selection (falling back to the
// next non-empty group in priority order if the chosen one is empty), and
// returns a uniform-random cell from it (spec §4.G steps 2a-2c).
func (c *Carver) pickCandidate() (int, bool) {
	groups := c.classify()

	order := c.weightedGroupOrder()
	for _, g := range order {
		cells := groups[g]
		if len(cells) == 0 {
			continue
		}
		return cells[c.intn(len(cells))], true
	}
	return 0, false
}

// classify partitions every carvable cell (holds a digit, not a piece
// square, not already carved) into completed-line / unconstrained /
// regular groups.
func (c *Carver) classify() [numGroups][]int {
	var groups [numGroups][]int
	for sq := 0; sq < board.CellCount; sq++ {
		if c.pieceSquare[sq] || c.carved[sq] {
			continue
		}
		if c.puzzle.GetAt(sq).Digit == 0 {
			continue
		}
		switch {
		case c.isInCompletedLine(sq):
			groups[groupCompletedLine] = append(groups[groupCompletedLine], sq)
		case !c.isAttacked(sq):
			groups[groupUnconstrained] = append(groups[groupUnconstrained], sq)
		default:
			groups[groupRegular] = append(groups[groupRegular], sq)
		}
	}
	return groups
}

// isInCompletedLine reports whether sq belongs to a row, column, or box
// that currently holds all 9 distinct digits.
func (c *Carver) isInCompletedLine(sq int) bool {
	row, col := board.RowCol(sq)
	rowSqs, colSqs, boxSqs := board.Row(row), board.Col(col), board.Box(board.BoxOf(sq))
	return houseComplete(c.puzzle, rowSqs[:]) ||
		houseComplete(c.puzzle, colSqs[:]) ||
		houseComplete(c.puzzle, boxSqs[:])
}

func houseComplete(b *board.Board, house []int) bool {
	var seen uint16
	for _, s := range house {
		d := b.GetAt(s).Digit
		if d == 0 {
			return false
		}
		seen |= uint16(1) << uint(d-1)
	}
	return seen == 0x1FF
}

// isAttacked reports whether any placed piece geometrically attacks sq.
func (c *Carver) isAttacked(sq int) bool {
	for _, p := range c.pieces {
		if pieces.Attacks(p.Kind, p.Square()).Has(sq) {
			return true
		}
	}
	return false
}

// weightedGroupOrder draws one group from groupWeights and returns the
// full priority fallback order starting from it: the drawn group first,
// then the remaining groups in their fixed completed-line / unconstrained
// / regular priority (spec §4.G step 2b).
func (c *Carver) weightedGroupOrder() [numGroups]group {
	fixed := [numGroups]group{groupCompletedLine, groupUnconstrained, groupRegular}

	r := c.float64()
	var chosen group
	acc := 0.0
	for _, g := range fixed {
		acc += groupWeights[g]
		if r < acc {
			chosen = g
			break
		}
		chosen = g // float rounding guard: last group wins if none matched
	}

	order := [numGroups]group{chosen}
	i := 1
	for _, g := range fixed {
		if g != chosen {
			order[i] = g
			i++
		}
	}
	return order
}

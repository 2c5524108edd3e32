// Package puzzle defines the immutable puzzle descriptor (spec §6): the
// sole handoff shape the constraint-satisfaction core exposes to external
// collaborators such as an HTTP upload client or a difficulty-label
// store. Nothing in this module depends on how that descriptor is
// transported or persisted — see pkg/puzzleio for the one concrete JSON
// encoding this repository ships.
package puzzle

import (
	"github.com/NaZe0320/chessudoku-puzzle/internal/board"
	"github.com/NaZe0320/chessudoku-puzzle/internal/pieces"
)

// PieceReference is one piece entry in a Descriptor.
type PieceReference struct {
	Type     string `json:"type"`
	Position [2]int `json:"position"` // [row, col]
}

// Descriptor is the immutable handoff value produced once carving
// completes. Board cells under a piece and carved-away cells are encoded
// as 0 (spec §6: "0 denotes empty OR piece square"); every other Board
// cell carries its digit. Answer always carries the complete 1-9 solution.
type Descriptor struct {
	Board  [9][9]int        `json:"board"`
	Pieces []PieceReference `json:"pieces"`
	Answer [9][9]int        `json:"answer"`
}

// New builds a Descriptor from a carved puzzle board, the complete answer
// board, and the piece set that was placed on both.
func New(puzzleBoard, answerBoard *board.Board, ps []pieces.Piece) Descriptor {
	var d Descriptor
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			pc := puzzleBoard.Get(row, col)
			if pc.HasPiece {
				d.Board[row][col] = 0
			} else {
				d.Board[row][col] = pc.Digit
			}
			d.Answer[row][col] = answerBoard.Get(row, col).Digit
		}
	}
	d.Pieces = make([]PieceReference, len(ps))
	for i, p := range ps {
		d.Pieces[i] = PieceReference{Type: p.Kind.String(), Position: [2]int{p.Row, p.Col}}
	}
	return d
}

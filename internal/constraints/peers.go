// Package constraints implements the composite Sudoku+chess-piece legality
// rule (spec §4.C): a reversible candidate index with an explicit undo
// journal, generalizing the classic Norvig peers/eliminate/assign
// technique (grounded on Program-repo-go-sudoku's Sudoku.eliminate) to a
// per-instance peer graph that also links each piece's own square to every
// square it attacks.
package constraints

import "github.com/NaZe0320/chessudoku-puzzle/internal/board"

// classicPeers[sq] lists the other squares sharing sq's row, column, or
// box — the fixed part of the peer graph, identical for every board
// instance and computed once at package init.
var classicPeers [board.CellCount][]int

func init() {
	for sq := 0; sq < board.CellCount; sq++ {
		seen := map[int]bool{sq: true}
		add := func(squares [9]int) {
			for _, p := range squares {
				if !seen[p] {
					seen[p] = true
					classicPeers[sq] = append(classicPeers[sq], p)
				}
			}
		}
		row, col := board.RowCol(sq)
		add(board.Row(row))
		add(board.Col(col))
		add(board.Box(board.BoxOf(sq)))
	}
}

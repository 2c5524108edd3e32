// Command chessudoku is the external CLI driver for the Chess-Sudoku
// core: it parses a requested piece set, generates a complete board,
// carves it into a puzzle, and prints the resulting descriptor as JSON.
// It is deliberately a thin wrapper — argument parsing and presentation
// only — around the chessudoku package, pkg/puzzleio for the JSON output,
// and internal/pieces for parsing piece kinds; every
// rule about solvability, carving, and constraint propagation lives in
// chessudoku and its internal packages, never here. Grounded on
// rybkr-sudoku's cmd/gen.go Cobra wiring (flags, RunE, a rootCmd
// registered via init), adapted from an HTML-puzzle-book generator to a
// single-puzzle JSON emitter.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/NaZe0320/chessudoku-puzzle/internal/pieces"
	"github.com/NaZe0320/chessudoku-puzzle/pkg/puzzleio"

	chessudoku "github.com/NaZe0320/chessudoku-puzzle"
)

var rootCmd = &cobra.Command{
	Use:   "chessudoku",
	Short: "Generate Chess-Sudoku puzzles",
}

var (
	pieceFlags []string
	maxHoles   int
	minHoles   int
	seed       int64
)

const (
	defaultMaxHoles = 40
	defaultMinHoles = 22
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate one Chess-Sudoku puzzle and print it as JSON",
		Long: `Generate a complete Chess-Sudoku board for the given pieces, carve it
into a human-solvable puzzle, and print the resulting descriptor as JSON.

Examples:
  chessudoku gen --piece knight:0,0
  chessudoku gen --piece rook:4,4 --piece bishop:1,6 --max-holes 45
  chessudoku gen --piece king:8,8 --seed 42`,
		RunE: runGen,
	}

	genCmd.Flags().StringArrayVar(&pieceFlags, "piece", nil,
		`piece placement as "kind:row,col" (e.g. "knight:0,0"); repeatable`)
	genCmd.Flags().IntVar(&maxHoles, "max-holes", defaultMaxHoles, "maximum cells to carve out")
	genCmd.Flags().IntVar(&minHoles, "min-holes", defaultMinHoles, "minimum cells required for a non-shortfall carve")
	genCmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 picks a random seed)")

	rootCmd.AddCommand(genCmd)
}

// parsePiece parses one "kind:row,col" flag value into a pieces.Piece.
func parsePiece(spec string) (pieces.Piece, error) {
	kindPart, posPart, ok := strings.Cut(spec, ":")
	if !ok {
		return pieces.Piece{}, fmt.Errorf("invalid --piece %q: want kind:row,col", spec)
	}
	kind, err := pieces.ParseKind(strings.ToLower(strings.TrimSpace(kindPart)))
	if err != nil {
		return pieces.Piece{}, fmt.Errorf("invalid --piece %q: %w", spec, err)
	}
	rowStr, colStr, ok := strings.Cut(posPart, ",")
	if !ok {
		return pieces.Piece{}, fmt.Errorf("invalid --piece %q: want kind:row,col", spec)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return pieces.Piece{}, fmt.Errorf("invalid --piece %q: bad row: %w", spec, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return pieces.Piece{}, fmt.Errorf("invalid --piece %q: bad col: %w", spec, err)
	}
	if row < 0 || row > 8 || col < 0 || col > 8 {
		return pieces.Piece{}, fmt.Errorf("invalid --piece %q: row/col must be 0-8", spec)
	}
	return pieces.Piece{Kind: kind, Row: row, Col: col}, nil
}

func runGen(cmd *cobra.Command, args []string) error {
	ps := make([]pieces.Piece, 0, len(pieceFlags))
	for _, spec := range pieceFlags {
		p, err := parsePiece(spec)
		if err != nil {
			return err
		}
		ps = append(ps, p)
	}

	s := seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	answer, err := chessudoku.GenerateComplete(ps, rng)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	result := chessudoku.Carve(answer, ps, maxHoles, minHoles, rng)
	if result.Warning != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s (carved %d)\n", result.Warning, result.Carved)
	}

	label := chessudoku.DifficultyLabel(result.Carved)
	fmt.Fprintf(cmd.ErrOrStderr(), "carved %d cells (%s)\n", result.Carved, label)

	descriptor := chessudoku.NewDescriptor(result.Board, answer, ps)
	return puzzleio.Encode(cmd.OutOrStdout(), descriptor)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

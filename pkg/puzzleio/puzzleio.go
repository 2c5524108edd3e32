// Package puzzleio provides the JSON encoding of a puzzle descriptor —
// the module's one concession to an upload/storage collaborator existing
// at all (spec §1, §6). It is deliberately thin: no HTTP client, no retry
// logic, no server-side schema — those remain external, per spec.md's
// Non-goals. Modeled on the JSON-tagged value types in
// ThoDHa-sudoku/api/internal/core/models.go.
package puzzleio

import (
	"encoding/json"
	"io"

	"github.com/NaZe0320/chessudoku-puzzle/internal/puzzle"
)

// Encode writes d to w as JSON.
func Encode(w io.Writer, d puzzle.Descriptor) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// Decode reads a puzzle.Descriptor from r's JSON contents.
func Decode(r io.Reader) (puzzle.Descriptor, error) {
	var d puzzle.Descriptor
	err := json.NewDecoder(r).Decode(&d)
	return d, err
}

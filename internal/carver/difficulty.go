package carver

// DifficultyLabel maps a carved hole count to the spec's advisory,
// derived difficulty label (spec §4.G: "≤25 easy, ≤40 medium, ≤50 hard,
// else expert"). This label is not wired to any solver call — it is a
// pure function of hole count, matching the core's external-difficulty-
// table Non-goal: the label itself lives in the core, but any ranking or
// curated table of labels-to-puzzles is the external collaborator's job.
func DifficultyLabel(holes int) string {
	switch {
	case holes <= 25:
		return "easy"
	case holes <= 40:
		return "medium"
	case holes <= 50:
		return "hard"
	default:
		return "expert"
	}
}

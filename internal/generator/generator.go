package generator

import (
	"github.com/renitt0/Sudoku-Solver/internal/domain"
	"github.com/renitt0/Sudoku-Solver/internal/ports"
)

// Unique creates puzzles with exactly one solution, using the provided
// solver for uniqueness checks while carving clues.
type Unique struct {
	Solver ports.Solver
}

func New(s ports.Solver) *Unique { return &Unique{Solver: s} }

// targetGivens maps a difficulty to the clue count carving aims for.
func targetGivens(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return 40
	case domain.Medium:
		return 34
	case domain.Hard:
		return 28
	default:
		return 24 // Expert
	}
}

package solver

import (
	"errors"
	"testing"

	"github.com/renitt0/Sudoku-Solver/internal/domain"
)

func TestUniqueClassic(t *testing.T) {
	b := &domain.Board{Values: sample}
	unique, _, err := NewBacktrackSolver().Unique(testCtx(t), b)
	if err != nil {
		t.Fatalf("Unique failed: %v", err)
	}
	if !unique {
		t.Fatal("classic puzzle should have exactly one solution")
	}
	if b.Values != sample {
		t.Fatal("Unique mutated the board")
	}
}

func TestUniqueEmptyGrid(t *testing.T) {
	unique, _, err := NewBacktrackSolver().Unique(testCtx(t), &domain.Board{})
	if err != nil {
		t.Fatalf("Unique failed: %v", err)
	}
	if unique {
		t.Fatal("the empty grid has many completions")
	}
}

func TestUniqueContradictoryGivens(t *testing.T) {
	grid := sample
	grid[0][8] = 5
	_, _, err := NewBacktrackSolver().Unique(testCtx(t), &domain.Board{Values: grid})
	if !errors.Is(err, ErrInvalidPuzzle) {
		t.Fatalf("want ErrInvalidPuzzle, got %v", err)
	}
}

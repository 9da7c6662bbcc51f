package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/renitt0/Sudoku-Solver/internal/domain"
	"github.com/renitt0/Sudoku-Solver/internal/solver"
	"github.com/renitt0/Sudoku-Solver/internal/validator"
)

func TestUnconfiguredDependencies(t *testing.T) {
	u := &Service{}
	ctx := context.Background()
	b := &domain.Board{}
	if _, err := u.Solve(ctx, b); !errors.Is(err, errNotConfigured) {
		t.Fatalf("Solve: want errNotConfigured, got %v", err)
	}
	if _, _, err := u.Validate(ctx, b); !errors.Is(err, errNotConfigured) {
		t.Fatalf("Validate: want errNotConfigured, got %v", err)
	}
	if _, _, err := u.Generate(ctx, 1, domain.Easy); !errors.Is(err, errNotConfigured) {
		t.Fatalf("Generate: want errNotConfigured, got %v", err)
	}
	if _, _, err := u.Hint(ctx, b, domain.StrategySingles); !errors.Is(err, errNotConfigured) {
		t.Fatalf("Hint: want errNotConfigured, got %v", err)
	}
}

func TestServiceSolveAndValidate(t *testing.T) {
	u := NewService(solver.NewBacktrackSolver(), nil, validator.New(), nil)
	b := &domain.Board{}
	if _, err := u.Solve(context.Background(), b); err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	ok, conflicts, err := u.Validate(context.Background(), b)
	if err != nil || !ok {
		t.Fatalf("solved board failed validation: err=%v conflicts=%v", err, conflicts)
	}
	if b.EmptyCount() != 0 {
		t.Fatalf("solved board still has %d empty cells", b.EmptyCount())
	}
}

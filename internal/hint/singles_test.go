package hint

import (
	"context"
	"testing"

	"github.com/renitt0/Sudoku-Solver/internal/domain"
)

func TestHintFindsNakedSingle(t *testing.T) {
	b := &domain.Board{}
	for c := 0; c < 8; c++ {
		b.Values[0][c] = uint8(c + 1)
	}
	// (0,8) can only hold 9.
	h, found, err := NewSingles().Hint(context.Background(), b, domain.StrategySingles)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if !found {
		t.Fatal("expected a naked single")
	}
	want := domain.CellCoord{Row: 0, Col: 8}
	if len(h.Cells) != 1 || h.Cells[0] != want {
		t.Fatalf("hint cells = %v, want [%v]", h.Cells, want)
	}
	if h.Strategy != domain.StrategySingles {
		t.Fatalf("hint strategy = %v", h.Strategy)
	}
}

func TestHintNoneOnOpenBoard(t *testing.T) {
	_, found, err := NewSingles().Hint(context.Background(), &domain.Board{}, domain.StrategyAdvanced)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if found {
		t.Fatal("empty board has no forced cell")
	}
}

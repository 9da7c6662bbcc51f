package generator

import (
	"context"
	"testing"
	"time"

	"github.com/renitt0/Sudoku-Solver/internal/domain"
	"github.com/renitt0/Sudoku-Solver/internal/solver"
)

func TestGenerateAllDifficulties(t *testing.T) {
	s := solver.NewBacktrackSolver()
	g := New(s)

	cases := []struct {
		name string
		diff domain.Difficulty
	}{
		{"easy", domain.Easy},
		{"medium", domain.Medium},
		{"hard", domain.Hard},
		{"expert", domain.Expert},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			p, st, err := g.Generate(ctx, 12345, tc.diff)
			if err != nil {
				t.Fatalf("Generate(%s) failed: %v", tc.name, err)
			}
			givens := 81 - p.Board.EmptyCount()
			if givens < 17 || givens > 81 {
				t.Fatalf("implausible givens count for %s: %d", tc.name, givens)
			}
			// Every given must carry the fixed mark and vice versa.
			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					if (p.Board.Values[r][c] != 0) != p.Board.Fixed[r][c] {
						t.Fatalf("fixed mask out of sync at r=%d c=%d", r, c)
					}
				}
			}
			unique, _, err := s.Unique(ctx, &p.Board)
			if err != nil {
				t.Fatalf("Unique failed: %v", err)
			}
			if !unique {
				t.Fatalf("puzzle for %s is not unique (nodes=%d)", tc.name, st.Nodes)
			}
		})
	}
}

func TestGenerateSeedDeterminism(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	g := New(solver.NewBacktrackSolver())
	a, _, err := g.Generate(ctx, 42, domain.Medium)
	if err != nil {
		t.Fatalf("first Generate failed: %v", err)
	}
	b, _, err := g.Generate(ctx, 42, domain.Medium)
	if err != nil {
		t.Fatalf("second Generate failed: %v", err)
	}
	if a.Board.Values != b.Board.Values {
		t.Fatal("same seed produced different puzzles")
	}
}

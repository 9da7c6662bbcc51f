package solver

import (
	"context"
	"time"

	"github.com/renitt0/Sudoku-Solver/internal/domain"
	"github.com/renitt0/Sudoku-Solver/internal/ports"
)

// Solve completes b in place via depth-first backtracking. The givens are
// pre-checked first; a contradictory grid fails with ErrInvalidPuzzle before
// any search. On success b holds a full valid assignment. On any failure,
// including cancellation and budget exhaustion, every trial placement has
// been undone and b equals its pre-call state. Callers that need the
// original afterwards should pass b.Clone().
func (s *BacktrackSolver) Solve(ctx context.Context, b *domain.Board) (ports.Stats, error) {
	start := time.Now()
	if !CheckGivens(&b.Values) {
		return ports.Stats{Duration: time.Since(start)}, ErrInvalidPuzzle
	}

	nodes := 0
	var stop error
	var dfs func() bool
	dfs = func() bool {
		if err := ctx.Err(); err != nil {
			stop = err
			return false
		}
		if s.MaxNodes > 0 && nodes >= s.MaxNodes {
			stop = ErrNodeBudget
			return false
		}
		r, c, ok := nextEmpty(&b.Values)
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if !CanPlace(&b.Values, r, c, v) {
				continue
			}
			b.Values[r][c] = v
			if dfs() {
				return true
			}
			b.Values[r][c] = 0
			if stop != nil {
				return false
			}
		}
		return false
	}

	st := func() ports.Stats { return ports.Stats{Nodes: nodes, Duration: time.Since(start)} }
	if !dfs() {
		if stop != nil {
			return st(), stop
		}
		return st(), ErrNoSolution
	}
	return st(), nil
}

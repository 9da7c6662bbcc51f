package solver

import (
	"context"
	"time"

	"github.com/renitt0/Sudoku-Solver/internal/domain"
	"github.com/renitt0/Sudoku-Solver/internal/ports"
)

// Unique counts completions up to 2 on a private copy of the grid and
// reports whether exactly one exists. b is never modified.
func (s *BacktrackSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	if !CheckGivens(&grid) {
		return false, ports.Stats{Duration: time.Since(start)}, ErrInvalidPuzzle
	}

	nodes := 0
	count := 0
	var dfs func() bool // true = stop early
	dfs = func() bool {
		if ctx.Err() != nil || count >= 2 {
			return true
		}
		r, c, ok := nextEmpty(&grid)
		if !ok {
			count++
			return count >= 2
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if CanPlace(&grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	_ = dfs()
	return count == 1, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
}

package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/renitt0/Sudoku-Solver/internal/domain"
	"github.com/renitt0/Sudoku-Solver/internal/ports"
	"github.com/renitt0/Sudoku-Solver/internal/solver"
)

// Generate fills a complete random solution from the seed, then carves
// clues out in seeded-shuffled order, keeping each removal only if the
// puzzle still has a unique solution. Carving stops at the difficulty's
// target givens count or when ctx expires; with an unexpired ctx the same
// seed always yields the same puzzle.
func (g *Unique) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	var full [9][9]uint8
	if !fillRandom(ctx, rng, &full) {
		return nil, ports.Stats{Duration: time.Since(start)}, ctx.Err()
	}

	puz := full
	var fixed [9][9]bool
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			fixed[r][c] = true
		}
	}

	order := rng.Perm(81)
	target := targetGivens(diff)
	givens := 81
	nodes := 0

	for _, pos := range order {
		if givens <= target || ctx.Err() != nil {
			break
		}
		r, c := pos/9, pos%9
		old := puz[r][c]
		puz[r][c] = 0
		fixed[r][c] = false
		unique, st, err := g.Solver.Unique(ctx, &domain.Board{Values: puz})
		nodes += st.Nodes
		if err != nil || !unique {
			puz[r][c] = old
			fixed[r][c] = true
			continue
		}
		givens--
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Board:      domain.Board{Values: puz, Fixed: fixed},
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fillRandom completes an empty grid into a full valid solution, trying
// digits in a per-cell shuffled order drawn from rng.
func fillRandom(ctx context.Context, rng *rand.Rand, grid *[9][9]uint8) bool {
	var nums [9]uint8
	for i := range nums {
		nums[i] = uint8(i + 1)
	}
	var dfs func(r, c int) bool
	dfs = func(r, c int) bool {
		if ctx.Err() != nil {
			return false
		}
		if r == 9 {
			return true
		}
		nr, nc := r, c+1
		if nc == 9 {
			nr, nc = r+1, 0
		}
		rng.Shuffle(9, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		for _, v := range nums {
			if solver.CanPlace(grid, r, c, v) {
				grid[r][c] = v
				if dfs(nr, nc) {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	return dfs(0, 0)
}

package solver

import "errors"

var (
	// ErrInvalidPuzzle means the givens already violate a row, column, or
	// box constraint before any search.
	ErrInvalidPuzzle = errors.New("puzzle givens violate sudoku constraints")
	// ErrNoSolution means the search space was exhausted.
	ErrNoSolution = errors.New("puzzle has no solution")
	// ErrNodeBudget means the configured node budget ran out mid-search.
	ErrNodeBudget = errors.New("solver node budget exhausted")
)

// BacktrackSolver is a recursive depth-first solver with in-place undo.
// Cells are filled first-empty in row-major order, digits tried ascending,
// which makes the solution it finds deterministic for a given input.
type BacktrackSolver struct {
	// MaxNodes, when positive, aborts the search with ErrNodeBudget after
	// that many nodes have been visited.
	MaxNodes int
}

func NewBacktrackSolver() *BacktrackSolver { return &BacktrackSolver{} }

// CanPlace reports whether v can go at (r,c) without duplicating a value
// already present in its row, its column, or its 3x3 box. The cell itself
// is expected to be empty.
func CanPlace(g *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := r-r%3, c-c%3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// nextEmpty returns the first empty cell in row-major order.
func nextEmpty(g *[9][9]uint8) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

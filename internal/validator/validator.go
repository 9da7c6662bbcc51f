package validator

import (
	"context"

	"github.com/renitt0/Sudoku-Solver/internal/domain"
)

// Conflicts is a bitmask validator that enumerates every cell whose value
// duplicates an earlier one in its row, column, or box. It never mutates
// the board.
type Conflicts struct{}

func New() *Conflicts { return &Conflicts{} }

func (v *Conflicts) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	for i := 0; i < 9; i++ {
		conf = appendDuplicates(conf, b, rowCells(i))
		conf = appendDuplicates(conf, b, colCells(i))
		conf = appendDuplicates(conf, b, boxCells(i))
	}
	return len(conf) == 0, conf, nil
}

// appendDuplicates scans one region and appends each cell that repeats a
// value already seen in it. Empty cells are skipped.
func appendDuplicates(conf []domain.CellCoord, b *domain.Board, cells [9]domain.CellCoord) []domain.CellCoord {
	seen := 0
	for _, cc := range cells {
		v := b.Values[cc.Row][cc.Col]
		if v == 0 {
			continue
		}
		bit := 1 << v
		if seen&bit != 0 {
			conf = append(conf, cc)
		}
		seen |= bit
	}
	return conf
}

func rowCells(r int) (out [9]domain.CellCoord) {
	for c := range out {
		out[c] = domain.CellCoord{Row: r, Col: c}
	}
	return
}

func colCells(c int) (out [9]domain.CellCoord) {
	for r := range out {
		out[r] = domain.CellCoord{Row: r, Col: c}
	}
	return
}

func boxCells(i int) (out [9]domain.CellCoord) {
	br, bc := (i/3)*3, (i%3)*3
	for j := range out {
		out[j] = domain.CellCoord{Row: br + j/3, Col: bc + j%3}
	}
	return
}

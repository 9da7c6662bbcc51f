package solver

import (
	"context"
	"errors"
	"time"

	"github.com/renitt0/Sudoku-Solver/internal/domain"
	"github.com/renitt0/Sudoku-Solver/internal/ports"
)

// DLXSolver implements Algorithm X / Dancing Links for Sudoku.
// Exact-cover mapping: 324 columns (constraints), 729 rows (r,c,v candidates).
// Columns: 0..80   -> cell (r,c)
//          81..161 -> row r has number v
//          162..242-> col c has number v
//          243..323-> box b has number v, b = (r/3)*3 + (c/3)
//
// Note the min-size column heuristic makes DLX pick a different (still
// valid) completion than BacktrackSolver on under-constrained grids.
type DLXSolver struct{}

func NewDLXSolver() *DLXSolver { return &DLXSolver{} }

const (
	nSize     = 9
	nCells    = nSize * nSize // 81
	nCols     = 4 * nCells    // 324
	nRows     = nCells * nSize
	colCell   = 0
	colRowNum = 81
	colColNum = 162
	colBoxNum = 243
)

// node/column structures (classic dancing links)
type dlxNode struct {
	left, right, up, down *dlxNode
	col                   *dlxColumn
	rowIdx                int // 0..728 identifies (r,c,v)
}

type dlxColumn struct {
	dlxNode
	size   int
	name   int
	active bool // whether this constraint column is currently uncovered
}

type dlx struct {
	cols      [nCols]*dlxColumn
	rowHead   [nRows]*dlxNode
	sol       [nRows]*dlxNode
	solLen    int
	nodes     int
	activeCnt int
}

func newDLX() *dlx {
	d := &dlx{}
	for i := 0; i < nCols; i++ {
		c := &dlxColumn{name: i, active: true}
		c.up = &c.dlxNode
		c.down = &c.dlxNode
		d.cols[i] = c
	}
	d.activeCnt = nCols

	for r := 0; r < nSize; r++ {
		for c := 0; c < nSize; c++ {
			for v := 1; v <= nSize; v++ {
				row := rowIndex(r, c, v)
				var first, prev *dlxNode
				for _, colID := range rowColumns(r, c, v) {
					col := d.cols[colID]
					n := &dlxNode{col: col, rowIdx: row}
					// vertical insert at the bottom of the column
					n.down = &col.dlxNode
					n.up = col.dlxNode.up
					col.dlxNode.up.down = n
					col.dlxNode.up = n
					col.size++
					// horizontal ring of the row's 4 nodes
					if first == nil {
						first = n
						n.left = n
						n.right = n
					} else {
						n.left = prev
						n.right = prev.right
						prev.right.left = n
						prev.right = n
					}
					prev = n
				}
				d.rowHead[row] = first
			}
		}
	}
	return d
}

func rowIndex(r, c, v int) int {
	return (r*nSize+c)*nSize + (v - 1)
}

func rowColumns(r, c, v int) [4]int {
	cell := colCell + r*nSize + c
	rowN := colRowNum + r*nSize + (v - 1)
	colN := colColNum + c*nSize + (v - 1)
	box := (r/3)*3 + c/3
	boxN := colBoxNum + box*nSize + (v - 1)
	return [4]int{cell, rowN, colN, boxN}
}

func (d *dlx) cover(col *dlxColumn) {
	if col.active {
		col.active = false
		d.activeCnt--
	}
	for i := col.down; i != &col.dlxNode; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
		}
	}
}

func (d *dlx) uncover(col *dlxColumn) {
	for i := col.up; i != &col.dlxNode; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
		}
	}
	if !col.active {
		col.active = true
		d.activeCnt++
	}
}

// chooseColumn picks the active column with the smallest size.
func (d *dlx) chooseColumn() *dlxColumn {
	var best *dlxColumn
	for _, c := range d.cols {
		if c.active {
			if best == nil || c.size < best.size {
				best = c
				if best.size == 0 {
					break
				}
			}
		}
	}
	return best
}

func (d *dlx) search(ctx context.Context, k, wantCount int, found *int) bool {
	select {
	case <-ctx.Done():
		return true // stop search
	default:
	}
	if d.activeCnt == 0 {
		d.solLen = k
		(*found)++
		return *found >= wantCount
	}

	c := d.chooseColumn()
	if c == nil || c.size == 0 {
		return false
	}
	d.cover(c)
	for r := c.down; r != &c.dlxNode; r = r.down {
		d.nodes++
		d.sol[k] = r
		for j := r.right; j != r; j = j.right {
			if j.col.active {
				d.cover(j.col)
			}
		}
		if d.search(ctx, k+1, wantCount, found) {
			for j := r.left; j != r; j = j.left {
				d.uncover(j.col)
			}
			d.uncover(c)
			return true
		}
		for j := r.left; j != r; j = j.left {
			d.uncover(j.col)
		}
	}
	d.uncover(c)
	return false
}

// applyGiven selects the (r,c,v) row for a given by covering its columns.
// Givens must already have passed CheckGivens; covering the columns of two
// conflicting givens would corrupt the matrix.
func (d *dlx) applyGiven(r, c, v int) error {
	head := d.rowHead[rowIndex(r, c, v)]
	if head == nil {
		return errors.New("invalid row mapping")
	}
	for j := head; ; j = j.right {
		d.cover(j.col)
		if j.right == head {
			break
		}
	}
	return nil
}

func (d *dlx) applyBoard(b *domain.Board) error {
	if !CheckGivens(&b.Values) {
		return ErrInvalidPuzzle
	}
	for r := 0; r < nSize; r++ {
		for c := 0; c < nSize; c++ {
			if v := int(b.Values[r][c]); v > 0 {
				if err := d.applyGiven(r, c, v); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Solve completes b in place. The chosen rows only cover cells that were
// empty, so the givens stay where they were; on failure b is untouched.
func (s *DLXSolver) Solve(ctx context.Context, b *domain.Board) (ports.Stats, error) {
	start := time.Now()
	d := newDLX()
	if err := d.applyBoard(b); err != nil {
		return ports.Stats{Duration: time.Since(start)}, err
	}
	found := 0
	_ = d.search(ctx, 0, 1, &found)
	st := ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}
	if found < 1 {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		return st, ErrNoSolution
	}
	for i := 0; i < d.solLen; i++ {
		r, c, v := decodeRow(d.sol[i].rowIdx)
		b.Values[r][c] = uint8(v)
	}
	return st, nil
}

func decodeRow(row int) (r, c, v int) {
	cell := row / nSize
	v = row%nSize + 1
	r = cell / nSize
	c = cell % nSize
	return
}

// Unique reports whether exactly one completion exists, stopping after two.
// b is never modified.
func (s *DLXSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	d := newDLX()
	if err := d.applyBoard(b); err != nil {
		return false, ports.Stats{Duration: time.Since(start)}, err
	}
	found := 0
	_ = d.search(ctx, 0, 2, &found)
	return found == 1, ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}, ctx.Err()
}

package domain

// Clone returns an independent copy of the board. Solvers mutate their
// argument in place, so callers that need the original afterwards solve a
// clone instead.
func (b *Board) Clone() *Board {
	out := *b
	return &out
}

// Equal reports cell-for-cell equality of values and fixed masks.
func (b *Board) Equal(o *Board) bool {
	return b.Values == o.Values && b.Fixed == o.Fixed
}

// EmptyCount returns the number of unfilled cells.
func (b *Board) EmptyCount() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				n++
			}
		}
	}
	return n
}

package solver

// CheckGivens verifies that the filled cells of a grid are mutually
// consistent. Each given is cleared, tested against the rest of the grid,
// and restored before the next cell is examined, so the grid is unchanged on
// return no matter the outcome. Scanning stops at the first conflict found
// in row-major order.
//
// A given checked against an unmodified grid would always collide with
// itself, which is why the clear/check/restore dance is required.
func CheckGivens(g *[9][9]uint8) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := g[r][c]
			if v == 0 {
				continue
			}
			g[r][c] = 0
			ok := CanPlace(g, r, c, v)
			g[r][c] = v
			if !ok {
				return false
			}
		}
	}
	return true
}

package domain

import (
	"fmt"
	"strings"
)

// ParseBoard reads a board from nine lines of nine cells. Digits 1-9 are
// givens (marked fixed), '0' or '.' is an empty cell; spaces and blank lines
// are ignored.
func ParseBoard(s string) (*Board, error) {
	b := &Board{}
	row := 0
	for ln, line := range strings.Split(s, "\n") {
		line = strings.Map(func(r rune) rune {
			if r == ' ' || r == '\t' || r == '\r' {
				return -1
			}
			return r
		}, line)
		if line == "" {
			continue
		}
		if row == 9 {
			return nil, fmt.Errorf("line %d: more than 9 rows", ln+1)
		}
		if len(line) != 9 {
			return nil, fmt.Errorf("line %d: want 9 cells, got %d", ln+1, len(line))
		}
		for col, ch := range line {
			switch {
			case ch == '.' || ch == '0':
				// empty
			case ch >= '1' && ch <= '9':
				b.Values[row][col] = uint8(ch - '0')
				b.Fixed[row][col] = true
			default:
				return nil, fmt.Errorf("line %d: bad cell %q", ln+1, ch)
			}
		}
		row++
	}
	if row != 9 {
		return nil, fmt.Errorf("want 9 rows, got %d", row)
	}
	return b, nil
}

// String renders the board in the same nine-line format ParseBoard reads,
// with '.' for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := b.Values[r][c]
			if v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

package solver

import "testing"

func TestCheckGivens(t *testing.T) {
	rowDup := sample
	rowDup[0][8] = 5
	colDup := sample
	colDup[8][0] = 5
	boxDup := sample
	boxDup[2][0] = 3 // 3 already sits at (0,1): same box, different row and column
	fullBad := sampleSolved
	fullBad[0][0] = sampleSolved[0][1] // duplicate inside row 0, no zeros

	cases := []struct {
		name string
		grid [9][9]uint8
		want bool
	}{
		{"classic givens", sample, true},
		{"empty grid", [9][9]uint8{}, true},
		{"complete solution", sampleSolved, true},
		{"row duplicate", rowDup, false},
		{"column duplicate", colDup, false},
		{"box duplicate", boxDup, false},
		{"complete grid with one violation", fullBad, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			grid := tc.grid
			if got := CheckGivens(&grid); got != tc.want {
				t.Fatalf("CheckGivens = %v, want %v", got, tc.want)
			}
			if grid != tc.grid {
				t.Fatal("CheckGivens mutated the grid")
			}
		})
	}
}

func TestCanPlace(t *testing.T) {
	grid := sample
	if !CanPlace(&grid, 0, 2, 4) {
		t.Fatal("4 should be placeable at (0,2)")
	}
	if CanPlace(&grid, 0, 2, 5) {
		t.Fatal("5 duplicates the row, must be rejected")
	}
	if CanPlace(&grid, 0, 2, 6) {
		t.Fatal("6 duplicates the box, must be rejected")
	}
}

package puzzle

import (
	"strings"
	"testing"
)

func TestBoardStringBeforeSolving(t *testing.T) {
	// formatting an unsolved board reproduces the input: givens
	// are determined, everything else is still '0'
	b, err := New(puzzleOne)
	if err != nil {
		t.Fatalf("New errored: %v", err)
	}
	if got := b.String(); got != puzzleOne {
		t.Errorf("String() = %q, want %q", got, puzzleOne)
	}
}

func TestCellString(t *testing.T) {
	cases := []struct {
		cell Cell
		want string
	}{
		{FullCell(), "1 2 3 \n4 5 6 \n7 8 9 \n"},
		{FixedCell(5), "· · · \n· 5 · \n· · · \n"},
		{FixedCell(1), "1 · · \n· · · \n· · · \n"},
	}
	for _, c := range cases {
		if got := c.cell.String(); got != c.want {
			t.Errorf("Cell(%b).String() = %q, want %q", c.cell, got, c.want)
		}
	}
}

func TestCellStringPartial(t *testing.T) {
	c := FullCell()
	for _, v := range []int{2, 5, 6, 9} {
		if _, err := c.Eliminate(v); err != nil {
			t.Fatalf("Eliminate(%d) errored: %v", v, err)
		}
	}
	want := "1 · 3 \n4 · · \n7 8 · \n"
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestGrid(t *testing.T) {
	b, err := New(puzzleOne)
	if err != nil {
		t.Fatalf("New errored: %v", err)
	}
	grid := b.Grid()
	lines := strings.Split(strings.TrimRight(grid, "\n"), "\n")
	// header, three separators, nine rows
	if len(lines) != 13 {
		t.Fatalf("Grid() has %d lines, want 13:\n%s", len(lines), grid)
	}
	if !strings.HasPrefix(lines[1], " +---") {
		t.Errorf("Grid() separator line = %q", lines[1])
	}
	// row a starts with the first three givens: 3, blank, 1
	if !strings.HasPrefix(lines[2], "a| 3  _  1 |") {
		t.Errorf("Grid() first row = %q", lines[2])
	}
	if strings.Count(grid, "_") != 81-len(puzzleOneGivenIndices) {
		t.Errorf("Grid() shows %d blanks, want %d", strings.Count(grid, "_"), 81-len(puzzleOneGivenIndices))
	}
}

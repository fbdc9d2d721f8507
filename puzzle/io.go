package puzzle

import (
	"fmt"
	"strings"
)

/*

Print forms of boards and cells

*/

// String renders the board in the same 81-character row-major
// form New accepts: the determined value of each cell, or '0'
// where the cell still has several candidates.  Formatting a
// fully solved board and re-parsing the result reproduces it.
func (b *Board) String() string {
	out := make([]byte, GridSize)
	for i, c := range b.cells {
		if v, ok := c.Determined(); ok {
			out[i] = byte('0' + v)
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}

// String renders a cell's remaining candidates as a 3x3 grid,
// with a dot for each eliminated value.  Purely for debugging.
func (c Cell) String() string {
	var sb strings.Builder
	for v := 1; v <= 9; v++ {
		if c&(1<<uint(v)) != 0 {
			sb.WriteByte(byte('0' + v))
		} else {
			sb.WriteRune('·')
		}
		sb.WriteByte(' ')
		if v%TileLength == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Grid gives a pretty-printed view of the board with tile
// separators, for humans.  Determined cells show their value,
// undetermined cells show an underscore.
func (b *Board) Grid() string {
	var sb strings.Builder
	// column header
	sb.WriteString(" ")
	for i := 0; i < SideLength; i++ {
		if i%TileLength == 0 {
			sb.WriteString("|")
		} else {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%2d ", i+1)
	}
	sb.WriteString("\n")
	// rows, with a separator line above each band of tiles
	for ri, rowhdr := 0, 'a'; ri < SideLength; ri, rowhdr = ri+1, rowhdr+1 {
		if ri%TileLength == 0 {
			sb.WriteString(" ")
			for i := 0; i < SideLength; i++ {
				sb.WriteString("+---")
			}
			sb.WriteString("\n")
		}
		sb.WriteRune(rowhdr)
		for ci := 0; ci < SideLength; ci++ {
			if ci%TileLength == 0 {
				sb.WriteString("|")
			} else {
				sb.WriteString(" ")
			}
			c := b.cells[ri*SideLength+ci]
			if v, ok := c.Determined(); ok {
				fmt.Fprintf(&sb, " %d ", v)
			} else {
				sb.WriteString(" _ ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

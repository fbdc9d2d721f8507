package puzzle

import (
	"math/bits"
)

/*

Cells

*/

// A Cell is the set of candidate values (1 through 9) that one
// grid position can still take, packed into a bit mask.  Bit v is
// set when v is still a candidate.  A valid Cell always has at
// least one candidate; the elimination contract below is what
// keeps the set from ever going empty.
type Cell uint16

// fullMask has bits 1 through 9 set.
const fullMask Cell = 0x3fe

// FullCell makes a cell with all nine candidates, for a grid
// position with no given value.
func FullCell() Cell {
	return fullMask
}

// FixedCell makes a cell collapsed to the single given value.
// Doesn't do error checking.
func FixedCell(value int) Cell {
	return 1 << uint(value)
}

// Entropy returns the number of remaining candidates.  It ranges
// from 1 (determined) to 9 (unconstrained) and is used only as a
// progress metric, never for branching.
func (c Cell) Entropy() int {
	return bits.OnesCount16(uint16(c))
}

// Determined returns the cell's single candidate when the cell
// has collapsed to one value, or false when it hasn't.
func (c Cell) Determined() (int, bool) {
	if c.Entropy() != 1 {
		return 0, false
	}
	return bits.TrailingZeros16(uint16(c)), true
}

// Eliminate removes a value from the cell's candidate set,
// reporting whether the set changed.
//
// A determined cell refuses to give up its value: eliminating the
// value it is fixed to is a conflict, carrying the fixed value so
// the caller can attach the cell's index.  Eliminating any other
// value from a determined cell is a harmless no-op.  For
// multi-candidate cells the value is simply removed if present.
// Elimination requests only ever carry a peer's determined value,
// and each peer determines exactly one value, so repeated calls
// cannot drain a multi-candidate cell to empty; that invariant is
// structural, not checked here.
func (c *Cell) Eliminate(value int) (bool, error) {
	mask := Cell(1) << uint(value)
	if c.Entropy() == 1 {
		if *c == mask {
			return false, cellConflictError(value)
		}
		return false, nil
	}
	if *c&mask == 0 {
		return false, nil
	}
	*c &^= mask
	return true, nil
}

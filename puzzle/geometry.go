package puzzle

/*

Grid geometry

The standard 9x9 grid is fixed: every cell has exactly 20 peers,
the other cells in its row, column, and 3x3 tile.  The peer
relation is derived once from grid arithmetic, checked against its
invariants, and then shared read-only for the life of the process.

*/

import (
	"sync"
)

// Geometry constants for the standard grid.
const (
	SideLength = 9
	TileLength = 3
	GridSize   = SideLength * SideLength
	PeerCount  = 20
)

// A PeerTable maps each cell index to the indices of its peers,
// each row sorted ascending.  Tables are immutable after
// construction and safe to share between any number of boards
// without synchronization.
type PeerTable struct {
	peers [GridSize][]int
}

// The standard table is computed at most once and shared by every
// board, the same way the geometry mappings are memoized in other
// sudoku codebases: it is logically constant data.
var (
	stdTable *PeerTable
	stdErr   error
	stdOnce  sync.Once
)

// StandardPeers returns the shared peer table for the standard
// grid, building and validating it on first use.  A validation
// failure is reported as an error rather than a panic, and is
// sticky: every later call reports the same failure.
func StandardPeers() (*PeerTable, error) {
	stdOnce.Do(func() {
		t := computePeerTable()
		if err := t.validate(); err != nil {
			stdErr = err
			return
		}
		stdTable = t
	})
	return stdTable, stdErr
}

// computePeerTable derives the peer relation from row, column,
// and tile arithmetic.  Scanning candidate indices in ascending
// order yields sorted, duplicate-free rows without a separate
// normalization pass.
func computePeerTable() *PeerTable {
	t := &PeerTable{}
	for i := 0; i < GridSize; i++ {
		row, col := i/SideLength, i%SideLength
		tileRow, tileCol := row/TileLength, col/TileLength
		ps := make([]int, 0, PeerCount)
		for j := 0; j < GridSize; j++ {
			if j == i {
				continue
			}
			jrow, jcol := j/SideLength, j%SideLength
			sameTile := jrow/TileLength == tileRow && jcol/TileLength == tileCol
			if jrow == row || jcol == col || sameTile {
				ps = append(ps, j)
			}
		}
		t.peers[i] = ps
	}
	return t
}

// validate enforces the table invariants: every row has exactly
// PeerCount distinct in-range entries in ascending order, and the
// relation is symmetric.  A malformed table would silently
// produce wrong solutions, so construction fails fast instead.
func (t *PeerTable) validate() error {
	for i := 0; i < GridSize; i++ {
		row := t.peers[i]
		if len(row) != PeerCount {
			return peerCountError(i, len(row))
		}
		prev := -1
		for _, p := range row {
			if p < 0 || p >= GridSize {
				return rangeError(IndexAttribute, p, 0, GridSize-1)
			}
			if p <= prev {
				return tableOrderError(i, p)
			}
			prev = p
			if !contains(t.peers[p], i) {
				return asymmetryError(i, p)
			}
		}
	}
	return nil
}

func contains(ps []int, v int) bool {
	for _, p := range ps {
		if p == v {
			return true
		}
	}
	return false
}

// PeersOf returns the peer indices of a cell, sorted ascending.
// The returned slice is shared, read-only table data; callers
// must not modify it.  Out-of-range indices are an error.
func (t *PeerTable) PeersOf(index int) ([]int, error) {
	if index < 0 || index >= GridSize {
		return nil, rangeError(IndexAttribute, index, 0, GridSize-1)
	}
	return t.peers[index], nil
}

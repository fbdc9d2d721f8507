// Package puzzle solves 9x9 Sudoku puzzles by iterative
// constraint propagation.
//
// A Board holds 81 Cells, each a set of candidate values, plus a
// shared read-only table of each cell's 20 peers (the other cells
// in its row, column, and 3x3 tile).  Solving repeatedly takes
// cells that have collapsed to a single candidate and eliminates
// that value from their peers, until every cell is determined, an
// elimination contradicts an already-determined peer, or a pass
// makes no progress.
//
// The engine never guesses: it is complete only for puzzles that
// reduce fully under singleton elimination.  Well-formed puzzles
// are designed to, but puzzles needing deeper inference stall and
// are reported as such rather than looped on.
package puzzle

import (
	"github.com/rs/zerolog"
)

/*

Boards

*/

// A Board is an ordered sequence of 81 cells in row-major order
// (index = row*9 + column) plus the shared peer table.  Boards
// are mutated in place by Solve and are not safe for concurrent
// use; the peer table is, and is never owned per-board.
type Board struct {
	cells  []Cell
	peers  *PeerTable
	passes int
	logger zerolog.Logger
}

// New creates a Board from an 81-character puzzle string of
// digits '0' through '9', row-major, where '0' marks an unknown
// cell.  A string of the wrong length or with a non-digit
// character is a construction-time error, as is a peer table
// that fails validation; no solving has happened when these are
// reported.
func New(givens string) (*Board, error) {
	if len(givens) != GridSize {
		return nil, inputLengthError(len(givens))
	}
	peers, err := StandardPeers()
	if err != nil {
		return nil, err
	}
	cells := make([]Cell, GridSize)
	for i := 0; i < GridSize; i++ {
		ch := givens[i]
		if ch < '0' || ch > '9' {
			return nil, inputCharError(rune(ch), i)
		}
		if ch == '0' {
			cells[i] = FullCell()
		} else {
			cells[i] = FixedCell(int(ch - '0'))
		}
	}
	return &Board{cells: cells, peers: peers, logger: zerolog.Nop()}, nil
}

// SetLogger attaches a logger for per-pass progress reporting.
// The default logger discards everything.
func (b *Board) SetLogger(logger zerolog.Logger) {
	b.logger = logger
}

// Cells returns a copy of the board's cells in index order.
func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// TotalEntropy sums the entropy of every cell.  It is 729 for an
// empty board, 81 for a completed one, and in between it tracks
// solving progress.
func (b *Board) TotalEntropy() int {
	total := 0
	for _, c := range b.cells {
		total += c.Entropy()
	}
	return total
}

// Passes returns the number of propagation passes the last Solve
// ran.  A pass cut short by a conflict counts; the empty scan
// that detects a stall does not.
func (b *Board) Passes() int {
	return b.passes
}

// pendingSingletons collects the indices of determined cells that
// have not yet been applied, in ascending order.  The ordering is
// observable in which conflict gets reported when several could
// surface in one pass, so it is deliberate, not incidental.
func (b *Board) pendingSingletons(applied []bool) []int {
	var out []int
	for i, c := range b.cells {
		if applied != nil && applied[i] {
			continue
		}
		if c.Entropy() == 1 {
			out = append(out, i)
		}
	}
	return out
}

// Solve runs singleton propagation to a fixpoint.
//
// Each pass applies every determined-but-unapplied cell in
// ascending index order, eliminating its value from each of its
// peers.  The first elimination that contradicts a determined
// peer aborts the solve with a conflict error naming that peer's
// index and fixed value; the board is left as it was at the point
// of failure.  A pass that finds nothing to apply before all 81
// cells are applied returns a stalled error instead of spinning.
//
// On success every cell is determined.  Success means the
// fixpoint was reached, not that the result was re-checked
// against the global Sudoku rules.
func (b *Board) Solve() error {
	applied := make([]bool, GridSize)
	count := 0
	b.passes = 0
	for count < GridSize {
		pending := b.pendingSingletons(applied)
		b.logger.Info().
			Int("pass", b.passes).
			Int("entropy", b.TotalEntropy()).
			Int("applied", count).
			Msg("beginning propagation pass")
		if len(pending) == 0 {
			return stalledError(count, b.TotalEntropy())
		}
		for _, i := range pending {
			value, _ := b.cells[i].Determined()
			for _, p := range b.peers.peers[i] {
				if _, err := b.cells[p].Eliminate(value); err != nil {
					b.passes++
					return conflictError(p, value)
				}
			}
			applied[i] = true
			count++
		}
		b.passes++
	}
	return nil
}

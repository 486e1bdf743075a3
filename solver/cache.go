package solver

import "github.com/katalvlaran/npuzzle/board"

// heuristicCache memoizes heuristic values per distinct board
// configuration, keyed by board content (never by instance identity).
// One cache belongs to one Solve call; it is created by the runner and
// unreachable after the run, so concurrent runs cannot contaminate
// each other.
type heuristicCache struct {
	linear bool           // include the linear-conflict correction
	vals   map[string]int // board.Key() → heuristic value
}

// newHeuristicCache returns an empty cache for one run.
func newHeuristicCache(linear bool) *heuristicCache {
	return &heuristicCache{
		linear: linear,
		vals:   make(map[string]int),
	}
}

// value returns the heuristic for b, computing it with a full scan and
// memoizing on first request.
// Complexity: O(N²), or O(N³) on a miss with linear conflicts enabled.
func (c *heuristicCache) value(b *board.Board) int {
	key := b.Key()
	if h, ok := c.vals[key]; ok {
		return h
	}
	h := b.Manhattan()
	if c.linear {
		h += b.LinearConflicts()
	}
	c.vals[key] = h

	return h
}

// childValue returns the heuristic for child, which was derived from
// parent by swapping the blank with one adjacent tile. On a cache miss
// it adjusts parentH by the localized delta contributed by the moved
// tile and the affected rows/columns instead of rescanning the board.
// Falling back to value(child) would be equally correct, just slower.
// Complexity: O(N²) per miss (O(N) tiles on up to three lines).
func (c *heuristicCache) childValue(parent *board.Board, parentH int, child *board.Board) int {
	key := child.Key()
	if h, ok := c.vals[key]; ok {
		return h
	}

	n := parent.Dimension()
	bp := parent.BlankIndex() // in child: the moved tile's position
	bc := child.BlankIndex()  // in parent: where the moved tile came from
	v := child.TileAt(bp)

	// Manhattan changes only for the one tile that moved.
	h := parentH + tileDistance(v, bp, n) - tileDistance(v, bc, n)

	// Linear conflicts change only on the lines containing bp or bc:
	// two rows and one column for a vertical move, one row and two
	// columns for a horizontal one.
	if c.linear {
		rp, cp := bp/n, bp%n
		rc, cc := bc/n, bc%n
		h += child.RowConflicts(rp) - parent.RowConflicts(rp)
		if rc != rp {
			h += child.RowConflicts(rc) - parent.RowConflicts(rc)
		}
		h += child.ColConflicts(cp) - parent.ColConflicts(cp)
		if cc != cp {
			h += child.ColConflicts(cc) - parent.ColConflicts(cc)
		}
	}
	c.vals[key] = h

	return h
}

// tileDistance is the Manhattan distance of tile value v placed at
// row-major index i from its goal cell on an n×n board.
func tileDistance(v, i, n int) int {
	dr := (v-1)/n - i/n
	if dr < 0 {
		dr = -dr
	}
	dc := (v-1)%n - i%n
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}

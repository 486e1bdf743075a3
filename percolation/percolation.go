// Package percolation implements the N×N percolation grid over
// weighted quick-union with virtual top and bottom sites.
package percolation

import (
	"errors"
	"fmt"
)

// Sentinel errors for percolation construction and access.
var (
	// ErrBadDimension indicates a grid side or trial count below 1.
	ErrBadDimension = errors.New("percolation: dimension must be at least 1")

	// ErrIndexOutOfRange indicates 1-based coordinates outside [1,N].
	ErrIndexOutOfRange = errors.New("percolation: index out of range")
)

// Grid is an N×N percolation system. All sites start blocked.
type Grid struct {
	n    int
	open []bool
	// full connects open sites plus both virtual sites; it answers
	// Percolates. topOnly omits the bottom virtual site so IsFull
	// cannot leak backward through the bottom ("backwash").
	full    *unionFind
	topOnly *unionFind
	top     int // index of the virtual top site
	bottom  int // index of the virtual bottom site
	opened  int
}

// New creates an N-by-N grid with all sites blocked.
// Returns ErrBadDimension when n < 1.
// Complexity: O(N²).
func New(n int) (*Grid, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDimension, n)
	}
	n2 := n * n
	return &Grid{
		n:       n,
		open:    make([]bool, n2),
		full:    newUnionFind(n2 + 2),
		topOnly: newUnionFind(n2 + 1),
		top:     n2,
		bottom:  n2 + 1,
	}, nil
}

// Dimension returns the grid side length N.
func (g *Grid) Dimension() int { return g.n }

// OpenCount returns how many sites have been opened.
func (g *Grid) OpenCount() int { return g.opened }

// index maps validated 1-based (row, col) to a dense site index.
func (g *Grid) index(row, col int) int {
	return (row-1)*g.n + (col - 1)
}

// check validates 1-based coordinates.
func (g *Grid) check(row, col int) error {
	if row < 1 || row > g.n || col < 1 || col > g.n {
		return fmt.Errorf("%w: (%d,%d) outside [1,%d]", ErrIndexOutOfRange, row, col, g.n)
	}
	return nil
}

// Open opens site (row, col) if it is not open already, connecting it
// to its open orthogonal neighbors and, on the boundary rows, to the
// virtual sites.
// Complexity: O(α(N²)) amortized.
func (g *Grid) Open(row, col int) error {
	if err := g.check(row, col); err != nil {
		return err
	}
	p := g.index(row, col)
	if g.open[p] {
		return nil
	}
	g.open[p] = true
	g.opened++

	if row == 1 {
		g.full.union(p, g.top)
		g.topOnly.union(p, g.top)
	}
	if row == g.n {
		g.full.union(p, g.bottom)
	}

	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		rp, cp := row+d[0], col+d[1]
		if rp < 1 || rp > g.n || cp < 1 || cp > g.n {
			continue
		}
		q := g.index(rp, cp)
		if g.open[q] {
			g.full.union(p, q)
			g.topOnly.union(p, q)
		}
	}
	return nil
}

// IsOpen reports whether site (row, col) is open.
// Complexity: O(1).
func (g *Grid) IsOpen(row, col int) (bool, error) {
	if err := g.check(row, col); err != nil {
		return false, err
	}
	return g.open[g.index(row, col)], nil
}

// IsFull reports whether site (row, col) is connected to the top row
// through open sites.
// Complexity: O(α(N²)) amortized.
func (g *Grid) IsFull(row, col int) (bool, error) {
	if err := g.check(row, col); err != nil {
		return false, err
	}
	p := g.index(row, col)
	return g.open[p] && g.topOnly.connected(p, g.top), nil
}

// Percolates reports whether any bottom-row site is full, i.e. the
// virtual top and bottom sites share a component.
// Complexity: O(α(N²)) amortized.
func (g *Grid) Percolates() bool {
	return g.full.connected(g.top, g.bottom)
}

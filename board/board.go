package board

import (
	"fmt"
	"strconv"
	"strings"
)

// New constructs a Board from an N-by-N grid of labels
// (blocks[r][c] = label at row r, column c; 0 marks the blank).
// The input is deep-copied so later mutation of blocks cannot
// reach the Board.
//
// Returns ErrInvalidBoard if the grid is not square, N < 2, or the
// labels are not exactly {0, 1, …, N²−1}.
// Complexity: O(N²) time and memory.
func New(blocks [][]int) (*Board, error) {
	n := len(blocks)
	if n < 2 {
		return nil, fmt.Errorf("%w: side length %d, need at least 2", ErrInvalidBoard, n)
	}
	for r, row := range blocks {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, r, len(row), n)
		}
	}

	// Flatten row-major and locate the blank while validating labels.
	n2 := n * n
	tiles := make([]int, 0, n2)
	seen := make([]bool, n2)
	blank := -1
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := blocks[r][c]
			if v < 0 || v >= n2 {
				return nil, fmt.Errorf("%w: label %d at (%d,%d) outside [0,%d]", ErrInvalidBoard, v, r, c, n2-1)
			}
			if seen[v] {
				return nil, fmt.Errorf("%w: duplicate label %d at (%d,%d)", ErrInvalidBoard, v, r, c)
			}
			seen[v] = true
			if v == 0 {
				blank = len(tiles)
			}
			tiles = append(tiles, v)
		}
	}
	// With n² in-range distinct labels every value appears exactly once,
	// so the blank is guaranteed to have been found.
	return &Board{n: n, tiles: tiles, blank: blank}, nil
}

// Dimension returns the board's side length N.
// Complexity: O(1).
func (b *Board) Dimension() int { return b.n }

// BlankIndex returns the row-major index of the blank cell.
// Complexity: O(1).
func (b *Board) BlankIndex() int { return b.blank }

// Tile returns the label at 1-based coordinates (row, col).
// Returns ErrIndexOutOfRange if row or col lies outside [1, N].
// Complexity: O(1).
func (b *Board) Tile(row, col int) (int, error) {
	if row < 1 || row > b.n || col < 1 || col > b.n {
		return 0, fmt.Errorf("%w: (%d,%d) outside [1,%d]", ErrIndexOutOfRange, row, col, b.n)
	}
	return b.tiles[(row-1)*b.n+(col-1)], nil
}

// TileAt returns the label at row-major index i. The index must lie in
// [0, N²); like slice indexing, an invalid index panics. Callers that
// work in (row, col) coordinates should use Tile instead.
// Complexity: O(1).
func (b *Board) TileAt(i int) int { return b.tiles[i] }

// IsGoal reports whether the board is the goal arrangement:
// tiles 1..N²−1 in row-major order with the blank in the last cell.
// Complexity: O(N²).
func (b *Board) IsGoal() bool {
	if b.blank != b.n*b.n-1 {
		return false
	}
	for i, v := range b.tiles {
		if i != b.blank && v != i+1 {
			return false
		}
	}
	return true
}

// Equal reports whether b and o hold identical tile sequences,
// position for position. Equality is value-based: two boards built
// from the same grid compare equal regardless of how they were derived.
// Complexity: O(N²).
func (b *Board) Equal(o *Board) bool {
	if o == nil || b.n != o.n || b.blank != o.blank {
		return false
	}
	for i, v := range b.tiles {
		if v != o.tiles[i] {
			return false
		}
	}
	return true
}

// Key returns a compact content key for the board, suitable for
// map-based memoization and visited sets. Two boards share a key
// iff they are Equal.
// Complexity: O(N²).
func (b *Board) Key() string {
	var sb strings.Builder
	sb.Grow(3 * len(b.tiles))
	for i, v := range b.tiles {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}

// String renders the board as N on its own line followed by the N×N
// grid, each label right-aligned in two columns (blank rendered as 0).
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(b.n))
	sb.WriteByte('\n')
	for r := 0; r < b.n; r++ {
		for c := 0; c < b.n; c++ {
			fmt.Fprintf(&sb, "%2d ", b.tiles[r*b.n+c])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Package board defines the Board type and sentinel errors for the
// sliding-tile puzzle core of github.com/katalvlaran/npuzzle.
package board

import "errors"

// Sentinel errors for board construction and access.
var (
	// ErrInvalidBoard indicates a malformed grid: non-square input,
	// side length below 2, or a label set that is not exactly
	// {0, 1, …, N²−1} with a single blank.
	ErrInvalidBoard = errors.New("board: invalid board")

	// ErrIndexOutOfRange indicates a 1-based coordinate accessor was
	// called with a row or column outside [1, N].
	ErrIndexOutOfRange = errors.New("board: index out of range")
)

// Board is an immutable snapshot of an N×N tile arrangement.
// tiles holds the labels in row-major order; 0 marks the blank.
// blank caches the blank's row-major index so derivations are O(1)
// to locate and O(N²) only to copy.
type Board struct {
	n     int   // side length, ≥ 2
	tiles []int // row-major labels, len == n*n, never mutated after construction
	blank int   // index of the zero tile within tiles
}

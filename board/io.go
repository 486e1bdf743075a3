package board

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Read parses the textual board format: a first token N (the grid side
// length) followed by N² integer tokens in row-major order, separated
// by arbitrary whitespace; 0 marks the blank.
//
// Returns ErrInvalidBoard if fewer than N²+1 tokens are present, a
// token is not an integer, or the resulting grid fails New's
// validation.
// Complexity: O(N²).
func Read(r io.Reader) (*Board, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	n, err := nextInt(sc, "side length")
	if err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: side length %d, need at least 2", ErrInvalidBoard, n)
	}

	blocks := make([][]int, n)
	for r := 0; r < n; r++ {
		blocks[r] = make([]int, n)
		for c := 0; c < n; c++ {
			v, err := nextInt(sc, fmt.Sprintf("tile (%d,%d)", r, c))
			if err != nil {
				return nil, err
			}
			blocks[r][c] = v
		}
	}
	return New(blocks)
}

// nextInt scans one whitespace-delimited token and parses it as an
// integer, labeling failures with what was expected.
func nextInt(sc *bufio.Scanner, what string) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("%w: reading %s: %v", ErrInvalidBoard, what, err)
		}
		return 0, fmt.Errorf("%w: missing %s", ErrInvalidBoard, what)
	}
	v, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not an integer", ErrInvalidBoard, what, sc.Text())
	}
	return v, nil
}

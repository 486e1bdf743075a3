package board

// derive returns a new Board identical to b except that the tiles at
// row-major indices i and j are exchanged. The caller guarantees i and
// j address orthogonally adjacent cells.
// Complexity: O(N²) for the tile copy.
func (b *Board) derive(i, j int) *Board {
	tiles := make([]int, len(b.tiles))
	copy(tiles, b.tiles)
	tiles[i], tiles[j] = tiles[j], tiles[i]

	blank := b.blank
	switch b.blank {
	case i:
		blank = j
	case j:
		blank = i
	}
	return &Board{n: b.n, tiles: tiles, blank: blank}
}

// Twin returns a board identical to b except that the first two
// adjacent non-blank tiles, in row-major scan order, are exchanged.
// The twin always has the opposite solvability parity, which is what
// makes the solver's twin-race strategy sound. The blank is never
// swapped.
// Complexity: O(N²).
func (b *Board) Twin() *Board {
	for r := 0; r < b.n; r++ {
		for c := 0; c < b.n-1; c++ {
			i := r*b.n + c
			if i == b.blank || i+1 == b.blank {
				continue
			}
			return b.derive(i, i+1)
		}
	}
	// Unreachable: N ≥ 2 guarantees some row holds two non-blank cells.
	return nil
}

// Neighbors returns the boards reachable by sliding one tile into the
// blank, i.e. by swapping the blank with each orthogonally adjacent
// tile. Enumeration order is fixed: up, down, left, right (fewer at
// edges and corners).
// Complexity: O(N²) per neighbor.
func (b *Board) Neighbors() []*Board {
	r, c := b.blank/b.n, b.blank%b.n
	neighbors := make([]*Board, 0, 4)

	for _, dr := range [2]int{-1, +1} {
		rp := r + dr
		if rp >= 0 && rp < b.n {
			neighbors = append(neighbors, b.derive(b.blank, rp*b.n+c))
		}
	}
	for _, dc := range [2]int{-1, +1} {
		cp := c + dc
		if cp >= 0 && cp < b.n {
			neighbors = append(neighbors, b.derive(b.blank, r*b.n+cp))
		}
	}
	return neighbors
}

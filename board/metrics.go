package board

// Hamming returns the number of tiles (blank excluded) that are not in
// their goal position.
// Complexity: O(N²).
func (b *Board) Hamming() int {
	count := 0
	for i, v := range b.tiles {
		if i == b.blank {
			continue
		}
		if v != i+1 {
			count++
		}
	}
	return count
}

// Manhattan returns the sum over all non-blank tiles of the Manhattan
// distance between each tile's position and its goal position.
// Complexity: O(N²).
func (b *Board) Manhattan() int {
	sum := 0
	for i := range b.tiles {
		sum += b.manhattanAt(i)
	}
	return sum
}

// manhattanAt returns the Manhattan contribution of the tile at
// row-major index i (0 for the blank and for tiles already home).
func (b *Board) manhattanAt(i int) int {
	if i == b.blank {
		return 0
	}
	v := b.tiles[i]
	if v == i+1 {
		return 0
	}
	r, c := i/b.n, i%b.n
	gr, gc := (v-1)/b.n, (v-1)%b.n
	return abs(gr-r) + abs(gc-c)
}

// LinearConflicts returns twice the number of reciprocally inverted
// tile pairs that share a goal row or goal column with their current
// line: each such pair forces at least two moves beyond Manhattan
// distance, so Manhattan()+LinearConflicts() stays admissible.
// Complexity: O(N³) worst case.
func (b *Board) LinearConflicts() int {
	count := 0
	for r := 0; r < b.n; r++ {
		count += b.RowConflicts(r)
	}
	for c := 0; c < b.n; c++ {
		count += b.ColConflicts(c)
	}
	return count
}

// RowConflicts returns twice the number of inverted pairs within
// 0-based row r among tiles whose goal row is also r. Used by both the
// full LinearConflicts scan and the solver's incremental cache update.
// Complexity: O(N²).
func (b *Board) RowConflicts(r int) int {
	count := 0
	for c1 := 0; c1 < b.n-1; c1++ {
		i := r*b.n + c1
		if i == b.blank || (b.tiles[i]-1)/b.n != r {
			continue
		}
		for c2 := c1 + 1; c2 < b.n; c2++ {
			j := r*b.n + c2
			if j == b.blank || (b.tiles[j]-1)/b.n != r {
				continue
			}
			if b.tiles[i] > b.tiles[j] {
				count += 2
			}
		}
	}
	return count
}

// ColConflicts returns twice the number of inverted pairs within
// 0-based column c among tiles whose goal column is also c.
// Complexity: O(N²).
func (b *Board) ColConflicts(c int) int {
	count := 0
	for r1 := 0; r1 < b.n-1; r1++ {
		i := r1*b.n + c
		if i == b.blank || (b.tiles[i]-1)%b.n != c {
			continue
		}
		for r2 := r1 + 1; r2 < b.n; r2++ {
			j := r2*b.n + c
			if j == b.blank || (b.tiles[j]-1)%b.n != c {
				continue
			}
			if b.tiles[i] > b.tiles[j] {
				count += 2
			}
		}
	}
	return count
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

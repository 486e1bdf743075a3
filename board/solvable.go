package board

// Inversions returns the number of tile pairs that appear in reversed
// order when the grid is read row-major, ignoring the blank.
// Complexity: O(N⁴) worst case (quadratic in the N² tiles).
func (b *Board) Inversions() int {
	n2 := b.n * b.n
	inversions := 0
	for i := 0; i < n2-1; i++ {
		if i == b.blank {
			continue
		}
		for j := i + 1; j < n2; j++ {
			if j == b.blank {
				continue
			}
			if b.tiles[i] > b.tiles[j] {
				inversions++
			}
		}
	}
	return inversions
}

// IsSolvable reports whether the goal arrangement is reachable from
// this board, decided in closed form from inversion parity:
//
//   - odd N:  solvable iff the inversion count is even;
//   - even N: solvable iff (inversion count even) XOR (blank's row
//     counted from the bottom, 1-based, is even).
//
// Complexity: O(N⁴) dominated by Inversions.
func (b *Board) IsSolvable() bool {
	inversions := b.Inversions()
	if b.n%2 == 1 {
		return inversions%2 == 0
	}
	// Even N: blank row counted from the bottom, 1-based (last row = 1).
	// The blank occupies 0-based row blank/n from the top.
	blankRowFromBottom := b.n - b.blank/b.n
	return (blankRowFromBottom%2 == 0) != (inversions%2 == 0)
}

package board_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npuzzle/board"
)

func mustBoard(t *testing.T, blocks [][]int) *board.Board {
	t.Helper()
	b, err := board.New(blocks)
	require.NoError(t, err)
	return b
}

func TestHammingAndManhattan_Goal(t *testing.T) {
	g := mustBoard(t, goal3())
	require.Equal(t, 0, g.Hamming())
	require.Equal(t, 0, g.Manhattan())
	require.Equal(t, 0, g.LinearConflicts())
}

func TestHammingAndManhattan_Classic(t *testing.T) {
	// The canonical 8-puzzle instance: hamming 5, manhattan 10.
	b := mustBoard(t, [][]int{{8, 1, 3}, {4, 0, 2}, {7, 6, 5}})
	require.Equal(t, 5, b.Hamming())
	require.Equal(t, 10, b.Manhattan())
}

func TestManhattan_SingleMove(t *testing.T) {
	b := mustBoard(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 0, 8}})
	require.Equal(t, 1, b.Hamming())
	require.Equal(t, 1, b.Manhattan())
}

func TestLinearConflicts_RowInversion(t *testing.T) {
	// Tiles 2 and 1 sit in their goal row but in reversed order: one
	// conflict pair, contributing +2.
	b := mustBoard(t, [][]int{{2, 1, 3}, {4, 5, 6}, {7, 8, 0}})
	require.Equal(t, 2, b.LinearConflicts())
	require.Equal(t, 2, b.RowConflicts(0))
	require.Equal(t, 0, b.RowConflicts(1))
	require.Equal(t, 0, b.ColConflicts(0))
}

func TestLinearConflicts_ColumnInversion(t *testing.T) {
	// Tiles 4 and 1 share goal column 0 and are reversed vertically.
	b := mustBoard(t, [][]int{{4, 2, 3}, {1, 5, 6}, {7, 8, 0}})
	require.Equal(t, 2, b.LinearConflicts())
	require.Equal(t, 2, b.ColConflicts(0))
	require.Equal(t, 0, b.RowConflicts(0))
}

// TestManhattan_Consistency verifies the consistency property: the
// Manhattan value of any neighbor differs from the parent's by at most 1
// (exactly 1, in fact, since one tile moves one cell).
func TestManhattan_Consistency(t *testing.T) {
	seeds := [][][]int{
		{{8, 1, 3}, {4, 0, 2}, {7, 6, 5}},
		{{1, 2, 3}, {4, 5, 6}, {7, 0, 8}},
		{{0, 1, 3}, {4, 2, 5}, {7, 8, 6}},
	}
	for _, blocks := range seeds {
		b := mustBoard(t, blocks)
		// Walk two levels of the neighbor graph.
		frontier := []*board.Board{b}
		for depth := 0; depth < 2; depth++ {
			next := frontier[:0:0]
			for _, cur := range frontier {
				h := cur.Manhattan()
				for _, nb := range cur.Neighbors() {
					d := nb.Manhattan() - h
					if d < 0 {
						d = -d
					}
					require.LessOrEqual(t, d, 1,
						"neighbor Manhattan jumped by %d from\n%v", d, cur)
					next = append(next, nb)
				}
			}
			frontier = next
		}
	}
}

// TestLinearConflict_Admissible checks that the corrected heuristic
// never exceeds the true optimal move count on instances with known
// optima.
func TestLinearConflict_Admissible(t *testing.T) {
	cases := []struct {
		blocks  [][]int
		optimal int
	}{
		{[][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 0}}, 0},
		{[][]int{{1, 2, 3}, {4, 5, 6}, {7, 0, 8}}, 1},
		{[][]int{{1, 2, 3}, {4, 5, 6}, {0, 7, 8}}, 2},
		{[][]int{{0, 1, 3}, {4, 2, 5}, {7, 8, 6}}, 4},
	}
	for _, tc := range cases {
		b := mustBoard(t, tc.blocks)
		h := b.Manhattan() + b.LinearConflicts()
		require.LessOrEqual(t, h, tc.optimal, "board\n%v", b)
	}
}

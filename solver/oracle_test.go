package solver_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/solver"
)

// bfsDistance is the brute-force oracle: the true minimal move count
// from b to the goal, found by unweighted breadth-first search over the
// neighbor graph. Exponential, so only small scrambles feed it.
func bfsDistance(b *board.Board) int {
	type item struct {
		b *board.Board
		d int
	}
	seen := map[string]bool{b.Key(): true}
	queue := []item{{b: b, d: 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.b.IsGoal() {
			return cur.d
		}
		for _, nb := range cur.b.Neighbors() {
			if !seen[nb.Key()] {
				seen[nb.Key()] = true
				queue = append(queue, item{b: nb, d: cur.d + 1})
			}
		}
	}
	return -1
}

// scramble applies k random legal moves to the goal board.
func scramble(t *testing.T, n, k int, rng *rand.Rand) *board.Board {
	t.Helper()
	blocks := make([][]int, n)
	for r := 0; r < n; r++ {
		blocks[r] = make([]int, n)
		for c := 0; c < n; c++ {
			blocks[r][c] = (r*n + c + 1) % (n * n)
		}
	}
	b, err := board.New(blocks)
	require.NoError(t, err)
	require.True(t, b.IsGoal())

	for i := 0; i < k; i++ {
		nbs := b.Neighbors()
		b = nbs[rng.Intn(len(nbs))]
	}
	return b
}

// TestSolve_OptimalAgainstBFS cross-checks A* move counts against the
// BFS oracle on deterministic random scrambles. This simultaneously
// exercises admissibility: an inadmissible heuristic would eventually
// return a path longer than the oracle's distance.
func TestSolve_OptimalAgainstBFS(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		b := scramble(t, 3, 12, rng)
		want := bfsDistance(b)
		require.GreaterOrEqual(t, want, 0)

		for _, cfg := range solveConfigs() {
			res, err := solver.Solve(b, cfg.opts...)
			require.NoError(t, err)
			require.True(t, res.Solvable())
			require.Equal(t, want, res.Moves(), "config %q on\n%v", cfg.name, b)
		}
	}
}

// TestManhattan_NeverOverestimates verifies admissibility directly on
// exhaustively solved instances: heuristic ≤ true distance.
func TestManhattan_NeverOverestimates(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		b := scramble(t, 3, 10, rng)
		d := bfsDistance(b)
		require.LessOrEqual(t, b.Manhattan(), d, "manhattan overestimates on\n%v", b)
		require.LessOrEqual(t, b.Manhattan()+b.LinearConflicts(), d,
			"linear-conflict heuristic overestimates on\n%v", b)
	}
}

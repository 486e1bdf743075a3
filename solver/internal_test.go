// Internal tests for the priority frontier and the heuristic cache.
package solver

import (
	"container/heap"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npuzzle/board"
)

// TestFrontier_OrderAndTieBreak verifies min-extraction by g+h with
// ties broken by the smaller h.
func TestFrontier_OrderAndTieBreak(t *testing.T) {
	b, err := board.New([][]int{{1, 2}, {3, 0}})
	require.NoError(t, err)

	var f frontier
	heap.Init(&f)
	// Same priority 6, different h: (g=2,h=4), (g=4,h=2), (g=6,h=0);
	// plus a cheaper and a costlier node.
	heap.Push(&f, &searchNode{board: b, moves: 2, h: 4})
	heap.Push(&f, &searchNode{board: b, moves: 6, h: 0})
	heap.Push(&f, &searchNode{board: b, moves: 0, h: 3})
	heap.Push(&f, &searchNode{board: b, moves: 4, h: 2})
	heap.Push(&f, &searchNode{board: b, moves: 5, h: 5})

	pop := func() (priority, h int) {
		n := heap.Pop(&f).(*searchNode)
		return n.priority(), n.h
	}

	p, h := pop()
	require.Equal(t, 3, p)
	// Priority-6 block: h must come out ascending.
	p, h = pop()
	require.Equal(t, 6, p)
	require.Equal(t, 0, h)
	p, h = pop()
	require.Equal(t, 6, p)
	require.Equal(t, 2, h)
	p, h = pop()
	require.Equal(t, 6, p)
	require.Equal(t, 4, h)
	p, _ = pop()
	require.Equal(t, 10, p)
	require.Zero(t, f.Len())
}

// randomWalk returns a board scrambled by k legal moves from the goal,
// together with every intermediate (parent, child) pair.
func randomWalk(t *testing.T, goal *board.Board, k int, rng *rand.Rand) []*board.Board {
	t.Helper()
	path := []*board.Board{goal}
	cur := goal
	for i := 0; i < k; i++ {
		nbs := cur.Neighbors()
		cur = nbs[rng.Intn(len(nbs))]
		path = append(path, cur)
	}
	return path
}

// TestHeuristicCache_IncrementalMatchesFull walks random move chains
// and checks that the localized delta update produces exactly the same
// values as a full rescan, with and without linear conflicts.
func TestHeuristicCache_IncrementalMatchesFull(t *testing.T) {
	goal3, err := board.New([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 0}})
	require.NoError(t, err)
	goal4, err := board.New([][]int{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 0},
	})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	for _, goal := range []*board.Board{goal3, goal4} {
		for _, linear := range []bool{false, true} {
			for trial := 0; trial < 25; trial++ {
				path := randomWalk(t, goal, 30, rng)
				c := newHeuristicCache(linear)
				h := c.value(path[0])
				for i := 1; i < len(path); i++ {
					parent, child := path[i-1], path[i]
					h = c.childValue(parent, h, child)

					want := child.Manhattan()
					if linear {
						want += child.LinearConflicts()
					}
					require.Equal(t, want, h,
						"linear=%v trial=%d step=%d parent\n%v\nchild\n%v",
						linear, trial, i, parent, child)
				}
			}
		}
	}
}

// TestHeuristicCache_MemoizesByContent ensures distinct instances with
// identical content hit the same cache entry.
func TestHeuristicCache_MemoizesByContent(t *testing.T) {
	a, err := board.New([][]int{{8, 1, 3}, {4, 0, 2}, {7, 6, 5}})
	require.NoError(t, err)
	b, err := board.New([][]int{{8, 1, 3}, {4, 0, 2}, {7, 6, 5}})
	require.NoError(t, err)

	c := newHeuristicCache(true)
	h1 := c.value(a)
	require.Len(t, c.vals, 1)
	h2 := c.value(b) // distinct instance, same content: cache hit
	require.Equal(t, h1, h2)
	require.Len(t, c.vals, 1)
}

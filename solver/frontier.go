package solver

import "github.com/katalvlaran/npuzzle/board"

// searchNode pairs a board with its search bookkeeping: moves from the
// root (g), cached heuristic (h), a parent link for path
// reconstruction, and a flag marking twin-search membership.
// Nodes are transient; only the final solution path keeps its chain of
// parents reachable.
type searchNode struct {
	board  *board.Board
	parent *searchNode // nil for a root
	moves  int         // g: moves from the respective root
	h      int         // cached heuristic value
	twin   bool        // true for nodes of the twin (unsolvability) search
}

// priority is the A* estimated total cost g+h.
func (n *searchNode) priority() int { return n.moves + n.h }

// frontier is a min-heap (priority queue) of *searchNode ordered by
// priority ascending, ties broken by smaller h (prefer nodes closer to
// the goal). Same lazy-decrease-key discipline as any Dijkstra-style
// queue: duplicates are pushed freely and stale entries skipped on pop.
type frontier []*searchNode

// Len returns the number of nodes in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by estimated total cost, then by heuristic.
func (f frontier) Less(i, j int) bool {
	pi, pj := f[i].priority(), f[j].priority()
	if pi != pj {
		return pi < pj
	}
	return f[i].h < f[j].h
}

// Swap swaps two heap slots.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds x onto the heap. Called by heap.Push; x must be *searchNode.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*searchNode)) }

// Pop removes and returns the minimum node. Called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	node := old[n-1]
	old[n-1] = nil // release the reference so expanded nodes can be collected
	*f = old[:n-1]

	return node
}

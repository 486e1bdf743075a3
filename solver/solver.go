// Package solver implements best-first (A*) search over sliding-tile
// boards: a min-priority frontier keyed by moves+heuristic, a per-run
// heuristic cache, and closed-form or twin-race unsolvability detection.
package solver

import (
	"container/heap"

	"github.com/katalvlaran/npuzzle/board"
)

// Solve searches for a minimum-move solution from the initial board,
// applying any number of functional Options.
//
// Returns ErrNilBoard if initial is nil. A successful call always
// yields a terminal Result: exactly one of Solved or Infeasible holds.
//
// Strategy (exactly one per run):
//
//   - default: evaluate the closed-form parity rule once; an unsolvable
//     board transitions directly to Infeasible with no search.
//   - WithTwinRace: seed one shared frontier with the initial board and
//     its twin; whichever search reaches the goal first decides the run
//     (twin goal ⇒ Infeasible). Sound because twinning flips
//     solvability parity, so exactly one of the two can ever finish.
func Solve(initial *board.Board, opts ...Option) (*Result, error) {
	// 1) Validate input before building any state.
	if initial == nil {
		return nil, ErrNilBoard
	}

	// 2) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Closed-form strategy: decide solvability up front and skip the
	//    search entirely for unsolvable boards.
	if !cfg.TwinRace && !initial.IsSolvable() {
		return &Result{state: Infeasible, moves: -1}, nil
	}

	// 4) Run the search. The runner, its cache, and its frontier live
	//    only for this call.
	r := &runner{
		opts:    cfg,
		cache:   newHeuristicCache(cfg.LinearConflict),
		visited: make(map[string]bool),
	}
	return r.run(initial), nil
}

// runner holds the mutable state of a single search.
type runner struct {
	opts     Options
	cache    *heuristicCache
	pq       frontier
	visited  map[string]bool // closed set; twin keys are prefixed to keep the searches apart
	expanded int
}

// run seeds the frontier and loops until one search dequeues its goal.
// Termination is guaranteed: the reachable state space is finite, the
// closed set (or, in parent-skip mode, the parity/twin invariant that
// exactly one seeded search can reach the goal) bounds the work.
func (r *runner) run(initial *board.Board) *Result {
	// 1) Seed the real search.
	heap.Init(&r.pq)
	heap.Push(&r.pq, &searchNode{
		board: initial,
		moves: 0,
		h:     r.cache.value(initial),
	})

	// 2) Twin race: seed the twin root into the same frontier,
	//    distinguished by its flag.
	if r.opts.TwinRace {
		twin := initial.Twin()
		heap.Push(&r.pq, &searchNode{
			board: twin,
			moves: 0,
			h:     r.cache.value(twin),
			twin:  true,
		})
	}

	// 3) Main loop: extract minimum priority, test for goal, expand.
	for r.pq.Len() > 0 {
		node := heap.Pop(&r.pq).(*searchNode)

		// Skip stale entries already finalized through a cheaper path.
		if !r.opts.ParentSkipOnly {
			key := r.dedupKey(node)
			if r.visited[key] {
				continue
			}
			r.visited[key] = true
		}

		if node.board.IsGoal() {
			if node.twin {
				// The twin search finished first: the real board is unsolvable.
				return &Result{state: Infeasible, moves: -1, expanded: r.expanded}
			}
			return r.solved(node)
		}
		r.expand(node)
	}

	// Unreachable: the goal component always contains exactly one of
	// the seeded boards, and the loop only ends by dequeuing its goal.
	return &Result{state: Infeasible, moves: -1, expanded: r.expanded}
}

// expand pushes every admissible child of node onto the frontier.
func (r *runner) expand(node *searchNode) {
	r.expanded++
	for _, nb := range node.board.Neighbors() {
		// Single-step cycle check: never walk straight back to the
		// parent's board. Applied in both dedup modes.
		if node.parent != nil && nb.Equal(node.parent.board) {
			continue
		}
		heap.Push(&r.pq, &searchNode{
			board:  nb,
			parent: node,
			moves:  node.moves + 1,
			h:      r.cache.childValue(node.board, node.h, nb),
			twin:   node.twin,
		})
	}
}

// solved reconstructs the move sequence by walking parent links from
// the goal node back to the root, then reversing.
func (r *runner) solved(goal *searchNode) *Result {
	path := make([]*board.Board, 0, goal.moves+1)
	for n := goal; n != nil; n = n.parent {
		path = append(path, n.board)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return &Result{
		state:    Solved,
		moves:    goal.moves,
		solution: path,
		expanded: r.expanded,
	}
}

// dedupKey namespaces closed-set entries by search membership so the
// real and twin searches never suppress each other's states.
func (r *runner) dedupKey(n *searchNode) string {
	if n.twin {
		return "t|" + n.board.Key()
	}
	return n.board.Key()
}

// Package solver finds minimum-move solutions to sliding-tile puzzles
// with best-first (A*) search, or proves that none exists.
//
// What:
//
//   - Solve drives an A* search over board states from an initial board.
//   - Priority = moves-so-far + heuristic; ties prefer the smaller heuristic.
//   - The heuristic is Manhattan distance, optionally tightened with the
//     linear-conflict correction (WithLinearConflict); both are admissible
//     and consistent, so the first goal dequeued is optimal.
//   - Heuristic values are memoized per run in a content-keyed cache with
//     an incremental update for single-swap derivations.
//   - Unsolvability is decided by the closed-form inversion-parity rule
//     before any search; WithTwinRace switches to racing the board's twin
//     instead. A run uses exactly one strategy, never both.
//
// Why:
//
//   - The N-puzzle state graph is implicit and exponential; an admissible
//     heuristic plus a priority frontier reaches optimal solutions without
//     materializing the graph.
//
// Complexity:
//
//   - Worst case exponential in N (the problem is NP-hard in general);
//     each expansion costs O(N²) with the incremental cache, O(N³) on a
//     cache miss with linear conflicts enabled.
//
// Errors:
//
//   - ErrNilBoard: Solve was handed a nil initial board.
//
// The search is single-threaded and runs to completion; the heuristic
// cache and frontier are owned by one Solve call and unreachable after
// it returns, so concurrent Solve calls never share state.
package solver

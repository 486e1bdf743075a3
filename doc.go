// Package npuzzle is a collection of classic algorithm exercises built
// around one hard core: an A* solver for the sliding-tile N-puzzle.
//
// 🚀 What is npuzzle?
//
//	A small, focused library that brings together:
//		• board/       — immutable N×N tile boards, heuristics & solvability parity
//		• solver/      — best-first (A*) search with a per-run heuristic cache
//		• deque/       — generic doubly-linked double-ended queue
//		• randqueue/   — generic circular-buffer randomized queue
//		• percolation/ — union-find percolation grid + Monte Carlo estimator
//		• points/      — brute-force and sort-based collinear-point detection
//		• kdtree/      — point set and 2d-tree nearest-neighbor structures
//
// ✨ Why choose npuzzle?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – seeded randomness, reproducible searches
//   - Pure Go core – no cgo; third-party deps confined to the CLI and tests
//   - Honest contracts – sentinel errors, fail-fast validation, no panics
//
// The side packages are independent exercises: none of them is consumed
// by the solver core, and each carries its own narrow contract.
//
// Quick taste:
//
//	b, _ := board.New([][]int{{1, 2, 3}, {4, 5, 6}, {7, 0, 8}})
//	res, _ := solver.Solve(b)
//	fmt.Println(res.Moves()) // 1
//
// See cmd/npuzzle for the command-line front end.
package npuzzle

// Package solver_test provides runnable examples for the solver.
// Each example runs via “go test -run Example”, showing both code and
// expected output.
package solver_test

import (
	"fmt"

	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/solver"
)

// ExampleSolve demonstrates solving a 3×3 instance and reading the
// public contract: Solvable, Moves, Solution.
func ExampleSolve() {
	// 1) Build the initial board (0 marks the blank).
	b, err := board.New([][]int{
		{0, 1, 3},
		{4, 2, 5},
		{7, 8, 6},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Solve with the default configuration: Manhattan heuristic,
	//    closed-form parity check, full visited set.
	res, err := solver.Solve(b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Minimum number of moves, and the solution length contract.
	fmt.Println("solvable:", res.Solvable())
	fmt.Println("moves:", res.Moves())
	fmt.Println("boards:", len(res.Solution()))

	// Output:
	// solvable: true
	// moves: 4
	// boards: 5
}

// ExampleSolve_unsolvable shows the Infeasible outcome: the parity rule
// rejects the board without expanding a single node.
func ExampleSolve_unsolvable() {
	b, _ := board.New([][]int{
		{1, 2, 3},
		{4, 5, 6},
		{8, 7, 0},
	})
	res, _ := solver.Solve(b)

	fmt.Println("solvable:", res.Solvable())
	fmt.Println("moves:", res.Moves())
	fmt.Println("solution is nil:", res.Solution() == nil)

	// Output:
	// solvable: false
	// moves: -1
	// solution is nil: true
}

// ExampleSolve_twinRace races the board's twin instead of computing
// parity; both strategies always agree.
func ExampleSolve_twinRace() {
	b, _ := board.New([][]int{
		{1, 2, 3},
		{4, 5, 6},
		{8, 7, 0},
	})
	res, _ := solver.Solve(b, solver.WithTwinRace())

	fmt.Println("state:", res.State())

	// Output:
	// state: Infeasible
}

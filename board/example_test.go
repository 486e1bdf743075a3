// Package board_test provides runnable examples for the board package.
// Each example runs via “go test -run Example”, showing both code and
// expected output.
package board_test

import (
	"fmt"

	"github.com/katalvlaran/npuzzle/board"
)

// ExampleNew demonstrates constructing a board and querying its
// distance-to-goal metrics.
func ExampleNew() {
	// 1) Build a 3×3 board one move away from the goal.
	b, err := board.New([][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 0, 8},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Hamming counts misplaced tiles; Manhattan sums their distances.
	fmt.Println("hamming:", b.Hamming())
	fmt.Println("manhattan:", b.Manhattan())
	fmt.Println("solvable:", b.IsSolvable())

	// Output:
	// hamming: 1
	// manhattan: 1
	// solvable: true
}

// ExampleBoard_Neighbors shows the deterministic neighbor enumeration:
// up, down, left, right (fewer at edges and corners).
func ExampleBoard_Neighbors() {
	b, _ := board.New([][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 0},
	})
	// The blank sits in the corner, so only two moves exist; every move
	// away from the goal raises the Manhattan distance to exactly 1.
	for _, nb := range b.Neighbors() {
		fmt.Println("manhattan:", nb.Manhattan())
	}

	// Output:
	// manhattan: 1
	// manhattan: 1
}

package board_test

import (
	"testing"

	"github.com/katalvlaran/npuzzle/board"
)

// benchBoard builds a scrambled 4×4 instance once per benchmark.
func benchBoard(b *testing.B) *board.Board {
	b.Helper()
	bd, err := board.New([][]int{
		{5, 1, 3, 4},
		{2, 6, 7, 8},
		{9, 10, 0, 12},
		{13, 14, 11, 15},
	})
	if err != nil {
		b.Fatal(err)
	}
	return bd
}

// BenchmarkManhattan measures the full O(N²) heuristic scan.
func BenchmarkManhattan(b *testing.B) {
	bd := benchBoard(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bd.Manhattan()
	}
}

// BenchmarkLinearConflicts measures the per-line conflict scans.
func BenchmarkLinearConflicts(b *testing.B) {
	bd := benchBoard(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bd.LinearConflicts()
	}
}

// BenchmarkNeighbors measures copy-on-derive expansion cost.
func BenchmarkNeighbors(b *testing.B) {
	bd := benchBoard(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bd.Neighbors()
	}
}

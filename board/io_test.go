package board_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npuzzle/board"
)

func TestRead_WellFormed(t *testing.T) {
	in := "3\n 8  1  3\n 4  0  2\n 7  6  5\n"
	b, err := board.Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 3, b.Dimension())
	require.Equal(t, 10, b.Manhattan())
}

func TestRead_WhitespaceAgnostic(t *testing.T) {
	// Tokens may be separated by any whitespace, including one line.
	b, err := board.Read(strings.NewReader("2 1 2 3 0"))
	require.NoError(t, err)
	require.True(t, b.IsGoal())
}

func TestRead_Truncated(t *testing.T) {
	// Fewer than N²+1 tokens.
	_, err := board.Read(strings.NewReader("3 1 2 3 4 5"))
	require.ErrorIs(t, err, board.ErrInvalidBoard)
}

func TestRead_Empty(t *testing.T) {
	_, err := board.Read(strings.NewReader(""))
	require.ErrorIs(t, err, board.ErrInvalidBoard)
}

func TestRead_NonInteger(t *testing.T) {
	_, err := board.Read(strings.NewReader("2 1 2 x 0"))
	require.ErrorIs(t, err, board.ErrInvalidBoard)
}

func TestRead_OutOfRangeToken(t *testing.T) {
	_, err := board.Read(strings.NewReader("2 1 2 9 0"))
	require.ErrorIs(t, err, board.ErrInvalidBoard)
}

func TestRead_SideTooSmall(t *testing.T) {
	_, err := board.Read(strings.NewReader("1 0"))
	require.ErrorIs(t, err, board.ErrInvalidBoard)
}

// TestRead_RoundTrip checks that String renders exactly what Read parses.
func TestRead_RoundTrip(t *testing.T) {
	orig := mustBoard(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 0, 8}})
	back, err := board.Read(strings.NewReader(orig.String()))
	require.NoError(t, err)
	require.True(t, orig.Equal(back))
}

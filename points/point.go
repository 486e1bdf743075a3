package points

import (
	"errors"
	"fmt"
	"math"
)

// ErrDuplicatePoint indicates the input contains the same point twice.
var ErrDuplicatePoint = errors.New("points: duplicate point")

// Point is a plane point with integer coordinates.
type Point struct {
	X, Y int
}

// Less reports whether p precedes q in natural order:
// by y-coordinate, breaking ties by x-coordinate.
func (p Point) Less(q Point) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// SlopeTo returns the slope between p and q:
//
//   - (q.Y−p.Y)/(q.X−p.X) for the general case;
//   - +0 for a horizontal line;
//   - +Inf for a vertical line;
//   - −Inf for the degenerate case p == q.
func (p Point) SlopeTo(q Point) float64 {
	switch {
	case p == q:
		return math.Inf(-1)
	case p.X == q.X:
		return math.Inf(+1)
	case p.Y == q.Y:
		return 0 // explicit +0, never −0
	default:
		return float64(q.Y-p.Y) / float64(q.X-p.X)
	}
}

// String renders the point as (x, y).
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Segment is a maximal run of collinear points, identified by its two
// extreme points with From preceding To in natural order.
type Segment struct {
	From, To Point
}

// String renders the segment as (x1, y1) -> (x2, y2).
func (s Segment) String() string {
	return fmt.Sprintf("%v -> %v", s.From, s.To)
}

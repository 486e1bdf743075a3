package kdtree

import "fmt"

// Point2D is a plane point with float64 coordinates.
type Point2D struct {
	X, Y float64
}

// DistanceSquaredTo returns the squared Euclidean distance to q.
// Squared distances preserve ordering and avoid the square root.
func (p Point2D) DistanceSquaredTo(q Point2D) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// String renders the point as (x, y).
func (p Point2D) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Rect is a closed axis-aligned rectangle [XMin,XMax]×[YMin,YMax].
type Rect struct {
	XMin, YMin, XMax, YMax float64
}

// Contains reports whether p lies inside the rectangle (borders count).
func (r Rect) Contains(p Point2D) bool {
	return p.X >= r.XMin && p.X <= r.XMax && p.Y >= r.YMin && p.Y <= r.YMax
}

// Intersects reports whether r and o share at least one point.
func (r Rect) Intersects(o Rect) bool {
	return r.XMax >= o.XMin && o.XMax >= r.XMin &&
		r.YMax >= o.YMin && o.YMax >= r.YMin
}

// DistanceSquaredTo returns the squared distance from p to the nearest
// point of the rectangle; zero when p lies inside.
func (r Rect) DistanceSquaredTo(p Point2D) float64 {
	dx := 0.0
	if p.X < r.XMin {
		dx = r.XMin - p.X
	} else if p.X > r.XMax {
		dx = p.X - r.XMax
	}
	dy := 0.0
	if p.Y < r.YMin {
		dy = r.YMin - p.Y
	} else if p.Y > r.YMax {
		dy = p.Y - r.YMax
	}
	return dx*dx + dy*dy
}

package kdtree

import "sort"

// PointSET is the brute-force baseline: points kept in a sorted slice
// (by x, then y). Queries scan; it exists to validate KdTree and to
// serve small inputs where the tree's bookkeeping is not worth it.
type PointSET struct {
	pts []Point2D
}

// NewPointSET returns an empty set.
func NewPointSET() *PointSET {
	return &PointSET{}
}

// Size returns the number of stored points.
func (s *PointSET) Size() int { return len(s.pts) }

// IsEmpty reports whether the set holds no points.
func (s *PointSET) IsEmpty() bool { return len(s.pts) == 0 }

// search returns the insertion index of p and whether it is present.
func (s *PointSET) search(p Point2D) (int, bool) {
	i := sort.Search(len(s.pts), func(i int) bool {
		q := s.pts[i]
		if q.X != p.X {
			return q.X >= p.X
		}
		return q.Y >= p.Y
	})
	return i, i < len(s.pts) && s.pts[i] == p
}

// Insert adds p to the set; duplicate insertions are ignored.
// Complexity: O(log n) search + O(n) shift.
func (s *PointSET) Insert(p Point2D) {
	i, found := s.search(p)
	if found {
		return
	}
	s.pts = append(s.pts, Point2D{})
	copy(s.pts[i+1:], s.pts[i:])
	s.pts[i] = p
}

// Contains reports whether p is in the set.
// Complexity: O(log n).
func (s *PointSET) Contains(p Point2D) bool {
	_, found := s.search(p)
	return found
}

// Range returns all points inside rect (borders count).
// Complexity: O(n).
func (s *PointSET) Range(rect Rect) []Point2D {
	out := []Point2D{}
	for _, p := range s.pts {
		if rect.Contains(p) {
			out = append(out, p)
		}
	}
	return out
}

// Nearest returns the stored point closest to p and true, or the zero
// point and false when the set is empty. Ties keep the first point in
// slice order.
// Complexity: O(n).
func (s *PointSET) Nearest(p Point2D) (Point2D, bool) {
	if len(s.pts) == 0 {
		return Point2D{}, false
	}
	best := s.pts[0]
	bestDist := p.DistanceSquaredTo(best)
	for _, q := range s.pts[1:] {
		if d := p.DistanceSquaredTo(q); d < bestDist {
			best, bestDist = q, d
		}
	}
	return best, true
}

package kdtree

// KdTree is a 2d-tree over Point2D. Levels alternate the splitting
// coordinate: the root splits on x, its children on y, and so on. Each
// node records the axis-aligned rectangle enclosing its subtree, which
// Range and Nearest use for pruning.
type KdTree struct {
	root *node
	size int
}

type node struct {
	p        Point2D
	rect     Rect
	lb, rt   *node // left/below and right/above subtrees
	vertical bool  // true when this node splits on x
}

// NewKdTree returns an empty tree covering the unit square. Every
// inserted point must lie in [0,1]×[0,1]; the rectangles used for
// pruning assume it, and queries over points outside that range are
// not supported.
func NewKdTree() *KdTree {
	return &KdTree{}
}

// Size returns the number of stored points.
func (t *KdTree) Size() int { return t.size }

// IsEmpty reports whether the tree holds no points.
func (t *KdTree) IsEmpty() bool { return t.size == 0 }

// Insert adds p to the tree; duplicate insertions are ignored.
// Complexity: O(log n) on balanced input.
func (t *KdTree) Insert(p Point2D) {
	t.root = t.insert(t.root, p, Rect{0, 0, 1, 1}, true)
}

func (t *KdTree) insert(h *node, p Point2D, rect Rect, vertical bool) *node {
	if h == nil {
		t.size++
		return &node{p: p, rect: rect, vertical: vertical}
	}
	if h.p == p {
		return h
	}
	// 1. Choose the side by the splitting coordinate.
	// 2. Shrink the enclosing rectangle along the split line.
	if h.goesLeft(p) {
		r := h.rect
		if h.vertical {
			r.XMax = h.p.X
		} else {
			r.YMax = h.p.Y
		}
		h.lb = t.insert(h.lb, p, r, !h.vertical)
	} else {
		r := h.rect
		if h.vertical {
			r.XMin = h.p.X
		} else {
			r.YMin = h.p.Y
		}
		h.rt = t.insert(h.rt, p, r, !h.vertical)
	}
	return h
}

// goesLeft reports whether p belongs to the left/below subtree of h.
func (h *node) goesLeft(p Point2D) bool {
	if h.vertical {
		return p.X < h.p.X
	}
	return p.Y < h.p.Y
}

// Contains reports whether p is in the tree.
// Complexity: O(log n) on balanced input.
func (t *KdTree) Contains(p Point2D) bool {
	h := t.root
	for h != nil {
		if h.p == p {
			return true
		}
		if h.goesLeft(p) {
			h = h.lb
		} else {
			h = h.rt
		}
	}
	return false
}

// Range returns all points inside rect (borders count). Subtrees whose
// enclosing rectangle misses rect are skipped entirely.
func (t *KdTree) Range(rect Rect) []Point2D {
	out := []Point2D{}
	var walk func(h *node)
	walk = func(h *node) {
		if h == nil || !rect.Intersects(h.rect) {
			return
		}
		if rect.Contains(h.p) {
			out = append(out, h.p)
		}
		walk(h.lb)
		walk(h.rt)
	}
	walk(t.root)
	return out
}

// Nearest returns the stored point closest to p and true, or the zero
// point and false when the tree is empty. The search descends toward
// p's side first and skips any subtree whose rectangle is already
// farther than the best candidate.
func (t *KdTree) Nearest(p Point2D) (Point2D, bool) {
	if t.root == nil {
		return Point2D{}, false
	}
	best := t.root.p
	bestDist := p.DistanceSquaredTo(best)
	var walk func(h *node)
	walk = func(h *node) {
		if h == nil || h.rect.DistanceSquaredTo(p) >= bestDist {
			return
		}
		if d := p.DistanceSquaredTo(h.p); d < bestDist {
			best, bestDist = h.p, d
		}
		if h.goesLeft(p) {
			walk(h.lb)
			walk(h.rt)
		} else {
			walk(h.rt)
			walk(h.lb)
		}
	}
	walk(t.root)
	return best, true
}

// Package kdtree provides planar point-set structures for range and
// nearest-neighbor search.
//
// What:
//
//   - PointSET is the ordered-set baseline: exact but linear scans.
//   - KdTree is a 2d-tree: alternating vertical/horizontal splits give
//     pruned range and nearest-neighbor queries.
//   - Rect is an axis-aligned query rectangle.
//
// Why:
//
//   - The side-by-side pair shows what spatial partitioning buys over a
//     flat set: range and nearest queries touch only subtrees whose
//     bounding rectangles can still matter.
//
// Complexity (R = points reported, typical case on balanced input):
//
//   - PointSET Insert/Contains: O(log n); Range: O(n); Nearest: O(n).
//   - KdTree Insert/Contains: O(log n); Range: O(√n + R); Nearest: O(log n).
//     Degenerate insertion orders degrade the tree to a list.
//
// Both structures ignore duplicate insertions and are not safe for
// concurrent mutation.
package kdtree

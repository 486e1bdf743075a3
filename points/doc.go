// Package points detects maximal sets of 4 or more collinear points in
// the plane.
//
// What:
//
//   - Point is an integer-coordinate plane point with a natural order
//     (by y, then x) and a slope relation to other points.
//   - BruteCollinear checks every 4-point combination.
//   - FastCollinear sorts, per origin, the remaining points by the
//     slope they make with the origin; equal-slope runs of length ≥3
//     betray a collinear set.
//
// Why:
//
//   - The slope-sort detector is the classic demonstration that a
//     sorting pass can replace a combinatorial scan.
//
// Complexity:
//
//   - BruteCollinear: O(n⁴) time, O(1) extra space beyond the output.
//   - FastCollinear:  O(n² log n) time, O(n) extra space.
//
// Errors:
//
//   - ErrDuplicatePoint: the input contains the same point twice.
//
// Both detectors report each maximal segment exactly once, identified
// by its two extreme points in natural order.
package points

package points

import "sort"

// FastCollinear finds all maximal segments of 4 or more collinear
// points with the slope-sort technique: for every origin point, the
// remaining points are ordered by the slope they make with the origin,
// and each equal-slope run of length ≥3 marks a collinear set. A run is
// reported only when the origin is the minimum point of the set, so
// every maximal segment appears exactly once.
// Returns ErrDuplicatePoint if the input repeats a point.
// Complexity: O(n² log n) time, O(n) extra space.
func FastCollinear(pts []Point) ([]Segment, error) {
	sorted, err := sortedCopy(pts)
	if err != nil {
		return nil, err
	}
	n := len(sorted)

	segments := []Segment{}
	others := make([]Point, 0, n-1)
	for _, origin := range sorted {
		// Order the rest by slope to the origin; natural order within
		// an equal-slope run is preserved by the stable sort over the
		// naturally pre-sorted input.
		others = others[:0]
		for _, q := range sorted {
			if q != origin {
				others = append(others, q)
			}
		}
		sort.SliceStable(others, func(i, j int) bool {
			return origin.SlopeTo(others[i]) < origin.SlopeTo(others[j])
		})

		for lo := 0; lo < len(others); {
			hi := lo + 1
			s := origin.SlopeTo(others[lo])
			for hi < len(others) && origin.SlopeTo(others[hi]) == s {
				hi++
			}
			// Run of hi−lo collinear points plus the origin.
			if hi-lo >= 3 && origin.Less(others[lo]) {
				segments = append(segments, Segment{From: origin, To: others[hi-1]})
			}
			lo = hi
		}
	}
	return segments, nil
}

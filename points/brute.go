package points

import "sort"

// BruteCollinear finds all maximal segments of 4 or more collinear
// points by examining every combination of four points. Returns
// ErrDuplicatePoint if the input repeats a point.
// Complexity: O(n⁴) time.
func BruteCollinear(pts []Point) ([]Segment, error) {
	sorted, err := sortedCopy(pts)
	if err != nil {
		return nil, err
	}
	n := len(sorted)

	segments := []Segment{}
	for i := 0; i < n-3; i++ {
		p := sorted[i]
		for j := i + 1; j < n-2; j++ {
			s1 := p.SlopeTo(sorted[j])
			for k := j + 1; k < n-1; k++ {
				if p.SlopeTo(sorted[k]) != s1 {
					continue
				}
				for l := k + 1; l < n; l++ {
					if p.SlopeTo(sorted[l]) != s1 {
						continue
					}
					// sorted order makes p the minimum and sorted[l]
					// the maximum of the quadruple; keep the segment
					// only when no earlier point extends it, so each
					// maximal run is reported once.
					if !extendsEarlier(sorted, i, s1) {
						segments = appendMaximal(segments, Segment{From: p, To: sorted[l]}, s1)
					}
				}
			}
		}
	}
	return segments, nil
}

// extendsEarlier reports whether some point before index i lies on the
// same line through sorted[i] with slope s.
func extendsEarlier(sorted []Point, i int, s float64) bool {
	for e := 0; e < i; e++ {
		if sorted[e].SlopeTo(sorted[i]) == s {
			return true
		}
	}
	return false
}

// appendMaximal grows an already-recorded collinear segment instead of
// duplicating it: a 5-point line yields overlapping quadruples that all
// start at the same minimum point and slope.
func appendMaximal(segments []Segment, seg Segment, s float64) []Segment {
	for i, have := range segments {
		if have.From == seg.From && have.From.SlopeTo(have.To) == s {
			if have.To.Less(seg.To) {
				segments[i].To = seg.To
			}
			return segments
		}
	}
	return append(segments, seg)
}

// sortedCopy clones pts in natural order and rejects duplicates.
func sortedCopy(pts []Point) ([]Point, error) {
	sorted := make([]Point, len(pts))
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return nil, ErrDuplicatePoint
		}
	}
	return sorted, nil
}

package advanced

import "sort"

// Chord candidates. A chord joins two concave corners that share a
// coordinate, runs through the polygon interior, and once split along
// removes the concavity at both ends. Keeping the corner vertices around is
// what lets the splitter reach the corners' loop links later.
type Chord struct {
	// A and B are the corners' outgoing vertices, A before B along the
	// chord's axis.
	A, B *Vertex
	// Seg spans A -> B. It is not linked into any loop until the chord is
	// actually split; until then it only serves interval queries.
	Seg *Segment
}

// SegmentCrossing is a horizontal and a vertical chord whose open interiors
// intersect. Two crossing chords can never both be split.
type SegmentCrossing struct {
	H, V *Chord
}

// findDiagonals emits the chord candidates running along chordAxis. The
// opposite tree indexes the boundary segments of the other orientation;
// a candidate survives only if none of them lies strictly between its
// endpoints. Stabbing is closed-interval on purpose: a perpendicular segment
// that merely touches the chord's line marks a corner the chord would have
// to pass through, which is just as fatal as a proper crossing.
func findDiagonals(concave []*Vertex, chordAxis Axis, opposite *IntervalTree) []*Chord {
	if len(concave) < 2 {
		return nil
	}
	other := chordAxis.Other()

	sorted := make([]*Vertex, len(concave))
	copy(sorted, concave)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i].Point, sorted[j].Point
		if a.Along(other) != b.Along(other) {
			return a.Along(other) < b.Along(other)
		}
		return a.Along(chordAxis) < b.Along(chordAxis)
	})

	var chords []*Chord
	for i := 1; i < len(sorted); i++ {
		a, b := sorted[i-1], sorted[i]
		if a.Point.Along(other) != b.Point.Along(other) {
			continue
		}
		// Skip pairs already joined by a boundary edge. The edge shows up
		// either as a's outgoing segment ending at b, or as a's incoming
		// segment starting at b; both guards are needed, one per travel
		// direction of the shared edge.
		if a.Segment.End.Point == b.Point {
			continue
		}
		if a.Segment.Prev.Start.Point == b.Point {
			continue
		}

		fixed := a.Point.Along(other)
		lo := a.Point.Along(chordAxis)
		hi := b.Point.Along(chordAxis)
		blocked := opposite.Stab(fixed, func(s *Segment) bool {
			f := s.Fixed()
			return f > lo && f < hi
		})
		if blocked {
			continue
		}
		chords = append(chords, &Chord{
			A:   a,
			B:   b,
			Seg: NewSegment(chordAxis == AxisX, a.Point, b.Point),
		})
	}
	return chords
}

// findCrossings reports every (horizontal, vertical) chord pair where the
// vertical chord's x lies within the horizontal chord's closed x-span and the
// horizontal chord's y lies strictly inside the vertical chord's y-span.
// Chords that merely share an endpoint, or where the vertical chord ends on
// the horizontal one, do not cross.
func findCrossings(hChords, vChords []*Chord) []SegmentCrossing {
	if len(hChords) == 0 || len(vChords) == 0 {
		return nil
	}

	segs := make([]*Segment, len(hChords))
	bySeg := make(map[*Segment]*Chord, len(hChords))
	for i, h := range hChords {
		segs[i] = h.Seg
		bySeg[h.Seg] = h
	}
	tree := NewIntervalTree(segs)

	var crossings []SegmentCrossing
	for _, v := range vChords {
		x := v.Seg.Fixed()
		tree.Stab(x, func(h *Segment) bool {
			y := h.Fixed()
			if y > v.Seg.Lo && y < v.Seg.Hi {
				crossings = append(crossings, SegmentCrossing{H: bySeg[h], V: v})
			}
			return false
		})
	}
	return crossings
}

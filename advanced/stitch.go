package advanced

import "sort"

// Stitching glues the horizontal and vertical segment sets into closed
// doubly-linked loops. Every boundary corner is covered by exactly one
// horizontal and one vertical segment endpoint, so after sorting both vertex
// lists the i-th entries of each land on the same grid corner and identify
// the two segments meeting there.
//
// The two sort comparators are deliberately different: H-vertices break
// position ties by direction, V-vertices by direction with the sign flipped
// on incoming vertices. This asymmetry is a correctness requirement, not a
// convenience. At a 4-valent pinch corner (two diagonally touching pixels,
// or two diagonally touching holes) two H- and two V-vertices coincide, and
// only this tie-break pairs them so that the resulting loops stay planar and
// the pinch corners come out convex.

func hLess(a, b *Vertex) bool {
	if a.Point.X != b.Point.X {
		return a.Point.X < b.Point.X
	}
	if a.Point.Y != b.Point.Y {
		return a.Point.Y < b.Point.Y
	}
	return a.Direction() < b.Direction()
}

// The V tie-break key: direction for outgoing vertices, inverted for
// incoming ones.
func vKey(v *Vertex) Direction {
	if v.Sense == Incoming {
		return v.Direction().Opposite()
	}
	return v.Direction()
}

func vLess(a, b *Vertex) bool {
	if a.Point.X != b.Point.X {
		return a.Point.X < b.Point.X
	}
	if a.Point.Y != b.Point.Y {
		return a.Point.Y < b.Point.Y
	}
	return vKey(a) < vKey(b)
}

// stitchLoops links every segment into its loop and marks concave corners.
// It returns the concave corners, each canonicalized as the corner's
// outgoing vertex so that later phases can reach the corner's outgoing
// segment as vertex.Segment and its incoming one as vertex.Segment.Prev.
func stitchLoops(horizontal, vertical []*Segment) []*Vertex {
	hVerts := make([]*Vertex, 0, 2*len(horizontal))
	for _, s := range horizontal {
		hVerts = append(hVerts, s.Start, s.End)
	}
	vVerts := make([]*Vertex, 0, 2*len(vertical))
	for _, s := range vertical {
		vVerts = append(vVerts, s.Start, s.End)
	}
	if len(hVerts) != len(vVerts) {
		throwf(MalformedGeometry, "unbalanced boundary: %d horizontal vs %d vertical vertices", len(hVerts), len(vVerts))
	}

	sort.Slice(hVerts, func(i, j int) bool { return hLess(hVerts[i], hVerts[j]) })
	sort.Slice(vVerts, func(i, j int) bool { return vLess(vVerts[i], vVerts[j]) })

	var concave []*Vertex
	for i, h := range hVerts {
		v := vVerts[i]
		if h.Point != v.Point {
			throwf(MalformedGeometry, "paired vertices diverge: H at (%d,%d), V at (%d,%d)",
				h.Point.X, h.Point.Y, v.Point.X, v.Point.Y)
		}
		if h.Sense == v.Sense {
			throwf(MalformedGeometry, "paired vertices at (%d,%d) have the same sense", h.Point.X, h.Point.Y)
		}
		if h.Sense == Outgoing {
			// The loop runs ... -> v.Segment -> h.Segment -> ...
			h.Segment.Prev = v.Segment
			v.Segment.Next = h.Segment
			if h.Direction() == v.Direction() {
				h.Concave = true
				v.Concave = true
				concave = append(concave, h)
			}
		} else {
			// The loop runs ... -> h.Segment -> v.Segment -> ...
			h.Segment.Next = v.Segment
			v.Segment.Prev = h.Segment
			if h.Direction() != v.Direction() {
				h.Concave = true
				v.Concave = true
				concave = append(concave, v)
			}
		}
	}
	return concave
}

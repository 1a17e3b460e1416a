package advanced

// The full pipeline: scan the raster into oriented boundary segments, stitch
// them into loops, cut along a maximum independent set of concave-to-concave
// chords, resolve the leftover concave corners with Steiner chords, and walk
// the resulting loops. Everything lives for the duration of one call; there
// is no shared state between invocations.

// DecomposeRaster partitions the raster's foreground into a minimal set of
// axis-aligned rectangles. Panics with a typed error on invalid input or a
// broken invariant; use the root package for the recovering wrapper.
func DecomposeRaster(r Raster) []Rect {
	horizontal, vertical := scanBoundary(r)
	if len(horizontal) == 0 {
		return nil
	}
	concave := stitchLoops(horizontal, vertical)

	hTree := NewIntervalTree(horizontal)
	vTree := NewIntervalTree(vertical)
	hChords := findDiagonals(concave, AxisX, vTree)
	vChords := findDiagonals(concave, AxisY, hTree)
	selected := selectChords(hChords, vChords, findCrossings(hChords, vChords))
	splitChords(selected, &horizontal, &vertical)

	resolveConcave(concave, &horizontal, &vertical)

	return emitRects(append(horizontal, vertical...))
}

// ContoursOf extracts the stitched boundary loops without decomposing.
// Corners come out in traversal order with the filled side on the right, so
// outer boundaries are clockwise in screen coordinates and holes are not.
func ContoursOf(r Raster) []Contour {
	horizontal, vertical := scanBoundary(r)
	if len(horizontal) == 0 {
		return nil
	}
	stitchLoops(horizontal, vertical)

	loops := collectLoops(append(horizontal, vertical...))
	contours := make([]Contour, len(loops))
	for i, loop := range loops {
		pts := make([]Point, len(loop))
		for j, s := range loop {
			pts[j] = s.Start.Point
		}
		contours[i] = Contour{Points: pts, Hole: signedDoubleArea(pts) < 0}
	}
	return contours
}

// collectLoops walks every closed loop reachable from the given segments,
// checking the link invariants as it goes. Each segment appears in exactly
// one returned loop.
func collectLoops(segments []*Segment) [][]*Segment {
	for _, s := range segments {
		s.visited = false
	}
	total := len(segments)
	var loops [][]*Segment
	for _, s := range segments {
		if s.visited {
			continue
		}
		var loop []*Segment
		for cur := s; !cur.visited; cur = cur.Next {
			if cur.Next == nil || cur.Next.Prev != cur {
				throwf(InternalInvariant, "broken loop link after segment [%d,%d]", cur.Lo, cur.Hi)
			}
			cur.visited = true
			loop = append(loop, cur)
			if len(loop) > total {
				throwf(InternalInvariant, "loop walk did not close after %d segments", total)
			}
		}
		if loop[len(loop)-1].Next != s {
			throwf(InternalInvariant, "loop walk closed onto a side branch")
		}
		loops = append(loops, loop)
	}
	return loops
}

// emitRects turns every loop into a rectangle. By the time this runs the
// splitting phases must have removed all concavity, so anything that is not
// a clean four-corner clockwise loop is a pipeline bug.
func emitRects(segments []*Segment) []Rect {
	loops := collectLoops(segments)
	rects := make([]Rect, 0, len(loops))
	for _, loop := range loops {
		rects = append(rects, loopRect(loop))
	}
	return rects
}

func loopRect(loop []*Segment) Rect {
	first := loop[0].Start.Point
	r := Rect{XMin: first.X, YMin: first.Y, XMax: first.X, YMax: first.Y}
	corners := 0
	for i, s := range loop {
		p := s.Start.Point
		if p.X < r.XMin {
			r.XMin = p.X
		}
		if p.X > r.XMax {
			r.XMax = p.X
		}
		if p.Y < r.YMin {
			r.YMin = p.Y
		}
		if p.Y > r.YMax {
			r.YMax = p.Y
		}
		next := loop[(i+1)%len(loop)]
		if s.Horizontal == next.Horizontal {
			// A straight joint left over from a collinear split. Doubling
			// back would mean a degenerate loop.
			if s.Direction != next.Direction {
				throwf(InternalInvariant, "loop doubles back at (%d,%d)", next.Start.Point.X, next.Start.Point.Y)
			}
			continue
		}
		corners++
		if !turnsRight(s, next) {
			throwf(InternalInvariant, "reflex corner survived at (%d,%d)", next.Start.Point.X, next.Start.Point.Y)
		}
	}
	if corners != 4 {
		throwf(InternalInvariant, "emitted loop has %d corners, want 4", corners)
	}
	return r
}

// turnsRight reports whether the corner between s and its successor turns
// clockwise in screen coordinates (y down), which is the convex sense for
// loops carrying the filled side on their right.
func turnsRight(s, next *Segment) bool {
	var dx1, dy1, dx2, dy2 int
	if s.Horizontal {
		dx1 = int(s.Direction)
	} else {
		dy1 = int(s.Direction)
	}
	if next.Horizontal {
		dx2 = int(next.Direction)
	} else {
		dy2 = int(next.Direction)
	}
	return dx1*dy2-dy1*dx2 > 0
}

// Twice the signed area of a closed corner list. Positive means clockwise in
// screen coordinates, the winding of outer boundaries here.
func signedDoubleArea(pts []Point) int {
	sum := 0
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum
}

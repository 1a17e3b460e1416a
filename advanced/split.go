package advanced

// Splitting phase. Cutting the polygon along a chord replaces one loop with
// two: the chord is materialized as two oppositely directed segments, one
// spliced into each side. All of this is pointer surgery on the loop links;
// nothing is ever copied or deleted.

func registerSegment(s *Segment, horizontal, vertical *[]*Segment) {
	if s.Horizontal {
		*horizontal = append(*horizontal, s)
	} else {
		*vertical = append(*vertical, s)
	}
}

func segDirVec(s *Segment) (dx, dy int) {
	if s.Horizontal {
		return int(s.Direction), 0
	}
	return 0, int(s.Direction)
}

func cross2(ax, ay, bx, by int) int {
	return ax*by - ay*bx
}

// wedgeAccepts reports whether a chord leaving the corner with direction
// (ux, uy) fits into the interior wedge between an arriving and a departing
// segment. Both junction turns must be rightward or straight; a left turn
// would put the chord outside the wedge.
func wedgeAccepts(in, out *Segment, ux, uy int) bool {
	ix, iy := segDirVec(in)
	ox, oy := segDirVec(out)
	return cross2(ix, iy, ux, uy) >= 0 && cross2(-ux, -uy, ox, oy) >= 0
}

// chordSplitter cuts the polygon along the selected chords one by one.
//
// A corner can be the endpoint of two selected chords (one per axis; the
// strict-interior crossing rule does not make endpoint-sharing chords
// conflict). The first split at such a corner rewires the corner's links,
// so the concave vertex's recorded segment no longer identifies the right
// insertion slot for the second chord. The splitter therefore tracks every
// segment departing from each chord endpoint and picks the slot whose
// interior wedge actually contains the chord's direction.
type chordSplitter struct {
	horizontal *[]*Segment
	vertical   *[]*Segment
	departures map[Point][]*Segment
}

func splitChords(selected []*Chord, horizontal, vertical *[]*Segment) {
	sp := &chordSplitter{
		horizontal: horizontal,
		vertical:   vertical,
		departures: make(map[Point][]*Segment),
	}
	for _, c := range selected {
		sp.split(c)
	}
}

// slot finds the segment pair (departing, arriving) at the corner whose
// wedge contains the ray (ux, uy).
func (sp *chordSplitter) slot(v *Vertex, ux, uy int) (out, in *Segment) {
	cands, ok := sp.departures[v.Point]
	if !ok {
		cands = []*Segment{v.Segment}
		sp.departures[v.Point] = cands
	}
	for _, d := range cands {
		if wedgeAccepts(d.Prev, d, ux, uy) {
			return d, d.Prev
		}
	}
	throwf(InternalInvariant, "no interior wedge for chord at (%d,%d)", v.Point.X, v.Point.Y)
	panic("unreachable")
}

// split cuts along one concave-to-concave chord. Both corners become
// convex: the 270 degree interior angle at each end is divided by the chord
// into 90 + 180.
func (sp *chordSplitter) split(c *Chord) {
	a := c.Seg.Axis()
	var ux, uy int
	if a == AxisX {
		ux = int(c.Seg.Direction)
	} else {
		uy = int(c.Seg.Direction)
	}

	sA, spA := sp.slot(c.A, ux, uy)
	sB, spB := sp.slot(c.B, -ux, -uy)

	sab := c.Seg
	sba := NewSegment(sab.Horizontal, c.B.Point, c.A.Point)

	spA.Next = sab
	sab.Prev = spA
	sab.Next = sB
	sB.Prev = sab

	spB.Next = sba
	sba.Prev = spB
	sba.Next = sA
	sA.Prev = sba

	c.A.Concave = false
	spA.End.Concave = false
	c.B.Concave = false
	spB.End.Concave = false

	registerSegment(sab, sp.horizontal, sp.vertical)
	registerSegment(sba, sp.horizontal, sp.vertical)
	sp.departures[c.A.Point] = append(sp.departures[c.A.Point], sab)
	sp.departures[c.B.Point] = append(sp.departures[c.B.Point], sba)
}

// splitSegmentAt cuts t at an interior point p into two collinear pieces.
// t is shrunk in place so it keeps its identity and start vertex; the
// returned second piece takes over t's end vertex. The pieces are NOT linked
// to each other: the caller splices the chord in between.
func splitSegmentAt(t *Segment, p Point) *Segment {
	second := &Segment{Horizontal: t.Horizontal, Direction: t.Direction}
	second.Start = &Vertex{Point: p, Segment: second, Sense: Outgoing}
	second.End = t.End
	t.End.Segment = second
	second.Next = t.Next
	t.Next.Prev = second

	t.End = &Vertex{Point: p, Segment: t, Sense: Incoming}

	pa := p.Along(t.Axis())
	if t.Direction == Positive {
		second.Lo, second.Hi = pa, t.Hi
		t.Hi = pa
	} else {
		second.Lo, second.Hi = t.Lo, pa
		t.Lo = pa
	}
	return second
}

// resolveConcave eliminates every corner still concave after the chord
// phase. Each one gets a Steiner chord: the corner's incoming edge is
// extended straight through the corner until it strikes the nearest boundary
// segment of the outgoing edge's orientation. At a reflex corner that
// continuation always enters the interior, and the strike point exists in
// any closed polygon, so a miss is a structural bug.
//
// Every resolution removes one concave corner and creates none, so a single
// pass over the list terminates with all corners convex. Corners processed
// here were never touched by the chord phase, so their recorded segments
// are still the live insertion slot.
func resolveConcave(concave []*Vertex, horizontal, vertical *[]*Segment) {
	for _, v := range concave {
		if !v.Concave {
			continue
		}
		resolveOne(v, horizontal, vertical)
	}
}

func resolveOne(v *Vertex, horizontal, vertical *[]*Segment) {
	out := v.Segment
	in := out.Prev
	rayAxis := in.Axis()
	dir := in.Direction
	origin := v.Point.Along(rayAxis)

	// The struck segment shares out's orientation, so it is indexed by its
	// span along out's axis; the ray holds that coordinate constant. The
	// tree is rebuilt from scratch every time rather than maintained
	// incrementally; resolutions are rare compared to boundary size.
	var tree *IntervalTree
	if out.Horizontal {
		tree = NewIntervalTree(*horizontal)
	} else {
		tree = NewIntervalTree(*vertical)
	}
	stabAt := v.Point.Along(out.Axis())

	var nearest *Segment
	var best int
	tree.Stab(stabAt, func(s *Segment) bool {
		f := s.Fixed()
		if dir == Positive {
			if f > origin && (nearest == nil || f < best) {
				nearest, best = s, f
			}
		} else {
			if f < origin && (nearest == nil || f > best) {
				nearest, best = s, f
			}
		}
		return false
	})
	if nearest == nil {
		throwf(InternalInvariant, "no opposing segment resolving concave corner (%d,%d)", v.Point.X, v.Point.Y)
	}

	var p Point
	if out.Horizontal {
		p = Point{X: v.Point.X, Y: best}
	} else {
		p = Point{X: best, Y: v.Point.Y}
	}

	// Usually the strike lands strictly inside the struck segment and splits
	// it in two. Landing exactly on one of its corners means the chord can
	// reuse that corner; the perpendicular edge attached there necessarily
	// points away from the ray, otherwise a nearer strike would have existed.
	var sB, spB *Segment
	switch p {
	case nearest.Start.Point:
		sB, spB = nearest, nearest.Prev
	case nearest.End.Point:
		sB, spB = nearest.Next, nearest
	default:
		second := splitSegmentAt(nearest, p)
		registerSegment(second, horizontal, vertical)
		sB, spB = second, nearest
	}
	if sB.Start.Point != p || spB.End.Point != p {
		throwf(InternalInvariant, "resolver strike at (%d,%d) does not meet the boundary", p.X, p.Y)
	}

	sab := NewSegment(rayAxis == AxisX, v.Point, p)
	sba := NewSegment(rayAxis == AxisX, p, v.Point)
	sA := out
	spA := in

	spA.Next = sab
	sab.Prev = spA
	sab.Next = sB
	sB.Prev = sab

	spB.Next = sba
	sba.Prev = spB
	sba.Next = sA
	sA.Prev = sba

	v.Concave = false
	spA.End.Concave = false
	sB.Start.Concave = false
	spB.End.Concave = false

	registerSegment(sab, horizontal, vertical)
	registerSegment(sba, horizontal, vertical)
}

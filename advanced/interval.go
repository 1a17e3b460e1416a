package advanced

import "sort"

// A static centered interval tree over segments, keyed by their canonical
// [Lo, Hi] interval. Used to answer stabbing queries: which segments'
// intervals contain a given coordinate? Intervals are closed on both ends,
// so a query at an exact endpoint is a hit. Duplicate intervals are kept.
//
// The tree is immutable once built. The pipeline rebuilds it wholesale after
// splitting instead of updating it in place; wasteful, but split phases are
// rare and correctness is easier to see.
type IntervalTree struct {
	mid         int
	left, right *IntervalTree
	// Two views of the segments straddling mid: one ascending by Lo for
	// queries left of center, one ascending by Hi for queries right of it.
	byLo []*Segment
	byHi []*Segment
}

// Visitor for stabbing queries. Returning true stops the query immediately;
// the stop propagates out of Stab.
type IntervalVisitor func(*Segment) bool

// NewIntervalTree builds a tree over the given segments. Returns nil for an
// empty set; a nil tree answers every query with no hits.
func NewIntervalTree(segments []*Segment) *IntervalTree {
	if len(segments) == 0 {
		return nil
	}

	endpoints := make([]int, 0, 2*len(segments))
	for _, s := range segments {
		endpoints = append(endpoints, s.Lo, s.Hi)
	}
	sort.Ints(endpoints)
	mid := endpoints[len(endpoints)/2]

	t := &IntervalTree{mid: mid}
	var left, right []*Segment
	for _, s := range segments {
		switch {
		case s.Hi < mid:
			left = append(left, s)
		case s.Lo > mid:
			right = append(right, s)
		default:
			t.byLo = append(t.byLo, s)
		}
	}

	t.byHi = make([]*Segment, len(t.byLo))
	copy(t.byHi, t.byLo)
	sort.SliceStable(t.byLo, func(i, j int) bool { return t.byLo[i].Lo < t.byLo[j].Lo })
	sort.SliceStable(t.byHi, func(i, j int) bool { return t.byHi[i].Hi < t.byHi[j].Hi })

	// At least one interval must straddle mid (mid is one of the endpoints),
	// so both recursions strictly shrink.
	t.left = NewIntervalTree(left)
	t.right = NewIntervalTree(right)
	return t
}

// Stab visits every segment whose interval contains x. Returns true if the
// visitor stopped the query.
func (t *IntervalTree) Stab(x int, visit IntervalVisitor) bool {
	if t == nil {
		return false
	}
	switch {
	case x < t.mid:
		if t.left.Stab(x, visit) {
			return true
		}
		for _, s := range t.byLo {
			if s.Lo > x {
				break
			}
			if visit(s) {
				return true
			}
		}
	case x > t.mid:
		if t.right.Stab(x, visit) {
			return true
		}
		for i := len(t.byHi) - 1; i >= 0; i-- {
			s := t.byHi[i]
			if s.Hi < x {
				break
			}
			if visit(s) {
				return true
			}
		}
	default:
		for _, s := range t.byLo {
			if visit(s) {
				return true
			}
		}
	}
	return false
}

package advanced

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diagonalsFor(t *testing.T, grid Grid) (hChords, vChords []*Chord) {
	horizontal, vertical, concave := scanAndStitch(t, grid)
	hTree := NewIntervalTree(horizontal)
	vTree := NewIntervalTree(vertical)
	hChords = findDiagonals(concave, AxisX, vTree)
	vChords = findDiagonals(concave, AxisY, hTree)
	return
}

func chordSpans(chords []*Chord) [][4]int {
	out := make([][4]int, len(chords))
	for i, c := range chords {
		out[i] = [4]int{c.A.Point.X, c.A.Point.Y, c.B.Point.X, c.B.Point.Y}
	}
	sort.Slice(out, func(i, j int) bool {
		for k := 0; k < 4; k++ {
			if out[i][k] != out[j][k] {
				return out[i][k] < out[j][k]
			}
		}
		return false
	})
	return out
}

func TestDiagonalsDonutSkipsBoundaryEdges(t *testing.T) {
	// Every pair of the hole's corners is joined by a hole edge, so both
	// degenerate-chord guards must fire and nothing may be emitted.
	hChords, vChords := diagonalsFor(t, Grid{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	})
	assert.Empty(t, hChords)
	assert.Empty(t, vChords)
}

func TestDiagonalsPlus(t *testing.T) {
	// The four reflex corners of a plus pair up along both axes.
	hChords, vChords := diagonalsFor(t, Grid{
		{0, 1, 0},
		{1, 1, 1},
		{0, 1, 0},
	})
	assert.Equal(t, [][4]int{{1, 1, 2, 1}, {1, 2, 2, 2}}, chordSpans(hChords))
	assert.Equal(t, [][4]int{{1, 1, 1, 2}, {2, 1, 2, 2}}, chordSpans(vChords))
}

func TestDiagonalsBlockedByOpposingSegment(t *testing.T) {
	// Diagonally pinched holes: the candidate between (2,1) and (2,3) is cut
	// off by the horizontal hole edges touching x=2 at y=2, the candidate
	// between (1,2) and (3,2) by the vertical hole edges touching y=2 at x=2,
	// and every other pair is a boundary edge.
	hChords, vChords := diagonalsFor(t, Grid{
		{1, 1, 1, 1},
		{1, 1, 0, 1},
		{1, 0, 1, 1},
		{1, 1, 1, 1},
	})
	assert.Empty(t, hChords)
	assert.Empty(t, vChords)
}

func TestDiagonalsTwoAlignedHoles(t *testing.T) {
	// Two 1x1 holes side by side; the only viable chords run through the
	// filled gap between them, one along the holes' top line and one along
	// their bottom line.
	hChords, vChords := diagonalsFor(t, Grid{
		{1, 1, 1, 1, 1},
		{1, 0, 1, 0, 1},
		{1, 1, 1, 1, 1},
	})
	assert.Equal(t, [][4]int{{2, 1, 3, 1}, {2, 2, 3, 2}}, chordSpans(hChords))
	assert.Empty(t, vChords)
}

func testChord(horizontal bool, from, to Point) *Chord {
	seg := NewSegment(horizontal, from, to)
	return &Chord{A: seg.Start, B: seg.End, Seg: seg}
}

func TestFindCrossings(t *testing.T) {
	h := []*Chord{
		testChord(true, Point{1, 1}, Point{3, 1}),
		testChord(true, Point{1, 2}, Point{6, 2}),
		testChord(true, Point{1, 4}, Point{4, 4}),
		testChord(true, Point{1, 5}, Point{6, 5}),
	}
	v := []*Chord{
		testChord(false, Point{2, 1}, Point{2, 3}),
		testChord(false, Point{5, 3}, Point{5, 6}),
	}

	crossings := findCrossings(h, v)
	require.Len(t, crossings, 2)

	got := make(map[[2]*Chord]bool)
	for _, c := range crossings {
		got[[2]*Chord{c.H, c.V}] = true
	}
	assert.True(t, got[[2]*Chord{h[1], v[0]}], "(1,2)-(6,2) must cross (2,1)-(2,3)")
	assert.True(t, got[[2]*Chord{h[3], v[1]}], "(1,5)-(6,5) must cross (5,3)-(5,6)")
}

func TestFindCrossingsEndpointTouchIsNotACrossing(t *testing.T) {
	// Chords sharing an endpoint, or meeting in a T, have no open-interior
	// intersection.
	shared := []*Chord{testChord(true, Point{1, 1}, Point{4, 1})}
	assert.Empty(t, findCrossings(shared, []*Chord{testChord(false, Point{1, 1}, Point{1, 3})}))
	assert.Empty(t, findCrossings(shared, []*Chord{testChord(false, Point{2, 1}, Point{2, 3})}))
	// But a proper crossing is one.
	assert.Len(t, findCrossings(shared, []*Chord{testChord(false, Point{2, 0}, Point{2, 3})}), 1)
}

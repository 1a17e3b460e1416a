package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Shared test helpers. The decomposition has a strong end-to-end law: paint
// the emitted rectangles back onto a grid of the input's shape and you must
// reproduce the input exactly, with no cell painted twice. Most tests lean
// on that instead of asserting exact rectangle layouts, which are an
// implementation detail.

func rasterizeRects(t *testing.T, rects []Rect, rows, cols int) [][]int {
	paint := make([][]int, rows)
	for i := range paint {
		paint[i] = make([]int, cols)
	}
	for _, r := range rects {
		require.Less(t, r.XMin, r.XMax, "rectangle %v has no width", r)
		require.Less(t, r.YMin, r.YMax, "rectangle %v has no height", r)
		require.GreaterOrEqual(t, r.XMin, 0)
		require.GreaterOrEqual(t, r.YMin, 0)
		require.LessOrEqual(t, r.XMax, cols)
		require.LessOrEqual(t, r.YMax, rows)
		for y := r.YMin; y < r.YMax; y++ {
			for x := r.XMin; x < r.XMax; x++ {
				paint[y][x]++
			}
		}
	}
	return paint
}

// assertExactCover checks the round-trip law: every foreground cell painted
// exactly once, every background cell untouched.
func assertExactCover(t *testing.T, grid Grid, rects []Rect) {
	rows, cols := grid.Shape()
	paint := rasterizeRects(t, rects, rows, cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			want := 0
			if grid.At(y, x) != 0 {
				want = 1
			}
			assert.Equal(t, want, paint[y][x], "cell (row %d, col %d)", y, x)
		}
	}
}

// assertLoopInvariants checks the structural laws every stitched segment set
// obeys: symmetric links, closed walks, balanced vertex senses, and an even
// segment count per axis.
func assertLoopInvariants(t *testing.T, horizontal, vertical []*Segment) {
	all := append(append([]*Segment{}, horizontal...), vertical...)
	for _, s := range all {
		require.NotNil(t, s.Next, "segment has no successor")
		require.NotNil(t, s.Prev, "segment has no predecessor")
		assert.Same(t, s, s.Next.Prev, "next.prev broken")
		assert.Same(t, s, s.Prev.Next, "prev.next broken")
	}
	assert.Zero(t, len(horizontal)%2, "odd horizontal segment count")
	assert.Zero(t, len(vertical)%2, "odd vertical segment count")

	outgoing, incoming := 0, 0
	for _, s := range all {
		if s.Start != nil {
			outgoing++
		}
		if s.End != nil {
			incoming++
		}
	}
	assert.Equal(t, outgoing, incoming)

	// Every walk must return to its origin within the total segment count.
	for _, s := range all {
		cur := s
		closed := false
		for i := 0; i < len(all); i++ {
			cur = cur.Next
			if cur == s {
				closed = true
				break
			}
		}
		assert.True(t, closed, "walk from a segment never returned")
	}
}

// scanAndStitch runs the first two pipeline stages, returning everything the
// later stages would consume.
func scanAndStitch(t *testing.T, grid Grid) (horizontal, vertical []*Segment, concave []*Vertex) {
	horizontal, vertical = scanBoundary(grid)
	if len(horizontal) == 0 {
		return
	}
	concave = stitchLoops(horizontal, vertical)
	assertLoopInvariants(t, horizontal, vertical)
	return
}

func concavePoints(concave []*Vertex) []Point {
	pts := make([]Point, len(concave))
	for i, v := range concave {
		pts[i] = v.Point
	}
	return pts
}

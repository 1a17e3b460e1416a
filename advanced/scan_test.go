package advanced

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func segmentEndpoints(segs []*Segment) [][4]int {
	out := make([][4]int, len(segs))
	for i, s := range segs {
		out[i] = [4]int{s.Start.Point.X, s.Start.Point.Y, s.End.Point.X, s.End.Point.Y}
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

func TestScanEmpty(t *testing.T) {
	h, v := scanBoundary(Grid{})
	assert.Empty(t, h)
	assert.Empty(t, v)

	h, v = scanBoundary(Grid{{0, 0}, {0, 0}})
	assert.Empty(t, h)
	assert.Empty(t, v)
}

func TestScanSinglePixel(t *testing.T) {
	h, v := scanBoundary(Grid{{1}})
	require.Len(t, h, 2)
	require.Len(t, v, 2)

	// Filled side on the right: top edge runs east, bottom edge west, west
	// edge north, east edge south.
	assert.Equal(t, [][4]int{{0, 0, 1, 0}, {1, 1, 0, 1}}, segmentEndpoints(h))
	assert.Equal(t, [][4]int{{0, 1, 0, 0}, {1, 0, 1, 1}}, segmentEndpoints(v))
}

func TestScanMergesRuns(t *testing.T) {
	// A 1x3 bar produces one segment per side, not one per pixel.
	h, v := scanBoundary(Grid{{1, 1, 1}})
	require.Len(t, h, 2)
	require.Len(t, v, 2)
	assert.Equal(t, [][4]int{{0, 0, 3, 0}, {3, 1, 0, 1}}, segmentEndpoints(h))
	assert.Equal(t, [][4]int{{0, 1, 0, 0}, {3, 0, 3, 1}}, segmentEndpoints(v))
}

func TestScanRunBreaksOnPatternChange(t *testing.T) {
	// Two bars of different rows share the wall column; the wall must break
	// where the fill pattern flips sides.
	grid := Grid{
		{1, 0},
		{0, 1},
	}
	h, v := scanBoundary(grid)
	assert.Len(t, h, 4)
	assert.Len(t, v, 4)

	// The shared wall at x=1 carries one segment per pixel, not a merged one.
	var atWall [][4]int
	for _, s := range v {
		if s.Start.Point.X == 1 {
			atWall = append(atWall, [4]int{s.Start.Point.X, s.Start.Point.Y, s.End.Point.X, s.End.Point.Y})
		}
	}
	sort.Slice(atWall, func(i, j int) bool { return atWall[i][1] < atWall[j][1] })
	assert.Equal(t, [][4]int{{1, 0, 1, 1}, {1, 2, 1, 1}}, atWall)
}

func TestScanDonut(t *testing.T) {
	grid := Grid{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	}
	h, v := scanBoundary(grid)
	// Outer square plus hole square, one segment per side each.
	require.Len(t, h, 4)
	require.Len(t, v, 4)

	// Hole edges carry the filled side on their right too, which makes the
	// hole wind the other way: its west edge runs south.
	assert.Contains(t, segmentEndpoints(v), [4]int{1, 1, 1, 2})
	// Outer west edge runs north.
	assert.Contains(t, segmentEndpoints(v), [4]int{0, 3, 0, 0})
}

func TestScanDirectionsAndSpans(t *testing.T) {
	h, v := scanBoundary(Grid{{1, 1}, {1, 1}})
	for _, s := range append(append([]*Segment{}, h...), v...) {
		assert.LessOrEqual(t, s.Lo, s.Hi)
		a := s.Axis()
		if s.Direction == Positive {
			assert.Equal(t, s.Lo, s.Start.Point.Along(a))
			assert.Equal(t, s.Hi, s.End.Point.Along(a))
		} else {
			assert.Equal(t, s.Hi, s.Start.Point.Along(a))
			assert.Equal(t, s.Lo, s.End.Point.Along(a))
		}
	}
}

func TestScanRaggedGridThrows(t *testing.T) {
	defer func() {
		err := HandleDecomposePanicRecover(recover())
		require.Error(t, err)
		var derr *Error
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, InvalidInput, derr.Kind)
	}()
	scanBoundary(Grid{{1, 1}, {1}})
	t.Fatal("expected a panic on ragged input")
}

package advanced

// Boundary extraction. The raster is walked twice: once between adjacent
// columns to emit vertical segments, once between adjacent rows for the
// horizontal ones. Each pass slides along a "wall" between two pixel lanes
// (including the synthetic walls hugging the raster edges, where the outside
// counts as background) and emits a segment whenever the fill pattern across
// the wall changes.
//
// Orientation follows the right-hand rule: the filled side lies to the right
// of travel. That makes outer boundaries clockwise in screen coordinates and
// holes counter-clockwise, which is all downstream stitching relies on.

func scanBoundary(r Raster) (horizontal, vertical []*Segment) {
	rows, cols := checkRaster(r)

	// Vertical segments: walls between column i-1 and column i. The right
	// lane (column i) filled means the segment runs upward, negative y.
	for i := 0; i <= cols; i++ {
		lastLeft, lastRight := false, false
		segStart := 0
		for row := 0; row <= rows; row++ {
			left := at(r, rows, cols, row, i-1) != 0
			right := at(r, rows, cols, row, i) != 0
			if left == lastLeft && right == lastRight {
				continue
			}
			if lastLeft != lastRight {
				if lastRight {
					vertical = append(vertical, NewSegment(false, Point{i, row}, Point{i, segStart}))
				} else {
					vertical = append(vertical, NewSegment(false, Point{i, segStart}, Point{i, row}))
				}
			}
			if left != right {
				segStart = row
			}
			lastLeft, lastRight = left, right
		}
	}

	// Horizontal segments: the transposed walk, walls between row j-1 and
	// row j. The lower lane (row j) filled means the segment runs in
	// positive x.
	for j := 0; j <= rows; j++ {
		lastUpper, lastLower := false, false
		segStart := 0
		for col := 0; col <= cols; col++ {
			upper := at(r, rows, cols, j-1, col) != 0
			lower := at(r, rows, cols, j, col) != 0
			if upper == lastUpper && lower == lastLower {
				continue
			}
			if lastUpper != lastLower {
				if lastLower {
					horizontal = append(horizontal, NewSegment(true, Point{segStart, j}, Point{col, j}))
				} else {
					horizontal = append(horizontal, NewSegment(true, Point{col, j}, Point{segStart, j}))
				}
			}
			if upper != lower {
				segStart = col
			}
			lastUpper, lastLower = upper, lower
		}
	}

	return horizontal, vertical
}

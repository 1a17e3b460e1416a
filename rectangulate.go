// Package rectangulate converts a binary raster into axis-aligned polygonal
// boundary loops, and partitions the foreground into a minimal number of
// axis-aligned rectangles.
//
// The pipeline extracts oriented boundary segments from the raster, stitches
// them into closed loops, then eliminates every concave corner: first by
// cutting along a maximum independent set of non-crossing concave-to-concave
// chords (König's theorem over the bipartite chord crossing graph, which is
// what makes the rectangle count minimal), then by extending Steiner chords
// from whatever concave corners remain. What is left is a set of rectangles.
package rectangulate

import "github.com/osuushi/rectangulate/advanced"

type Point = advanced.Point
type Rect = advanced.Rect
type Contour = advanced.Contour
type Raster = advanced.Raster
type Grid = advanced.Grid

// Error kinds, for callers that want to distinguish bad input from internal
// failures via errors.As.
type Error = advanced.Error
type Kind = advanced.Kind

const (
	InvalidInput      = advanced.InvalidInput
	MalformedGeometry = advanced.MalformedGeometry
	InternalInvariant = advanced.InternalInvariant
)

// Decompose partitions the raster's foreground pixels into rectangles whose
// interiors are pairwise disjoint and whose union is exactly the foreground.
// Zero cells are background, everything else is foreground.
func Decompose(raster Raster) (result []Rect, err error) {
	defer func() {
		recoveredErr := advanced.HandleDecomposePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.DecomposeRaster(raster), nil
}

// DecomposeGrid is Decompose for a plain [][]int, rows first.
func DecomposeGrid(cells [][]int) ([]Rect, error) {
	return Decompose(Grid(cells))
}

// Contours extracts the closed boundary loops of the raster's foreground
// without decomposing them. Loops carry the filled side on their right;
// holes are marked.
func Contours(raster Raster) (result []Contour, err error) {
	defer func() {
		recoveredErr := advanced.HandleDecomposePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.ContoursOf(raster), nil
}

// ContoursGrid is Contours for a plain [][]int, rows first.
func ContoursGrid(cells [][]int) ([]Contour, error) {
	return Contours(Grid(cells))
}

package advanced

import (
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

const dbgDrawScale = 32
const dbgDrawPadding = 16

// DebugDraw scans the raster and renders its boundary loops together with a
// rectangle cover. Companion of DebugDump, reachable through the demo CLI's
// --debug flag.
func DebugDraw(r Raster, rects []Rect) {
	horizontal, vertical := scanBoundary(r)
	if len(horizontal) == 0 {
		return
	}
	stitchLoops(horizontal, vertical)
	dbgDraw(collectLoops(append(horizontal, vertical...)), rects)
}

// dbgDraw renders the current loops and an optional rectangle cover to a PNG
// and cats it to the terminal. Filled area green, boundaries cyan, rectangle
// seams magenta.
func dbgDraw(loops [][]*Segment, rects []Rect) {
	maxX, maxY := 1, 1
	for _, loop := range loops {
		for _, s := range loop {
			for _, p := range []Point{s.Start.Point, s.End.Point} {
				if p.X > maxX {
					maxX = p.X
				}
				if p.Y > maxY {
					maxY = p.Y
				}
			}
		}
	}

	width := dbgDrawScale*maxX + dbgDrawPadding*2
	height := dbgDrawScale*maxY + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(dbgDrawScale, dbgDrawScale)

	c.SetLineWidth(2 / float64(dbgDrawScale))
	for _, loop := range loops {
		p := loop[0].Start.Point
		c.MoveTo(float64(p.X), float64(p.Y))
		for _, s := range loop[1:] {
			c.LineTo(float64(s.Start.Point.X), float64(s.Start.Point.Y))
		}
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	c.SetRGB(1, 0, 1)
	for _, r := range rects {
		c.DrawRectangle(float64(r.XMin), float64(r.YMin), float64(r.Width()), float64(r.Height()))
		c.Stroke()
	}

	c.SavePNG("/tmp/rectangulate.png")
	imgcat.CatFile("/tmp/rectangulate.png", os.Stdout)
}

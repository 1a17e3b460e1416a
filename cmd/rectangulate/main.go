package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/rectangulate"
	"github.com/osuushi/rectangulate/advanced"
)

// Demo of rectangle decomposition. Input is a text raster, one row per line,
// where '1' or '#' mark foreground and '0', '.' or ' ' mark background:
//
//	###.
//	#.##
//	####
//
// Prints the rectangle cover, and optionally renders it to a PNG catted to
// the terminal.

var (
	input    = kingpin.Arg("input", "Raster file to read (defaults to stdin).").File()
	contours = kingpin.Flag("contours", "Print boundary loops instead of rectangles.").Bool()
	png      = kingpin.Flag("png", "Render the result to this PNG file and cat it.").String()
	scale    = kingpin.Flag("scale", "Pixels per raster cell in the rendering.").Default("32").Int()
	debug    = kingpin.Flag("debug", "Dump the stitched loops and cat a render of the decomposition.").Bool()
)

func main() {
	kingpin.Parse()

	in := os.Stdin
	if *input != nil {
		in = *input
	}
	grid := readGrid(in)

	if *debug {
		fmt.Println(advanced.DebugDump(advanced.Grid(grid)))
	}

	if *contours {
		loops, err := rectangulate.ContoursGrid(grid)
		kingpin.FatalIfError(err, "extracting contours")
		for _, loop := range loops {
			kind := "boundary"
			if loop.Hole {
				kind = "hole"
			}
			fmt.Printf("%s:", kind)
			for _, p := range loop.Points {
				fmt.Printf(" (%d,%d)", p.X, p.Y)
			}
			fmt.Println()
		}
		return
	}

	rects, err := rectangulate.DecomposeGrid(grid)
	kingpin.FatalIfError(err, "decomposing raster")
	for _, r := range rects {
		fmt.Printf("(%d, %d) - (%d, %d)\n", r.XMin, r.YMin, r.XMax, r.YMax)
	}
	if *debug {
		advanced.DebugDraw(advanced.Grid(grid), rects)
	}
	if *png != "" {
		render(grid, rects, *png)
	}
}

func readGrid(in *os.File) [][]int {
	var grid [][]int
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		row := make([]int, 0, len(line))
		for _, c := range line {
			switch c {
			case '0', '.', ' ':
				row = append(row, 0)
			default:
				row = append(row, 1)
			}
		}
		grid = append(grid, row)
	}
	// Ragged input would be rejected by the library; pad instead, since text
	// editors love trimming trailing whitespace.
	width := 0
	for _, row := range grid {
		if len(row) > width {
			width = len(row)
		}
	}
	for i, row := range grid {
		for len(row) < width {
			row = append(row, 0)
		}
		grid[i] = row
	}
	return grid
}

func render(grid [][]int, rects []rectangulate.Rect, path string) {
	rows := len(grid)
	cols := 0
	if rows > 0 {
		cols = len(grid[0])
	}
	s := float64(*scale)
	c := gg.NewContext(int(s)*cols+1, int(s)*rows+1)
	c.SetRGB(0, 0, 0)
	c.Clear()

	c.SetRGB(0, 0.5, 0)
	for y, row := range grid {
		for x, cell := range row {
			if cell != 0 {
				c.DrawRectangle(float64(x)*s, float64(y)*s, s, s)
				c.Fill()
			}
		}
	}

	c.SetRGB(1, 0, 1)
	c.SetLineWidth(2)
	for _, r := range rects {
		c.DrawRectangle(float64(r.XMin)*s, float64(r.YMin)*s, float64(r.Width())*s, float64(r.Height())*s)
		c.Stroke()
	}

	err := c.SavePNG(path)
	kingpin.FatalIfError(err, "writing %s", path)
	imgcat.CatFile(path, os.Stdout)
}

package advanced

// Raster is the input to the decomposition: a read-only 2D grid of cells
// where zero means background and anything else means foreground.
type Raster interface {
	Shape() (rows, cols int)
	At(row, col int) int
}

// Grid adapts a [][]int to the Raster interface. The outer slice holds rows.
type Grid [][]int

func (g Grid) Shape() (rows, cols int) {
	rows = len(g)
	if rows > 0 {
		cols = len(g[0])
	}
	return
}

func (g Grid) At(row, col int) int {
	return g[row][col]
}

// checkRaster validates the shape before scanning and returns it. A Grid is
// additionally checked for raggedness, since indexing a short row later
// would crash with a plain runtime panic instead of a typed error.
func checkRaster(r Raster) (rows, cols int) {
	rows, cols = r.Shape()
	if rows < 0 || cols < 0 {
		throwf(InvalidInput, "raster shape %dx%d is not a grid", rows, cols)
	}
	if g, ok := r.(Grid); ok {
		for i, row := range g {
			if len(row) != cols {
				throwf(InvalidInput, "raster row %d has %d cells, want %d", i, len(row), cols)
			}
		}
	}
	return
}

// at reads a cell, treating everything outside the raster as background.
func at(r Raster, rows, cols, row, col int) int {
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return 0
	}
	return r.At(row, col)
}

package core

// Grid maps linear cell indices to (x, y) coordinates in row-major order.
type Grid struct {
	W, H int
}

// NewGrid returns a grid with the given dimensions, clamped to at least 1x1.
func NewGrid(w, h int) Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Grid{W: w, H: h}
}

// GridForSurface derives the grid that fits a width x height pixel surface
// when every cell occupies pixelSize x pixelSize pixels.
func GridForSurface(width, height, pixelSize int) Grid {
	if pixelSize <= 0 {
		pixelSize = 1
	}
	return NewGrid(width/pixelSize, height/pixelSize)
}

// Size returns the grid dimensions.
func (g Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Len returns the number of cells.
func (g Grid) Len() int { return g.W * g.H }

// Index returns the linear index for coordinates (x, y).
func (g Grid) Index(x, y int) int { return y*g.W + x }

// Coords returns the (x, y) coordinates of linear index i.
func (g Grid) Coords(i int) (int, int) { return i % g.W, i / g.W }

// InBounds reports whether (x, y) lies inside the grid.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Manhattan returns the taxicab distance between cells a and b.
func (g Grid) Manhattan(a, b int) int {
	ax, ay := g.Coords(a)
	bx, by := g.Coords(b)
	return Distance(ax, ay, bx, by)
}

// FarthestCorner returns the Manhattan distance from (x, y) to the most
// distant corner of the grid.
func (g Grid) FarthestCorner(x, y int) int {
	return max(x, g.W-1-x) + max(y, g.H-1-y)
}

// Distance returns |x1-x2| + |y1-y2|.
func Distance(x1, y1, x2, y2 int) int {
	return absInt(x1-x2) + absInt(y1-y2)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package render

import (
	"image"
	"image/color"

	"prims-maze/internal/maze"
	"prims-maze/internal/palette"
)

var (
	// Background fills every pixel no visited cell covers.
	Background = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
	// WallColor is used for every remaining wall.
	WallColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// cellShade darkens palette colors so walls stand out.
const cellShade = 0.8

// WallThickness returns the wall strip width for a cell size.
func WallThickness(pixelSize int) int {
	t := pixelSize / 5
	if t < 1 {
		return 1
	}
	if t > 2 {
		return 2
	}
	return t
}

// NewCanvas allocates an image sized for m at pixelSize.
func NewCanvas(m *maze.Model, pixelSize int) *image.RGBA {
	g := m.Grid()
	return image.NewRGBA(image.Rect(0, 0, g.W*pixelSize, g.H*pixelSize))
}

// CellFilled reports whether cell i gets a palette fill: it was visited, or
// it lies in a room whose whole perimeter has been visited.
func CellFilled(m *maze.Model, i int) bool {
	c := m.Cell(i)
	if c.Visited {
		return true
	}
	s := m.Structure(c.Structure)
	return s.Kind == maze.KindRoom && m.RoomRevealed(c.Structure)
}

// Rasterize draws m into dst: background, shaded palette fills for filled
// cells at time now, then white strips for every wall still standing.
func Rasterize(dst *image.RGBA, m *maze.Model, pal palette.Palette, now int64, pixelSize int) {
	if m == nil || pixelSize <= 0 {
		return
	}
	fillRect(dst, dst.Bounds(), Background)

	maxDistance := m.MaxDistance()
	for i, c := range m.Cells() {
		if !CellFilled(m, i) {
			continue
		}
		col := palette.Shade(pal.Select(c.Distance, maxDistance, now), cellShade)
		x, y := c.X*pixelSize, c.Y*pixelSize
		fillRect(dst, image.Rect(x, y, x+pixelSize, y+pixelSize), col)
	}

	t := WallThickness(pixelSize)
	for i, c := range m.Cells() {
		x, y := c.X*pixelSize, c.Y*pixelSize
		walls := m.Walls(i)
		if walls[maze.North] {
			fillRect(dst, image.Rect(x, y, x+pixelSize, y+t), WallColor)
		}
		if walls[maze.East] {
			fillRect(dst, image.Rect(x+pixelSize-t, y, x+pixelSize, y+pixelSize), WallColor)
		}
		if walls[maze.South] {
			fillRect(dst, image.Rect(x, y+pixelSize-t, x+pixelSize, y+pixelSize), WallColor)
		}
		if walls[maze.West] {
			fillRect(dst, image.Rect(x, y, x+t, y+pixelSize), WallColor)
		}
	}
}

// fillRect writes c straight into the pixel buffer, clipped to dst.
func fillRect(dst *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		off := dst.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.Pix[off+0] = c.R
			dst.Pix[off+1] = c.G
			dst.Pix[off+2] = c.B
			dst.Pix[off+3] = c.A
			off += 4
		}
	}
}

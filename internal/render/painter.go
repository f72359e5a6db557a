//go:build ebiten

package render

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"prims-maze/internal/maze"
	"prims-maze/internal/palette"
)

// Painter rasterizes a maze on the CPU and uploads it to one ebiten image.
type Painter struct {
	raster *image.RGBA
	img    *ebiten.Image
}

// NewPainter returns an empty painter; images are allocated on first use.
func NewPainter() *Painter { return &Painter{} }

// Render draws m into the painter image and returns it. The image is
// reallocated whenever the maze size or pixel size changes.
func (p *Painter) Render(m *maze.Model, pal palette.Palette, now int64, pixelSize int) *ebiten.Image {
	if m == nil {
		return nil
	}
	g := m.Grid()
	w, h := g.W*pixelSize, g.H*pixelSize
	if p.img == nil || p.img.Bounds().Dx() != w || p.img.Bounds().Dy() != h {
		if p.img != nil {
			p.img.Deallocate()
		}
		p.img = ebiten.NewImage(w, h)
		p.raster = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	Rasterize(p.raster, m, pal, now, pixelSize)
	p.img.WritePixels(p.raster.Pix)
	return p.img
}

// Blit draws src onto dst rotated by angle degrees about the center of the
// area of width w and height h.
func Blit(dst, src *ebiten.Image, w, h int, angle float64) {
	if src == nil {
		return
	}
	b := src.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	if angle != 0 {
		op.GeoM.Rotate(angle * math.Pi / 180)
	}
	op.GeoM.Translate(float64(w)/2, float64(h)/2)
	dst.DrawImage(src, op)
}

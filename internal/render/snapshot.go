package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/yalue/image_utils"

	"prims-maze/internal/maze"
	"prims-maze/internal/palette"
)

// SnapshotOptions controls Snapshot output.
type SnapshotOptions struct {
	PixelSize int
	Border    int
	// BorderColor defaults to Background.
	BorderColor color.Color
	// Now is the time fed to the color function.
	Now int64
	// MarkStart draws an arrow over the start cell.
	MarkStart bool
}

// Snapshot rasterizes m and frames it with a solid border.
func Snapshot(m *maze.Model, pal palette.Palette, opts SnapshotOptions) (*image.RGBA, error) {
	if m == nil {
		return nil, fmt.Errorf("render: snapshot of nil maze")
	}
	if opts.PixelSize <= 0 {
		opts.PixelSize = 10
	}
	if opts.Border < 0 {
		opts.Border = 0
	}
	if opts.BorderColor == nil {
		opts.BorderColor = Background
	}

	body := NewCanvas(m, opts.PixelSize)
	Rasterize(body, m, pal, opts.Now, opts.PixelSize)

	b := body.Bounds()
	frame := image.NewRGBA(image.Rect(0, 0, b.Dx()+2*opts.Border, b.Dy()+2*opts.Border))
	fillRect(frame, frame.Bounds(), rgba(opts.BorderColor))

	composite := image_utils.NewCompositeImage()
	if err := composite.AddImage(frame, image.Pt(0, 0)); err != nil {
		return nil, fmt.Errorf("render: add frame: %w", err)
	}
	if err := composite.AddImage(body, image.Pt(opts.Border, opts.Border)); err != nil {
		return nil, fmt.Errorf("render: add maze: %w", err)
	}
	if opts.MarkStart {
		start := m.Cell(m.Start())
		arrow := image_utils.ResizeImage(image_utils.RightArrow(WallColor), opts.PixelSize, opts.PixelSize)
		pt := image.Pt(opts.Border+start.X*opts.PixelSize, opts.Border+start.Y*opts.PixelSize)
		if err := composite.AddImage(arrow, pt); err != nil {
			return nil, fmt.Errorf("render: add start marker: %w", err)
		}
	}
	return image_utils.ToRGBA(composite), nil
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

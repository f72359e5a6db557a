//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"prims-maze/internal/maze"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws optional debugging visuals on top of the maze layer.
type Overlay struct {
	showFrontier bool
	showStart    bool
	showRooms    bool
	showAge      bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay { return &Overlay{} }

// Update toggles layers with the digit keys 1 to 4.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showFrontier = !o.showFrontier
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showStart = !o.showStart
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showRooms = !o.showRooms
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit4) {
		o.showAge = !o.showAge
	}
}

// Draw renders the enabled layers onto layer, which holds the maze drawn at
// pixelSize. now is the current tick time in milliseconds.
func (o *Overlay) Draw(layer *ebiten.Image, m *maze.Model, pixelSize int, now int64) {
	if o == nil || layer == nil || m == nil || pixelSize <= 0 {
		return
	}
	ps := float32(pixelSize)

	if o.showAge {
		o.drawAge(layer, m, ps, now)
	}

	if o.showFrontier {
		tint := color.RGBA{R: 255, G: 200, B: 40, A: 160}
		inset := ps / 4
		for _, i := range m.Frontier() {
			c := m.Cell(i)
			vector.DrawFilledRect(layer, float32(c.X)*ps+inset, float32(c.Y)*ps+inset, ps-2*inset, ps-2*inset, tint, false)
		}
	}

	if o.showRooms {
		outline := color.RGBA{R: 64, G: 164, B: 223, A: 255}
		for _, id := range m.Rooms() {
			s := m.Structure(id)
			vector.StrokeRect(layer, float32(s.X)*ps, float32(s.Y)*ps, float32(s.W)*ps, float32(s.H)*ps, 2, outline, false)
		}
	}

	if o.showStart {
		c := m.Cell(m.Start())
		cx := float32(c.X)*ps + ps/2
		cy := float32(c.Y)*ps + ps/2
		vector.DrawFilledCircle(layer, cx, cy, ps/3, color.RGBA{R: 255, G: 60, B: 60, A: 230}, true)
	}
}

// drawAge tints incrementally grown cells by how recently they were visited.
// Cells stamped Instant (batch mode and the start cell) are left alone.
func (o *Overlay) drawAge(layer *ebiten.Image, m *maze.Model, ps float32, now int64) {
	const window = 2000.0
	for _, c := range m.Cells() {
		if !c.Visited || c.GenerationTime <= maze.Instant {
			continue
		}
		age := float64(now-c.GenerationTime) / window
		if age >= 1 {
			continue
		}
		col := ageColor(1 - clamp01(age))
		vector.DrawFilledRect(layer, float32(c.X)*ps, float32(c.Y)*ps, ps, ps, col, false)
	}
}

func ageColor(t float64) color.RGBA {
	t = clamp01(t)
	stops := []struct {
		t   float64
		col color.RGBA
	}{
		{0.0, color.RGBA{R: 40, G: 60, B: 120, A: 0}},
		{0.5, color.RGBA{R: 90, G: 150, B: 100, A: 90}},
		{1.0, color.RGBA{R: 240, G: 235, B: 215, A: 180}},
	}
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			span := curr.t - prev.t
			var local float64
			if span > 0 {
				local = (t - prev.t) / span
			}
			return lerpRGBA(prev.col, curr.col, clamp01(local))
		}
	}
	return stops[len(stops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Package palette maps a cell's distance from the maze start and the current
// time to one of three configured colors.
package palette

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const epsilon = 1e-6

// Palette configures the color function.
type Palette struct {
	Colors       [3]color.RGBA
	Wave         bool
	DistanceCoef float64
	TimeCoef     float64
}

// Default returns the stock three-color palette with the wave enabled.
func Default() Palette {
	return Palette{
		Colors: [3]color.RGBA{
			mustHex("#722448"),
			mustHex("#40B258"),
			mustHex("#558001"),
		},
		Wave:         true,
		DistanceCoef: 0.5,
		TimeCoef:     0.01,
	}
}

// Wave evaluates sin(distance*distanceCoef - t*timeCoef) remapped to [0, 1].
func Wave(distance int, t int64, distanceCoef, timeCoef float64) float64 {
	return math.Sin(float64(distance)*distanceCoef-float64(t)*timeCoef)*0.5 + 0.5
}

// Band partitions a wave value into the palette slot it selects.
func Band(wave float64) int {
	switch {
	case wave < .33:
		return 0
	case wave < .66:
		return 1
	default:
		return 2
	}
}

// Index returns the palette slot for a cell at distance from the start at
// time t (milliseconds). With the wave disabled the distance is normalized
// against maxDistance and truncated to a whole number, so every cell short of
// the farthest one lands on the same slot.
func (p Palette) Index(distance, maxDistance int, t int64) int {
	if !p.Wave {
		distance = normalized(distance, maxDistance)
	}
	return Band(Wave(distance, t, p.DistanceCoef, p.TimeCoef))
}

// Select returns the color for a cell, see Index.
func (p Palette) Select(distance, maxDistance int, t int64) color.RGBA {
	return p.Colors[p.Index(distance, maxDistance, t)]
}

func normalized(distance, maxDistance int) int {
	if maxDistance <= 0 {
		return 0
	}
	return int(float64(distance) / float64(maxDistance))
}

// Equal compares two palettes, allowing for float noise in the coefficients.
func (p Palette) Equal(o Palette) bool {
	return p.Colors == o.Colors &&
		p.Wave == o.Wave &&
		math.Abs(p.DistanceCoef-o.DistanceCoef) < epsilon &&
		math.Abs(p.TimeCoef-o.TimeCoef) < epsilon
}

// ParseHex parses "#rrggbb" (the leading '#' is optional) into an opaque
// color.
func ParseHex(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("palette: parse %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Hex formats c as "#rrggbb".
func Hex(c color.RGBA) string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

// Shade scales the RGB channels of c by f, keeping alpha.
func Shade(c color.RGBA, f float64) color.RGBA {
	cf := colorful.Color{
		R: float64(c.R) / 255 * f,
		G: float64(c.G) / 255 * f,
		B: float64(c.B) / 255 * f,
	}.Clamped()
	r, g, b := cf.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: c.A}
}

func mustHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromMap builds a palette from string overrides on top of Default.
func FromMap(m map[string]string) (Palette, error) {
	p := Default()
	err := p.Apply(m)
	return p, err
}

// Apply overlays string overrides onto p. Unknown keys are ignored so one
// override map can also carry generator settings. Numeric values are clamped
// to their supported range.
func (p *Palette) Apply(m map[string]string) error {
	for i := range p.Colors {
		key := "color" + strconv.Itoa(i+1)
		if v, ok := m[key]; ok {
			c, err := ParseHex(v)
			if err != nil {
				return err
			}
			p.Colors[i] = c
		}
	}
	if v, ok := m["wave"]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("palette: wave: %w", err)
		}
		p.Wave = b
	}
	if v, ok := m["distance_coef"]; ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("palette: distance_coef: %w", err)
		}
		p.DistanceCoef = clampFloat(f, 0, 10)
	}
	if v, ok := m["time_coef"]; ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("palette: time_coef: %w", err)
		}
		p.TimeCoef = clampFloat(f, 0.0001, 0.2)
	}
	return nil
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package generator

import (
	"math"
	"strconv"
	"time"
)

const angleEpsilon = 1e-6

// Config holds the generation settings. Changing any field other than
// DisplayDuration discards the current maze.
type Config struct {
	// RenderByFrame grows one cell per tick; otherwise a whole maze is built
	// in a single tick and shown for DisplayDuration.
	RenderByFrame bool

	NumRooms   int
	RoomWidth  int
	RoomHeight int

	// PixelSize is the edge length of one cell on the host surface.
	PixelSize int
	// Angle rotates the drawn maze, in degrees.
	Angle float64

	DisplayDuration time.Duration
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		RenderByFrame:   true,
		NumRooms:        0,
		RoomWidth:       5,
		RoomHeight:      5,
		PixelSize:       10,
		Angle:           0,
		DisplayDuration: 5000 * time.Millisecond,
	}
}

// Equal reports whether two configs describe the same maze layout.
func (c Config) Equal(o Config) bool {
	return c.RenderByFrame == o.RenderByFrame &&
		c.NumRooms == o.NumRooms &&
		c.RoomWidth == o.RoomWidth &&
		c.RoomHeight == o.RoomHeight &&
		c.PixelSize == o.PixelSize &&
		math.Abs(c.Angle-o.Angle) < angleEpsilon
}

// Clamp forces every field into its supported range.
func (c Config) Clamp() Config {
	c.NumRooms = clampInt(c.NumRooms, 0, 10)
	c.RoomWidth = clampInt(c.RoomWidth, 2, 20)
	c.RoomHeight = clampInt(c.RoomHeight, 2, 20)
	c.PixelSize = clampInt(c.PixelSize, 2, 30)
	c.Angle = math.Max(-180, math.Min(180, c.Angle))
	if c.DisplayDuration < 0 {
		c.DisplayDuration = 0
	}
	return c
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparsable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["render_by_frame"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.RenderByFrame = parsed
		}
	}
	if v, ok := cfg["num_rooms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.NumRooms = parsed
		}
	}
	if v, ok := cfg["room_width"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.RoomWidth = parsed
		}
	}
	if v, ok := cfg["room_height"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.RoomHeight = parsed
		}
	}
	if v, ok := cfg["pixel_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.PixelSize = parsed
		}
	}
	if v, ok := cfg["angle"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Angle = parsed
		}
	}
	if v, ok := cfg["display_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.DisplayDuration = time.Duration(parsed) * time.Millisecond
		}
	}
	return c.Clamp()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package generator

import (
	"time"

	"prims-maze/internal/core"
)

// Parameters reports the current tunables grouped for display.
func (g *Generator) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Maze",
			Params: []core.Parameter{
				core.BoolParam("render_by_frame", "Render by frame", g.cfg.RenderByFrame),
				core.IntParam("num_rooms", "Rooms", g.cfg.NumRooms),
				core.IntParam("room_width", "Room width", g.cfg.RoomWidth),
				core.IntParam("room_height", "Room height", g.cfg.RoomHeight),
				core.IntParam("pixel_size", "Cell size", g.cfg.PixelSize),
				core.FloatParam("angle", "Angle", g.cfg.Angle),
				core.Int64Param("display_ms", "Display ms", g.cfg.DisplayDuration.Milliseconds()),
			},
		},
		{
			Name: "Colors",
			Params: []core.Parameter{
				core.BoolParam("wave", "Color wave", g.pal.Wave),
				core.FloatParam("distance_coef", "Distance coef", g.pal.DistanceCoef),
				core.FloatParam("time_coef", "Time coef", g.pal.TimeCoef),
			},
		},
	}
	if g.model != nil {
		groups = append(groups, core.ParameterGroup{
			Name: "Status",
			Params: []core.Parameter{
				core.IntParam("cols", "Columns", g.model.Grid().W),
				core.IntParam("rows", "Rows", g.model.Grid().H),
				core.IntParam("rooms_placed", "Rooms placed", g.model.RoomsPlaced()),
				core.IntParam("visited", "Visited", g.model.Visited()),
				core.IntParam("frontier", "Frontier", g.model.FrontierLen()),
				core.IntParam("generation", "Generation", g.generation),
			},
		})
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable settings.
func (g *Generator) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "render_by_frame", Label: "Render by frame", Type: core.ParamTypeBool},
		{Key: "num_rooms", Label: "Rooms", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 10, HasMin: true, HasMax: true},
		{Key: "room_width", Label: "Room width", Type: core.ParamTypeInt, Step: 1, Min: 2, Max: 20, HasMin: true, HasMax: true},
		{Key: "room_height", Label: "Room height", Type: core.ParamTypeInt, Step: 1, Min: 2, Max: 20, HasMin: true, HasMax: true},
		{Key: "pixel_size", Label: "Cell size", Type: core.ParamTypeInt, Step: 1, Min: 2, Max: 30, HasMin: true, HasMax: true},
		{Key: "angle", Label: "Angle", Type: core.ParamTypeFloat, Step: 5, Min: -180, Max: 180, HasMin: true, HasMax: true},
		{Key: "wave", Label: "Color wave", Type: core.ParamTypeBool},
		{Key: "distance_coef", Label: "Distance coef", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 10, HasMin: true, HasMax: true},
		{Key: "time_coef", Label: "Time coef", Type: core.ParamTypeFloat, Step: 0.001, Min: 0.0001, Max: 0.2, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer setting. Layout settings rebuild the maze.
func (g *Generator) SetIntParameter(key string, value int) bool {
	cfg := g.cfg
	switch key {
	case "num_rooms":
		cfg.NumRooms = value
	case "room_width":
		cfg.RoomWidth = value
	case "room_height":
		cfg.RoomHeight = value
	case "pixel_size":
		cfg.PixelSize = value
	case "display_ms":
		cfg.DisplayDuration = time.Duration(value) * time.Millisecond
	default:
		return false
	}
	g.Configure(cfg)
	return true
}

// SetFloatParameter updates a floating-point setting.
func (g *Generator) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "angle":
		cfg := g.cfg
		cfg.Angle = value
		g.Configure(cfg)
	case "distance_coef":
		p := g.pal
		p.DistanceCoef = clampFloat(value, 0, 10)
		g.SetPalette(p)
	case "time_coef":
		p := g.pal
		p.TimeCoef = clampFloat(value, 0.0001, 0.2)
		g.SetPalette(p)
	default:
		return false
	}
	return true
}

// SetBoolParameter flips a boolean setting.
func (g *Generator) SetBoolParameter(key string, value bool) bool {
	switch key {
	case "render_by_frame":
		cfg := g.cfg
		cfg.RenderByFrame = value
		g.Configure(cfg)
	case "wave":
		p := g.pal
		p.Wave = value
		g.SetPalette(p)
	default:
		return false
	}
	return true
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

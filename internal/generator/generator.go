// Package generator drives maze generation from host ticks: it decides when a
// maze is (re)built, how far it grows each tick and how long a finished maze
// stays on screen.
package generator

import (
	"prims-maze/internal/core"
	"prims-maze/internal/maze"
	"prims-maze/internal/palette"
)

// State is the controller phase.
type State uint8

const (
	Uninitialized State = iota
	Growing
	Completing
	Complete
)

func (s State) String() string {
	switch s {
	case Growing:
		return "growing"
	case Completing:
		return "completing"
	case Complete:
		return "complete"
	default:
		return "uninitialized"
	}
}

// Generator owns the current maze and advances it on every Tick.
type Generator struct {
	cfg     Config
	pal     palette.Palette
	rng     *core.RNG
	surface core.Size

	model *maze.Model
	state State

	completedAt int64
	completed   bool

	generation int
	finished   int

	hooks []func(*maze.Model)
}

// New creates a generator. Nothing is built until the first Tick after a
// Resize with a non-empty surface.
func New(cfg Config, pal palette.Palette, seed int64) *Generator {
	return &Generator{
		cfg: cfg.Clamp(),
		pal: pal,
		rng: core.NewRNG(seed),
	}
}

// Resize records the host surface size in pixels. A different size discards
// the current maze.
func (g *Generator) Resize(width, height int) {
	s := core.Size{W: width, H: height}
	if s == g.surface {
		return
	}
	g.surface = s
	g.Reset()
}

// Surface returns the last surface size passed to Resize.
func (g *Generator) Surface() core.Size { return g.surface }

// Configure applies cfg and reports whether the maze was discarded because
// the layout changed.
func (g *Generator) Configure(cfg Config) bool {
	cfg = cfg.Clamp()
	changed := !g.cfg.Equal(cfg)
	g.cfg = cfg
	if changed {
		g.Reset()
	}
	return changed
}

// SetPalette swaps the color settings. The maze is kept.
func (g *Generator) SetPalette(p palette.Palette) { g.pal = p }

// Regenerate discards the current maze so the next Tick builds a new one.
func (g *Generator) Regenerate() { g.Reset() }

// Reseed restarts the random sequence and discards the current maze.
func (g *Generator) Reseed(seed int64) {
	g.rng = core.NewRNG(seed)
	g.Reset()
}

// Reset drops the current maze and returns to Uninitialized.
func (g *Generator) Reset() {
	g.model = nil
	g.state = Uninitialized
	g.completed = false
	g.completedAt = 0
}

// OnComplete registers fn to run once for every maze whose frontier drains.
func (g *Generator) OnComplete(fn func(*maze.Model)) {
	if fn != nil {
		g.hooks = append(g.hooks, fn)
	}
}

// Tick advances the controller. now is a monotonic time in milliseconds and
// becomes the generation time of cells grown during incremental ticks.
func (g *Generator) Tick(now int64) State {
	switch g.state {
	case Uninitialized:
		if !g.init() {
			return g.state
		}
		fallthrough
	case Growing:
		g.grow(now)
	case Completing:
		if g.cfg.RenderByFrame || now-g.completedAt > g.cfg.DisplayDuration.Milliseconds() {
			g.state = Complete
		}
	case Complete:
		g.Reset()
		g.init()
	}
	return g.state
}

func (g *Generator) init() bool {
	grid := g.Grid()
	if g.surface.Empty() {
		return false
	}
	opts := maze.Options{
		Cols:       grid.W,
		Rows:       grid.H,
		Rooms:      g.cfg.NumRooms,
		RoomWidth:  g.cfg.RoomWidth,
		RoomHeight: g.cfg.RoomHeight,
		Start:      -1,
	}
	g.model = maze.New(opts, g.rng.Source())
	g.state = Growing
	g.generation++
	return true
}

func (g *Generator) grow(now int64) {
	if g.cfg.RenderByFrame {
		g.model.Step(now)
	} else {
		g.model.Run()
	}
	if !g.model.Done() {
		return
	}
	g.state = Completing
	if g.completed {
		return
	}
	g.completed = true
	g.completedAt = now
	g.finished++
	for _, fn := range g.hooks {
		fn(g.model)
	}
}

// Grid returns the grid the current surface and pixel size produce.
func (g *Generator) Grid() core.Grid {
	return core.GridForSurface(g.surface.W, g.surface.H, g.cfg.PixelSize)
}

// Model returns the current maze, or nil before the first build.
func (g *Generator) Model() *maze.Model { return g.model }

// State returns the controller phase.
func (g *Generator) State() State { return g.state }

// Config returns the active configuration.
func (g *Generator) Config() Config { return g.cfg }

// Palette returns the active color settings.
func (g *Generator) Palette() palette.Palette { return g.pal }

// Generation counts the mazes built so far.
func (g *Generator) Generation() int { return g.generation }

// Completed counts the mazes that finished growing.
func (g *Generator) Completed() int { return g.finished }

// CompletedAt returns the tick at which the current maze finished, if it has.
func (g *Generator) CompletedAt() (int64, bool) { return g.completedAt, g.completed }

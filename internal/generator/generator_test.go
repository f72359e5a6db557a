package generator

import (
	"testing"
	"time"

	"prims-maze/internal/core"
	"prims-maze/internal/maze"
	"prims-maze/internal/palette"
)

func newGenerator(cfg Config) *Generator {
	g := New(cfg, palette.Default(), 7)
	g.Resize(100, 80)
	return g
}

func TestTickWaitsForSurface(t *testing.T) {
	g := New(DefaultConfig(), palette.Default(), 1)
	if s := g.Tick(0); s != Uninitialized {
		t.Fatalf("state = %s, want uninitialized", s)
	}
	if g.Model() != nil {
		t.Fatal("no model should exist without a surface")
	}
}

func TestIncrementalGrowsOneCellPerTick(t *testing.T) {
	g := newGenerator(DefaultConfig())
	if s := g.Tick(1); s != Growing {
		t.Fatalf("state = %s, want growing", s)
	}
	m := g.Model()
	if m.Grid().W != 10 || m.Grid().H != 8 {
		t.Fatalf("grid = %dx%d, want 10x8", m.Grid().W, m.Grid().H)
	}
	if m.Visited() != 2 {
		t.Fatalf("visited = %d after first tick, want 2", m.Visited())
	}
	g.Tick(2)
	if m.Visited() != 3 {
		t.Fatalf("visited = %d after second tick, want 3", m.Visited())
	}
}

func TestIncrementalCyclesWithoutPause(t *testing.T) {
	g := newGenerator(DefaultConfig())
	completions := 0
	g.OnComplete(func(m *maze.Model) {
		completions++
		if err := m.Validate(); err != nil {
			t.Fatalf("validate: %v", err)
		}
	})

	now := int64(0)
	for g.State() != Completing {
		now++
		g.Tick(now)
		if now > 1000 {
			t.Fatal("maze never completed")
		}
	}
	if completions != 1 || g.Completed() != 1 {
		t.Fatalf("completions = %d, want 1", completions)
	}
	if at, ok := g.CompletedAt(); !ok || at != now {
		t.Fatalf("completed at %d (%v), want %d", at, ok, now)
	}
	if s := g.Tick(now + 1); s != Complete {
		t.Fatalf("state = %s, want complete", s)
	}
	first := g.Model()
	if s := g.Tick(now + 2); s != Growing {
		t.Fatalf("state = %s, want growing", s)
	}
	if g.Model() == first || g.Generation() != 2 {
		t.Fatal("a new maze should be built after completion")
	}
}

func TestBatchHoldsFinishedMaze(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RenderByFrame = false
	cfg.DisplayDuration = 5 * time.Second
	g := newGenerator(cfg)

	if s := g.Tick(100); s != Completing {
		t.Fatalf("state = %s, want completing", s)
	}
	m := g.Model()
	if !m.Done() || m.Visited() != m.Grid().Len() {
		t.Fatal("batch tick should finish the maze")
	}
	if s := g.Tick(5100); s != Completing {
		t.Fatalf("state = %s at exactly the display duration, want completing", s)
	}
	if s := g.Tick(5101); s != Complete {
		t.Fatalf("state = %s, want complete", s)
	}
	if s := g.Tick(5102); s != Growing || g.Model() == m {
		t.Fatal("expected a fresh maze")
	}
	g.Tick(5103)
	if g.Completed() != 2 {
		t.Fatalf("completed = %d, want 2", g.Completed())
	}
}

func TestConfigureResetsOnLayoutChange(t *testing.T) {
	g := newGenerator(DefaultConfig())
	g.Tick(1)

	cfg := g.Config()
	cfg.DisplayDuration = time.Second
	if g.Configure(cfg) {
		t.Fatal("display duration alone should not reset")
	}
	if g.State() != Growing {
		t.Fatalf("state = %s, want growing", g.State())
	}

	cfg.Angle += 1e-9
	if g.Configure(cfg) {
		t.Fatal("angle within epsilon should not reset")
	}

	cfg.NumRooms = 2
	if !g.Configure(cfg) {
		t.Fatal("room count change should reset")
	}
	if g.State() != Uninitialized || g.Model() != nil {
		t.Fatal("reset should drop the model")
	}
}

func TestResizeResets(t *testing.T) {
	g := newGenerator(DefaultConfig())
	g.Tick(1)
	g.Resize(100, 80)
	if g.State() != Growing {
		t.Fatal("same size should keep the maze")
	}
	g.Resize(200, 80)
	if g.State() != Uninitialized {
		t.Fatal("new size should reset")
	}
	g.Tick(2)
	if g.Model().Grid().W != 20 {
		t.Fatalf("cols = %d, want 20", g.Model().Grid().W)
	}
}

func TestPaletteChangeKeepsMaze(t *testing.T) {
	g := newGenerator(DefaultConfig())
	g.Tick(1)
	m := g.Model()
	if !g.SetBoolParameter("wave", false) {
		t.Fatal("wave should be settable")
	}
	if g.Model() != m || g.Palette().Wave {
		t.Fatal("palette change should keep the maze and apply")
	}
	if !g.SetFloatParameter("time_coef", 5) || g.Palette().TimeCoef != 0.2 {
		t.Fatalf("time coef = %v, want clamped 0.2", g.Palette().TimeCoef)
	}
}

func TestParameterSetters(t *testing.T) {
	g := newGenerator(DefaultConfig())
	if !g.SetIntParameter("num_rooms", 99) {
		t.Fatal("num_rooms should be settable")
	}
	if g.Config().NumRooms != 10 {
		t.Fatalf("rooms = %d, want clamped 10", g.Config().NumRooms)
	}
	if g.SetIntParameter("nope", 1) || g.SetFloatParameter("nope", 1) || g.SetBoolParameter("nope", true) {
		t.Fatal("unknown keys should be rejected")
	}
	g.Tick(1)
	snap := g.Parameters()
	if p, ok := snap.Lookup("num_rooms"); !ok || p.Value != "10" {
		t.Fatalf("num_rooms param = %+v", p)
	}
	if p, ok := snap.Lookup("frontier"); !ok || p.Type != core.ParamTypeInt {
		t.Fatalf("frontier status missing: %+v", p)
	}
	for _, c := range g.ParameterControls() {
		if _, ok := snap.Lookup(c.Key); !ok {
			t.Fatalf("control %s has no parameter", c.Key)
		}
	}
}

func TestFromMapClamps(t *testing.T) {
	cfg := FromMap(map[string]string{
		"render_by_frame": "false",
		"num_rooms":       "-3",
		"room_width":      "50",
		"pixel_size":      "1",
		"angle":           "270",
		"display_ms":      "1500",
		"room_height":     "oops",
	})
	if cfg.RenderByFrame || cfg.NumRooms != 0 || cfg.RoomWidth != 20 || cfg.PixelSize != 2 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Angle != 180 || cfg.DisplayDuration != 1500*time.Millisecond || cfg.RoomHeight != 5 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestSameSeedSameMaze(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RenderByFrame = false
	cfg.NumRooms = 3
	a := New(cfg, palette.Default(), 99)
	b := New(cfg, palette.Default(), 99)
	a.Resize(200, 150)
	b.Resize(200, 150)
	a.Tick(0)
	b.Tick(0)
	if a.Model().String() != b.Model().String() {
		t.Fatal("same seed should produce the same maze")
	}
	b.Reseed(100)
	b.Tick(0)
	if a.Model().String() == b.Model().String() {
		t.Fatal("reseeding should change the maze")
	}
}

package core

import (
	"testing"
	"time"
)

func TestGridIndexRoundTrip(t *testing.T) {
	g := NewGrid(7, 5)
	for i := 0; i < g.Len(); i++ {
		x, y := g.Coords(i)
		if !g.InBounds(x, y) {
			t.Fatalf("index %d mapped outside grid at (%d,%d)", i, x, y)
		}
		if got := g.Index(x, y); got != i {
			t.Fatalf("Index(Coords(%d)) = %d", i, got)
		}
	}
}

func TestGridForSurfaceClamps(t *testing.T) {
	g := GridForSurface(800, 600, 10)
	if g.W != 80 || g.H != 60 {
		t.Fatalf("expected 80x60 grid, got %dx%d", g.W, g.H)
	}
	tiny := GridForSurface(5, 5, 10)
	if tiny.W != 1 || tiny.H != 1 {
		t.Fatalf("expected grid clamped to 1x1, got %dx%d", tiny.W, tiny.H)
	}
}

func TestManhattanSymmetric(t *testing.T) {
	g := NewGrid(10, 10)
	for a := 0; a < g.Len(); a += 7 {
		if d := g.Manhattan(a, a); d != 0 {
			t.Fatalf("distance(%d,%d) = %d, want 0", a, a, d)
		}
		for b := 0; b < g.Len(); b += 3 {
			if g.Manhattan(a, b) != g.Manhattan(b, a) {
				t.Fatalf("distance not symmetric for %d and %d", a, b)
			}
		}
	}
	if d := g.Manhattan(g.Index(0, 0), g.Index(9, 9)); d != 18 {
		t.Fatalf("corner to corner distance = %d, want 18", d)
	}
}

func TestFarthestCorner(t *testing.T) {
	g := NewGrid(10, 6)
	if got := g.FarthestCorner(0, 0); got != 14 {
		t.Fatalf("FarthestCorner(0,0) = %d, want 14", got)
	}
	if got := g.FarthestCorner(3, 4); got != 6+4 {
		t.Fatalf("FarthestCorner(3,4) = %d, want 10", got)
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 100; i++ {
		if a.IntN(1000) != b.IntN(1000) {
			t.Fatal("RNGs with equal seeds diverged")
		}
	}
	if got := a.IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d, want 0", got)
	}
}

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should step because the accumulator starts primed")
	}
	if fs.ShouldStep() {
		t.Fatal("no time elapsed, should not step")
	}
	clock = clock.Add(250 * time.Millisecond)
	if got := fs.Pending(0); got != 2 {
		t.Fatalf("Pending after 250ms at 10 TPS = %d, want 2", got)
	}
	clock = clock.Add(time.Second)
	if got := fs.Pending(3); got != 3 {
		t.Fatalf("Pending capped at 3, got %d", got)
	}
	if fs.ShouldStep() {
		t.Fatal("excess ticks should be discarded after hitting the cap")
	}
	if fs.TPS() != 10 {
		t.Fatalf("TPS() = %d, want 10", fs.TPS())
	}
}

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{{
		Name:   "Maze",
		Params: []Parameter{IntParam("num_rooms", "Rooms", 3), BoolParam("wave", "Wave", true)},
	}}}
	p, ok := snap.Lookup("wave")
	if !ok || p.Value != "true" || p.Type != ParamTypeBool {
		t.Fatalf("unexpected lookup result %+v (found=%v)", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("lookup of unknown key should fail")
	}
}

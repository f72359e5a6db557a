package term

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"

	"prims-maze/internal/core"
	"prims-maze/internal/generator"
	"prims-maze/internal/maze"
	"prims-maze/internal/palette"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	s.SetSize(w, h)
	return s
}

func rowText(s tcell.Screen, y, w int) string {
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestSurfaceFitsWallsAndStatus(t *testing.T) {
	w, h := Surface(41, 22)
	g := core.GridForSurface(w, h, CellPixels)
	if g.W != 20 || g.H != 10 {
		t.Fatalf("grid = %dx%d, want 20x10", g.W, g.H)
	}
	if 2*g.W+1 > 41 || 2*g.H+1 > 21 {
		t.Fatal("maze overlaps the status row")
	}
}

func TestRendererDrawsFinishedMaze(t *testing.T) {
	s := newScreen(t, 12, 8)
	defer s.Fini()

	opts := maze.DefaultOptions(5, 3)
	opts.Start = 0
	m := maze.New(opts, core.NewRNG(2).Source())
	m.Run()
	pal := palette.Default()

	NewRenderer(s).Draw(m, pal, 0, "done")

	if top := rowText(s, 0, 11); top != strings.Repeat(string(WallRune), 11) {
		t.Fatalf("top border = %q", top)
	}
	if status := rowText(s, 7, 4); status != "done" {
		t.Fatalf("status = %q", status)
	}

	want := palette.Shade(pal.Select(0, m.MaxDistance(), 0), 0.8)
	_, _, style, _ := s.GetContent(1, 1)
	_, bg, _ := style.Decompose()
	if bg != tcell.NewRGBColor(int32(want.R), int32(want.G), int32(want.B)) {
		t.Fatalf("start cell background = %v", bg)
	}

	for i, c := range m.Cells() {
		if c.X == 4 {
			continue
		}
		r, _, _, _ := s.GetContent(2*c.X+2, 2*c.Y+1)
		if (r == WallRune) != m.WallAt(i, maze.East) {
			t.Fatalf("east edge of cell %d drawn as %q, wall=%v", i, r, m.WallAt(i, maze.East))
		}
	}
}

func TestHostQuitsOnKey(t *testing.T) {
	s := newScreen(t, 30, 14)
	defer s.Fini()

	gen := generator.New(generator.DefaultConfig(), palette.Default(), 1)
	h := NewHost(s, gen, 120, 1, nil)
	if gen.Config().PixelSize != CellPixels {
		t.Fatalf("pixel size = %d, want %d", gen.Config().PixelSize, CellPixels)
	}

	done := make(chan error, 1)
	go func() { done <- h.Run(context.Background()) }()

	time.Sleep(100 * time.Millisecond)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("host did not quit")
	}
}

func TestHostStopsWithContext(t *testing.T) {
	s := newScreen(t, 30, 14)
	defer s.Fini()

	gen := generator.New(generator.DefaultConfig(), palette.Default(), 1)
	h := NewHost(s, gen, 60, 1, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := h.Run(ctx); err != context.DeadlineExceeded {
		t.Fatalf("run = %v, want deadline exceeded", err)
	}
}

func TestHostKeys(t *testing.T) {
	s := newScreen(t, 30, 14)
	defer s.Fini()

	gen := generator.New(generator.DefaultConfig(), palette.Default(), 1)
	h := NewHost(s, gen, 60, 1, nil)
	gen.Tick(0)

	h.handleRune('w')
	if gen.Palette().Wave {
		t.Fatal("w should toggle the wave off")
	}
	h.handleRune('f')
	if gen.Config().RenderByFrame {
		t.Fatal("f should switch to batch mode")
	}
	h.handleRune('+')
	if h.step.TPS() != 120 {
		t.Fatalf("tps = %d, want 120", h.step.TPS())
	}
	if h.handleRune('q') {
		t.Fatal("q should stop the loop")
	}
	gen.Tick(1)
	if !strings.Contains(h.Status(), "tps 120") {
		t.Fatalf("status = %q", h.Status())
	}
}

func TestChimeToneLength(t *testing.T) {
	tone, err := chimeTone()
	if err != nil {
		t.Fatalf("tone: %v", err)
	}
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := tone.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if want := beep.SampleRate(44100).N(chimeDuration); total != want {
		t.Fatalf("samples = %d, want %d", total, want)
	}
	var silent *Chime
	silent.Play()
}

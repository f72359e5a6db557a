package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"prims-maze/internal/core"
	"prims-maze/internal/generator"
	"prims-maze/internal/maze"
)

// frameInterval paces redraws at roughly 60 FPS.
const frameInterval = 16 * time.Millisecond

// maxTicksPerFrame bounds catch-up after a stall.
const maxTicksPerFrame = 8

// Host runs a generator inside a tcell screen until the user quits or the
// context ends.
type Host struct {
	screen   tcell.Screen
	gen      *generator.Generator
	renderer *Renderer
	step     *core.FixedStep
	chime    *Chime

	origin time.Time
	paused bool
	seed   int64
}

// NewHost prepares a host for an initialised screen. tps is the number of
// generator ticks per second. chime may be nil.
func NewHost(screen tcell.Screen, gen *generator.Generator, tps int, seed int64, chime *Chime) *Host {
	h := &Host{
		screen:   screen,
		gen:      gen,
		renderer: NewRenderer(screen),
		step:     core.NewFixedStep(tps),
		chime:    chime,
		origin:   time.Now(),
		seed:     seed,
	}
	cfg := gen.Config()
	cfg.PixelSize = CellPixels
	gen.Configure(cfg)
	gen.OnComplete(func(*maze.Model) { h.chime.Play() })
	h.resize()
	return h
}

// Run drives the loop. It returns nil when the user quits.
func (h *Host) Run(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !h.handle(ev) {
				return nil
			}
		case <-ticker.C:
			h.frame()
		}
	}
}

func (h *Host) frame() {
	now := core.Millis(h.origin, time.Now())
	if !h.paused {
		for n := h.step.Pending(maxTicksPerFrame); n > 0; n-- {
			h.gen.Tick(now)
		}
	}
	h.renderer.Draw(h.gen.Model(), h.gen.Palette(), now, h.Status())
}

// Status summarises the generator for the bottom row.
func (h *Host) Status() string {
	m := h.gen.Model()
	if m == nil {
		return "waiting for space | q quit"
	}
	g := m.Grid()
	state := h.gen.State().String()
	if h.paused {
		state = "paused"
	}
	return fmt.Sprintf("%dx%d rooms %d/%d visited %d frontier %d %s | q quit r regen s seed w wave f mode +/- tps %d",
		g.W, g.H, m.RoomsPlaced(), h.gen.Config().NumRooms, m.Visited(), m.FrontierLen(), state, h.step.TPS())
}

// handle applies one event and reports whether the loop should continue.
func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
		h.resize()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			return h.handleRune(ev.Rune())
		}
	}
	return true
}

func (h *Host) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case ' ':
		h.paused = !h.paused
	case 'r':
		h.gen.Regenerate()
	case 's':
		h.seed++
		h.gen.Reseed(h.seed)
	case 'w':
		p := h.gen.Palette()
		p.Wave = !p.Wave
		h.gen.SetPalette(p)
	case 'f':
		cfg := h.gen.Config()
		cfg.RenderByFrame = !cfg.RenderByFrame
		h.gen.Configure(cfg)
	case '+', '=':
		h.step.SetTPS(h.step.TPS() * 2)
	case '-':
		if tps := h.step.TPS() / 2; tps > 0 {
			h.step.SetTPS(tps)
		}
	}
	return true
}

func (h *Host) resize() {
	h.gen.Resize(Surface(h.screen.Size()))
}

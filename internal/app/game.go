//go:build ebiten

package app

import (
	"time"

	"prims-maze/internal/core"
	"prims-maze/internal/generator"
	"prims-maze/internal/render"
	"prims-maze/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hudWidth is the parameter panel width in pixels.
const hudWidth = 240

// Game adapts a maze generator to the ebiten.Game interface.
type Game struct {
	gen     *generator.Generator
	painter *render.Painter
	overlay *ui.Overlay
	hud     *ui.HUD

	origin time.Time
	now    int64

	width, height int
	paused        bool
	tickOnce      bool
	showHelp      bool
	seed          int64
}

// New constructs a Game for the provided generator.
func New(gen *generator.Generator, showHUD bool, seed int64) *Game {
	g := &Game{
		gen:     gen,
		painter: render.NewPainter(),
		overlay: ui.NewOverlay(),
		origin:  time.Now(),
		seed:    seed,
	}
	if showHUD {
		g.hud = ui.NewHUD(gen, "Maze Controls", hudWidth)
	}
	return g
}

// Reset rebuilds the maze from a fresh seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.gen.Reseed(seed)
	g.tickOnce = false
}

// Update handles input and advances the generator by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.gen.Regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		p := g.gen.Palette()
		p.Wave = !p.Wave
		g.gen.SetPalette(p)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		cfg := g.gen.Config()
		cfg.RenderByFrame = !cfg.RenderByFrame
		g.gen.Configure(cfg)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySlash) {
		g.showHelp = !g.showHelp
	}

	g.overlay.Update()
	g.hud.Update(g.mazeWidth())

	g.now = core.Millis(g.origin, time.Now())
	if !g.paused || g.tickOnce {
		g.gen.Tick(g.now)
		g.tickOnce = false
	}
	return nil
}

// Draw renders the maze, the debug overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)
	m := g.gen.Model()
	if m != nil {
		pixelSize := g.gen.Config().PixelSize
		layer := g.painter.Render(m, g.gen.Palette(), g.now, pixelSize)
		g.overlay.Draw(layer, m, pixelSize, g.now)
		render.Blit(screen, layer, g.mazeWidth(), g.height, g.gen.Config().Angle)
	}
	g.hud.Draw(screen, g.mazeWidth(), g.height)
	if g.showHelp {
		ebitenutil.DebugPrint(screen, "space pause  n step  r regen  s seed  w wave  f mode  1-4 overlays  q quit")
	}
}

// Layout tracks the window size and resizes the maze surface to match.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.gen.Resize(g.mazeWidth(), g.height)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) mazeWidth() int {
	w := g.width - g.hud.Width()
	if w < 0 {
		return 0
	}
	return w
}

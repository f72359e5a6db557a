//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"prims-maze/internal/app"
	"prims-maze/internal/generator"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	opts := app.NewOptions()
	opts.Bind(flag.CommandLine)
	flag.Parse()

	cfg, pal, err := opts.Settings()
	if err != nil {
		log.Fatalf("invalid settings: %v", err)
	}
	seed := opts.EffectiveSeed()
	gen := generator.New(cfg, pal, seed)
	game := app.New(gen, opts.HUD, seed)

	width := opts.Width
	if opts.HUD {
		width += 240
	}
	ebiten.SetWindowTitle("prims-maze")
	ebiten.SetTPS(opts.TPS)
	ebiten.SetWindowSize(width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

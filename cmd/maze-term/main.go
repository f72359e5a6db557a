package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"prims-maze/internal/app"
	"prims-maze/internal/generator"
	"prims-maze/internal/term"
)

func main() {
	opts := app.NewOptions()
	opts.TPS = 30
	opts.Bind(flag.CommandLine)
	sound := flag.Bool("sound", false, "play a chime when a maze completes")
	flag.Parse()

	cfg, pal, err := opts.Settings()
	if err != nil {
		log.Fatalf("invalid settings: %v", err)
	}
	seed := opts.EffectiveSeed()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}

	var chime *term.Chime
	if *sound {
		chime, err = term.NewChime()
		if err != nil {
			// Non-fatal, the maze runs without sound
			log.Printf("audio initialization failed: %v", err)
		}
		defer chime.Close()
	}

	gen := generator.New(cfg, pal, seed)
	host := term.NewHost(screen, gen, opts.TPS, seed, chime)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	runErr := host.Run(ctx)
	stop()
	screen.Fini()

	if runErr != nil && runErr != context.Canceled {
		log.Fatal(runErr)
	}
	fmt.Printf("generated %d mazes (seed %d)\n", gen.Completed(), seed)
}

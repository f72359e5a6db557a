// This renders one finished maze to a PNG file.
package main

import (
	"flag"
	"fmt"
	"os"

	"prims-maze/internal/app"
	"prims-maze/internal/generator"
	"prims-maze/internal/render"
)

func run() int {
	opts := app.NewOptions()
	opts.Seed = 1
	opts.Bind(flag.CommandLine)
	var outFilename string
	var border int
	var markStart, printASCII bool
	var at int64
	flag.StringVar(&outFilename, "output_file", "",
		"The name of the .png file to which the maze will be saved.")
	flag.IntVar(&border, "border", 8, "Border width in pixels.")
	flag.BoolVar(&markStart, "mark_start", false, "Draw an arrow over the start cell.")
	flag.BoolVar(&printASCII, "ascii", false, "Also print the maze as text.")
	flag.Int64Var(&at, "time_ms", 0, "Time in milliseconds fed to the color wave.")
	flag.Parse()
	if outFilename == "" {
		fmt.Println("Invalid or missing argument.")
		fmt.Println("Run with -help for more information.")
		return 1
	}

	cfg, pal, e := opts.Settings()
	if e != nil {
		fmt.Printf("Invalid settings: %s\n", e)
		return 1
	}
	cfg.RenderByFrame = false
	gen := generator.New(cfg, pal, opts.EffectiveSeed())
	gen.Resize(opts.Width, opts.Height)
	if gen.Tick(0) != generator.Completing {
		fmt.Printf("Surface %dx%d is too small for a maze.\n", opts.Width, opts.Height)
		return 1
	}
	m := gen.Model()
	if e = m.Validate(); e != nil {
		fmt.Printf("Generated maze failed validation: %s\n", e)
		return 1
	}
	g := m.Grid()
	fmt.Printf("Generated %dx%d maze with %d/%d rooms OK.\n", g.W, g.H,
		m.RoomsPlaced(), cfg.NumRooms)
	if printASCII {
		fmt.Print(m.String())
	}

	pic, e := render.Snapshot(m, gen.Palette(), render.SnapshotOptions{
		PixelSize: cfg.PixelSize,
		Border:    border,
		Now:       at,
		MarkStart: markStart,
	})
	if e != nil {
		fmt.Printf("Error rendering maze: %s\n", e)
		return 1
	}
	f, e := os.Create(outFilename)
	if e != nil {
		fmt.Printf("Error opening %s: %s\n", outFilename, e)
		return 1
	}
	defer f.Close()
	if e = render.WritePNG(f, pic); e != nil {
		fmt.Printf("Error writing %s: %s\n", outFilename, e)
		return 1
	}
	fmt.Printf("Saved %s OK.\n", outFilename)
	return 0
}

func main() {
	os.Exit(run())
}

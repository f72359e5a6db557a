package app

import (
	"flag"
	"strings"
	"time"

	"prims-maze/internal/generator"
	"prims-maze/internal/palette"
)

// Options represents the command-line parameters shared by the maze commands.
type Options struct {
	Width  int
	Height int
	TPS    int
	Seed   int64
	HUD    bool

	Overrides KVList
}

// NewOptions returns Options populated with sensible defaults.
func NewOptions() *Options {
	return &Options{Width: 800, Height: 600, TPS: 60, Seed: -1, HUD: true}
}

// Bind attaches the options to the provided FlagSet.
func (o *Options) Bind(fs *flag.FlagSet) {
	fs.IntVar(&o.Width, "width", o.Width, "surface width in pixels")
	fs.IntVar(&o.Height, "height", o.Height, "surface height in pixels")
	fs.IntVar(&o.TPS, "tps", o.TPS, "generator ticks per second")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "random seed (negative picks one from the clock)")
	fs.BoolVar(&o.HUD, "hud", o.HUD, "show the parameter panel")
	fs.Var(&o.Overrides, "set", "setting override in key=value form (repeatable)")
}

// EffectiveSeed resolves a negative seed to one derived from the clock.
func (o *Options) EffectiveSeed() int64 {
	if o.Seed >= 0 {
		return o.Seed
	}
	return time.Now().UnixNano()
}

// Settings builds the generator config and palette from the overrides.
func (o *Options) Settings() (generator.Config, palette.Palette, error) {
	m := o.Overrides.Map()
	pal, err := palette.FromMap(m)
	if err != nil {
		return generator.Config{}, palette.Palette{}, err
	}
	return generator.FromMap(m), pal, nil
}

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map splits the entries into a map. Entries without '=' are skipped and
// later entries win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}

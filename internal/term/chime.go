package term

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	chimeRate     = beep.SampleRate(44100)
	chimeFreq     = 660
	chimeDuration = 120 * time.Millisecond
)

// Chime plays a short tone when a maze finishes.
type Chime struct {
	ready bool
}

// NewChime initialises the speaker. On error the returned chime is silent.
func NewChime() (*Chime, error) {
	if err := speaker.Init(chimeRate, chimeRate.N(time.Second/10)); err != nil {
		return &Chime{}, fmt.Errorf("term: init speaker: %w", err)
	}
	return &Chime{ready: true}, nil
}

// Play queues the tone. It never blocks.
func (c *Chime) Play() {
	if c == nil || !c.ready {
		return
	}
	tone, err := chimeTone()
	if err != nil {
		return
	}
	speaker.Play(tone)
}

// Close releases the speaker.
func (c *Chime) Close() {
	if c != nil && c.ready {
		speaker.Close()
		c.ready = false
	}
}

func chimeTone() (beep.Streamer, error) {
	sine, err := generators.SineTone(chimeRate, chimeFreq)
	if err != nil {
		return nil, err
	}
	return beep.Take(chimeRate.N(chimeDuration), sine), nil
}

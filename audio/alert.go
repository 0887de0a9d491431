// Package audio provides the console's audible alert.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	toneFreq   = 880
	toneLen    = 50 * time.Millisecond
)

// Bell plays a short alert tone through the speaker. A failed speaker
// init is non-fatal: the bell stays disabled and Ring does nothing.
type Bell struct {
	enabled bool
}

// NewBell initializes the speaker.
func NewBell() *Bell {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Bell{}
	}
	return &Bell{enabled: true}
}

// Enabled reports whether the audio device initialized.
func (b *Bell) Enabled() bool {
	return b.enabled
}

// Ring plays the alert tone. Non-blocking.
func (b *Bell) Ring() {
	if !b.enabled {
		return
	}
	tone, err := generators.SineTone(sampleRate, toneFreq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(toneLen), tone))
}

// Close shuts the speaker down.
func (b *Bell) Close() {
	if b.enabled {
		speaker.Close()
	}
}

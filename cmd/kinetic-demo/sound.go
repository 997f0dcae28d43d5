package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	tickFreq     = 1320.0
	tickDuration = 25 * time.Millisecond
	openFreq     = 660.0
)

// clicker plays short sine ticks on page changes and drawer opens
type clicker struct {
	ready bool
}

func newClicker() (*clicker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &clicker{}, err
	}
	return &clicker{ready: true}, nil
}

func (c *clicker) tone(freq float64) {
	if c == nil || !c.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(tickDuration), sine))
}

func (c *clicker) tick() { c.tone(tickFreq) }

func (c *clicker) open() { c.tone(openFreq) }

func (c *clicker) close() {
	if c != nil && c.ready {
		speaker.Close()
		c.ready = false
	}
}

// Package chime plays a short tone when a stroke is finished.
package chime

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Chime mixes completion tones onto the default speaker. The zero value is
// silent until Initialize succeeds.
type Chime struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	freq        float64
	length      time.Duration
	// lock and unlock guard the mixer against the speaker goroutine.
	lock, unlock func()
}

// New returns a Chime that rings at freq Hz for length.
func New(freq float64, length time.Duration) *Chime {
	return &Chime{mixer: &beep.Mixer{}, freq: freq, length: length, lock: speaker.Lock, unlock: speaker.Unlock}
}

// Initialize opens the speaker. Callers treat failure as "no sound" rather
// than fatal.
func (c *Chime) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Ring queues one tone. It is a no-op before Initialize.
func (c *Chime) Ring() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	tone := beep.Take(sampleRate.N(c.length), NewTone(sampleRate, c.freq, c.length))
	c.lock()
	c.mixer.Add(tone)
	c.unlock()
}

// Close silences pending tones.
func (c *Chime) Close() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	c.lock()
	c.mixer.Clear()
	c.unlock()
	c.initialized = false
}

// Tone is a sine with a short attack and an exponential release.
type Tone struct {
	sr     beep.SampleRate
	freq   float64
	total  int
	attack int
	pos    int
}

// NewTone creates a tone generator lasting length.
func NewTone(sr beep.SampleRate, freq float64, length time.Duration) *Tone {
	return &Tone{sr: sr, freq: freq, total: sr.N(length), attack: sr.N(5 * time.Millisecond)}
}

func (g *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		env := 1.0
		if g.attack > 0 && g.pos < g.attack {
			env = float64(g.pos) / float64(g.attack)
		}
		if g.total > 0 {
			env *= math.Exp(-4 * float64(g.pos) / float64(g.total))
		}
		s := 0.25 * env * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *Tone) Err() error { return nil }

// Package brush implements a velocity-sensitive ink brush.
//
// Stroke width shrinks as the pointer speeds up and grows as it slows down,
// with an exponential moving average smoothing out the noise of irregular
// event timing. The math and state transitions are pure functions; Engine
// applies their output to a surface.
package brush

import "fmt"

// Config is the immutable brush configuration.
type Config struct {
	MinWidth float64
	MaxWidth float64
	// VelocitySensitivity is the width lost per pixel/millisecond of speed.
	VelocitySensitivity float64
	// SmoothingFactor is the weight of the new target width in (0, 1].
	SmoothingFactor float64
}

// DefaultConfig returns a brush tuned for practising characters on a
// roughly 400px surface.
func DefaultConfig() Config {
	return Config{
		MinWidth:            2,
		MaxWidth:            12,
		VelocitySensitivity: 4,
		SmoothingFactor:     0.2,
	}
}

// Validate checks the invariants every Engine relies on.
func (c Config) Validate() error {
	if !(c.MinWidth > 0) {
		return fmt.Errorf("min width must be positive, got %v", c.MinWidth)
	}
	if c.MaxWidth < c.MinWidth {
		return fmt.Errorf("max width %v is smaller than min width %v", c.MaxWidth, c.MinWidth)
	}
	if c.VelocitySensitivity < 0 {
		return fmt.Errorf("velocity sensitivity must not be negative, got %v", c.VelocitySensitivity)
	}
	if !(c.SmoothingFactor > 0 && c.SmoothingFactor <= 1) {
		return fmt.Errorf("smoothing factor must be in (0, 1], got %v", c.SmoothingFactor)
	}
	return nil
}

// StartWidth is the width of the initial dot and the first smoothing input.
func (c Config) StartWidth() float64 {
	return (c.MinWidth + c.MaxWidth) / 2
}

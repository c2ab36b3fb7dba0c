package brush

import (
	"math"

	"github.com/example/inkpad/internal/pointer"
)

// Distance is the euclidean distance between two samples.
func Distance(a, b pointer.Sample) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Velocity returns the speed from a to b in pixels per millisecond. Samples
// that share a timestamp, or arrive out of order, report zero.
func Velocity(a, b pointer.Sample) float64 {
	dt := b.Millis - a.Millis
	if dt <= 0 {
		return 0
	}
	return Distance(a, b) / float64(dt)
}

// TargetWidth maps a velocity to the width the brush is heading towards.
func (c Config) TargetWidth(velocity float64) float64 {
	return clamp(c.MaxWidth-velocity*c.VelocitySensitivity, c.MinWidth, c.MaxWidth)
}

// Smooth blends the previous width towards target by the smoothing factor.
func (c Config) Smooth(last, target float64) float64 {
	return last + (target-last)*c.SmoothingFactor
}

// NextWidth combines TargetWidth and Smooth for the segment from a to b.
func (c Config) NextWidth(last float64, a, b pointer.Sample) float64 {
	w := c.Smooth(last, c.TargetWidth(Velocity(a, b)))
	// keep float drift from leaking outside the range
	return clamp(w, c.MinWidth, c.MaxWidth)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package brush

import (
	"math"
	"testing"

	"github.com/example/inkpad/internal/pointer"
)

const eps = 1e-9

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"default", DefaultConfig(), true},
		{"equal widths", Config{MinWidth: 4, MaxWidth: 4, VelocitySensitivity: 1, SmoothingFactor: 1}, true},
		{"zero min", Config{MinWidth: 0, MaxWidth: 4, SmoothingFactor: 0.5}, false},
		{"max below min", Config{MinWidth: 5, MaxWidth: 4, SmoothingFactor: 0.5}, false},
		{"negative sensitivity", Config{MinWidth: 1, MaxWidth: 4, VelocitySensitivity: -1, SmoothingFactor: 0.5}, false},
		{"zero smoothing", Config{MinWidth: 1, MaxWidth: 4, SmoothingFactor: 0}, false},
		{"smoothing above one", Config{MinWidth: 1, MaxWidth: 4, SmoothingFactor: 1.5}, false},
		{"NaN min", Config{MinWidth: math.NaN(), MaxWidth: 4, SmoothingFactor: 0.5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestVelocityZeroElapsed(t *testing.T) {
	a := pointer.Sample{X: 0, Y: 0, Millis: 50}
	b := pointer.Sample{X: 30, Y: 40, Millis: 50}
	v := Velocity(a, b)
	if v != 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		t.Fatalf("Velocity = %v, want 0", v)
	}
	cfg := DefaultConfig()
	if got := cfg.TargetWidth(v); got != cfg.MaxWidth {
		t.Fatalf("TargetWidth(0) = %v, want max width %v", got, cfg.MaxWidth)
	}
}

func TestVelocityBackwardsClock(t *testing.T) {
	if v := Velocity(pointer.Sample{Millis: 100}, pointer.Sample{X: 10, Millis: 90}); v != 0 {
		t.Fatalf("expected zero velocity for out of order samples, got %v", v)
	}
}

func TestVelocity(t *testing.T) {
	v := Velocity(pointer.Sample{X: 0, Y: 0, Millis: 0}, pointer.Sample{X: 30, Y: 40, Millis: 25})
	if math.Abs(v-2) > eps {
		t.Fatalf("Velocity = %v, want 2", v)
	}
}

func TestTargetWidthClamps(t *testing.T) {
	cfg := Config{MinWidth: 2, MaxWidth: 10, VelocitySensitivity: 3, SmoothingFactor: 0.2}
	tests := []struct {
		v    float64
		want float64
	}{
		{0, 10},
		{1, 7},
		{2, 4},
		{100, 2},
	}
	for _, tt := range tests {
		if got := cfg.TargetWidth(tt.v); math.Abs(got-tt.want) > eps {
			t.Errorf("TargetWidth(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestTargetWidthMonotonicInSensitivity(t *testing.T) {
	const v = 0.7
	prev := math.Inf(1)
	for s := 0.0; s <= 40; s += 0.5 {
		cfg := Config{MinWidth: 1, MaxWidth: 20, VelocitySensitivity: s, SmoothingFactor: 0.2}
		got := cfg.TargetWidth(v)
		if got > prev+eps {
			t.Fatalf("sensitivity %v widened target: %v > %v", s, got, prev)
		}
		prev = got
	}
}

func TestSmoothConverges(t *testing.T) {
	cfg := Config{MinWidth: 1, MaxWidth: 20, VelocitySensitivity: 1, SmoothingFactor: 0.2}
	const target = 3.0
	w := cfg.StartWidth()
	gap := math.Abs(w - target)
	for i := 0; i < 200; i++ {
		w = cfg.Smooth(w, target)
		g := math.Abs(w - target)
		if g > gap+eps {
			t.Fatalf("step %d: gap grew from %v to %v", i, gap, g)
		}
		if w < target-eps {
			t.Fatalf("step %d: overshot target: %v", i, w)
		}
		gap = g
	}
	if gap > 1e-6 {
		t.Fatalf("width %v did not converge to %v", w, target)
	}
}

func TestSmoothFactorOneJumps(t *testing.T) {
	cfg := Config{MinWidth: 1, MaxWidth: 20, SmoothingFactor: 1}
	if got := cfg.Smooth(5, 17); got != 17 {
		t.Fatalf("Smooth = %v, want 17", got)
	}
}

func TestNextWidthStaysInRange(t *testing.T) {
	configs := []Config{
		DefaultConfig(),
		{MinWidth: 1, MaxWidth: 1, VelocitySensitivity: 5, SmoothingFactor: 0.3},
		{MinWidth: 0.5, MaxWidth: 30, VelocitySensitivity: 50, SmoothingFactor: 1},
		{MinWidth: 3, MaxWidth: 9, VelocitySensitivity: 0, SmoothingFactor: 0.05},
	}
	// irregular timing: duplicates, bursts and long pauses
	samples := []pointer.Sample{
		{X: 0, Y: 0, Millis: 0}, {X: 0, Y: 0, Millis: 0}, {X: 5, Y: 5, Millis: 1}, {X: 300, Y: 5, Millis: 2}, {X: 300, Y: 5, Millis: 2}, {X: 301, Y: 6, Millis: 900},
		{X: 10, Y: 400, Millis: 901}, {X: 11, Y: 400, Millis: 1400}, {X: 11, Y: 401, Millis: 1400}, {X: 500, Y: 500, Millis: 1401},
	}
	for _, cfg := range configs {
		w := cfg.StartWidth()
		for i := 1; i < len(samples); i++ {
			w = cfg.NextWidth(w, samples[i-1], samples[i])
			if w < cfg.MinWidth || w > cfg.MaxWidth || math.IsNaN(w) {
				t.Fatalf("cfg %+v step %d: width %v outside [%v, %v]", cfg, i, w, cfg.MinWidth, cfg.MaxWidth)
			}
		}
	}
}

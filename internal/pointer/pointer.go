// Package pointer turns raw mouse and touch input into surface-local samples.
package pointer

// Kind identifies the phase of a pointer event.
type Kind int

const (
	Down Kind = iota
	Move
	Up
	// Leave is delivered when the pointer exits the surface or the host loses
	// focus. Consumers treat it like Up.
	Leave
)

func (k Kind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	case Leave:
		return "leave"
	}
	return "unknown"
}

// Position is a screen coordinate.
type Position struct {
	X, Y float64
}

// Contact is a single touch point in screen coordinates.
type Contact struct {
	ID int64
	Position
}

// Event is one raw pointer event as delivered by the host. It carries either a
// list of touch contacts or a mouse position.
type Event struct {
	Kind     Kind
	Touches  []Contact
	Mouse    Position
	HasMouse bool
	// Millis is a monotonic capture time in milliseconds.
	Millis int64
}

// Rect is the surface's on-screen bounding box.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// Contains reports whether the screen position lies within r.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.Left && p.X < r.Left+r.Width && p.Y >= r.Top && p.Y < r.Top+r.Height
}

// Sample is a normalized surface-local coordinate with its capture time.
type Sample struct {
	X, Y   float64
	Millis int64
}

// Normalize maps ev to coordinates relative to the origin of r. The first
// touch contact wins over the mouse position. Coordinates are not scaled: the
// surface's backing pixels are assumed to match its on-screen size.
//
// The caller must not pass an event that has neither touches nor mouse data.
func Normalize(ev Event, r Rect) Sample {
	p := ev.Mouse
	if len(ev.Touches) > 0 {
		p = ev.Touches[0].Position
	}
	return Sample{X: p.X - r.Left, Y: p.Y - r.Top, Millis: ev.Millis}
}

// Screen returns the screen position that Normalize would use for ev.
func (ev Event) Screen() Position {
	if len(ev.Touches) > 0 {
		return ev.Touches[0].Position
	}
	return ev.Mouse
}

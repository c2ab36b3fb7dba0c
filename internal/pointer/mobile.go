package pointer

import (
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/touch"
)

// FromMouse converts a shiny mouse event. Only the left button drives
// strokes; motion with no button reports Move so the engine can ignore it
// while idle. ok is false for events that never reach the engine (other
// buttons, wheel steps).
func FromMouse(e mouse.Event, millis int64) (ev Event, ok bool) {
	ev = Event{
		Mouse:    Position{X: float64(e.X), Y: float64(e.Y)},
		HasMouse: true,
		Millis:   millis,
	}
	switch e.Direction {
	case mouse.DirNone:
		ev.Kind = Move
		return ev, true
	case mouse.DirPress:
		if e.Button != mouse.ButtonLeft {
			return ev, false
		}
		ev.Kind = Down
		return ev, true
	case mouse.DirRelease:
		if e.Button != mouse.ButtonLeft {
			return ev, false
		}
		ev.Kind = Up
		return ev, true
	}
	return ev, false
}

// FromTouch converts a shiny touch event into a single-contact event.
func FromTouch(e touch.Event, millis int64) Event {
	ev := Event{
		Touches: []Contact{{ID: int64(e.Sequence), Position: Position{X: float64(e.X), Y: float64(e.Y)}}},
		Millis:  millis,
	}
	switch e.Type {
	case touch.TypeBegin:
		ev.Kind = Down
	case touch.TypeEnd:
		ev.Kind = Up
	default:
		ev.Kind = Move
	}
	return ev
}

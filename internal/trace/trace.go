// Package trace records and parses pointer event streams so strokes can be
// replayed without a window.
//
// The format is line based:
//
//	rect <left> <top> <width> <height>
//	down|move|up|leave <x> <y> <millis>
//	touch down|move|up <x> <y> <millis>
//
// Blank lines and lines starting with # are ignored. Coordinates are screen
// coordinates; rect positions the surface on screen for every event that
// follows it, so a trace survives the surface moving mid-recording.
package trace

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/inkpad/internal/pointer"
)

// Step is one event with the surface rectangle in effect when it arrived.
type Step struct {
	Rect  pointer.Rect
	Event pointer.Event
}

// Trace is a parsed pointer stream.
type Trace struct {
	// Rect is the first rectangle declared, which sizes a replay surface.
	Rect  pointer.Rect
	Steps []Step
}

// ParseError reports a malformed line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("trace line %d: %s", e.Line, e.Msg)
}

// Parse reads a trace. Timestamps must not decrease.
func Parse(r io.Reader) (*Trace, error) {
	t := &Trace{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	var (
		last    int64
		rect    pointer.Rect
		hasRect bool
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if fields[0] == "rect" {
			nums, err := parseFloats(fields[1:], 4)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Msg: "rect: " + err.Error()}
			}
			rect = pointer.Rect{Left: nums[0], Top: nums[1], Width: nums[2], Height: nums[3]}
			if !hasRect {
				t.Rect = rect
				hasRect = true
			}
			continue
		}
		ev, err := parseEvent(fields)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Msg: err.Error()}
		}
		if ev.Millis < last {
			return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("timestamp %d before previous %d", ev.Millis, last)}
		}
		last = ev.Millis
		t.Steps = append(t.Steps, Step{Rect: rect, Event: ev})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

func parseEvent(fields []string) (pointer.Event, error) {
	touch := fields[0] == "touch"
	if touch {
		fields = fields[1:]
		if len(fields) == 0 {
			return pointer.Event{}, fmt.Errorf("touch requires a kind")
		}
	}
	kind, ok := parseKind(fields[0])
	if !ok {
		return pointer.Event{}, fmt.Errorf("unknown event %q", fields[0])
	}
	if touch && kind == pointer.Leave {
		return pointer.Event{}, fmt.Errorf("touch events cannot leave")
	}
	if len(fields) != 4 {
		return pointer.Event{}, fmt.Errorf("%s requires x y millis", fields[0])
	}
	xy, err := parseFloats(fields[1:3], 2)
	if err != nil {
		return pointer.Event{}, err
	}
	ms, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return pointer.Event{}, fmt.Errorf("invalid millis %q", fields[3])
	}
	pos := pointer.Position{X: xy[0], Y: xy[1]}
	ev := pointer.Event{Kind: kind, Millis: ms}
	if touch {
		ev.Touches = []pointer.Contact{{Position: pos}}
	} else {
		ev.Mouse = pos
		ev.HasMouse = true
	}
	return ev, nil
}

func parseKind(s string) (pointer.Kind, bool) {
	for _, k := range []pointer.Kind{pointer.Down, pointer.Move, pointer.Up, pointer.Leave} {
		if s == k.String() {
			return k, true
		}
	}
	return 0, false
}

func parseFloats(fields []string, n int) ([]float64, error) {
	if len(fields) != n {
		return nil, fmt.Errorf("expected %d numbers, got %d", n, len(fields))
	}
	out := make([]float64, n)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", f)
		}
		out[i] = v
	}
	return out, nil
}

// Writer records events in the trace format.
type Writer struct {
	w       io.Writer
	rect    pointer.Rect
	started bool
	err     error
}

// NewWriter returns a Writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write appends one event, preceded by a rect line when r differs from the
// previous event's. The first error is sticky and returned again by every
// later call.
func (tw *Writer) Write(ev pointer.Event, r pointer.Rect) error {
	if tw.err != nil {
		return tw.err
	}
	if !tw.started || r != tw.rect {
		tw.started = true
		tw.rect = r
		tw.printf("rect %s %s %s %s\n", num(r.Left), num(r.Top), num(r.Width), num(r.Height))
	}
	p := ev.Screen()
	prefix := ""
	if len(ev.Touches) > 0 {
		prefix = "touch "
	}
	tw.printf("%s%s %s %s %d\n", prefix, ev.Kind, num(p.X), num(p.Y), ev.Millis)
	return tw.err
}

func (tw *Writer) printf(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.w, format, args...)
}

func num(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// Handler receives replayed events.
type Handler interface {
	Pointer(ev pointer.Event, r pointer.Rect)
}

// Replay feeds every step of t to h in order and returns how many were sent.
func Replay(t *Trace, h Handler) int {
	for _, st := range t.Steps {
		h.Pointer(st.Event, st.Rect)
	}
	return len(t.Steps)
}

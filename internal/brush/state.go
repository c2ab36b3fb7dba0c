package brush

import (
	"image/color"

	"github.com/example/inkpad/internal/pointer"
	"github.com/example/inkpad/internal/surface"
)

// Phase is the stroke state machine's position.
type Phase int

const (
	Idle Phase = iota
	Drawing
)

func (p Phase) String() string {
	if p == Drawing {
		return "drawing"
	}
	return "idle"
}

// State is the per-contact stroke state. Last and LastWidth are only
// meaningful while Phase is Drawing.
type State struct {
	Phase     Phase
	Last      pointer.Sample
	LastWidth float64
}

// Active reports whether a stroke is in progress.
func (s State) Active() bool { return s.Phase == Drawing }

// OpKind distinguishes the two rendering operations.
type OpKind int

const (
	OpDot OpKind = iota
	OpSegment
)

// Op is a rendering side effect produced by a transition. A dot uses From as
// its centre and Width as its diameter.
type Op struct {
	Kind  OpKind
	From  surface.Point
	To    surface.Point
	Width float64
}

// Apply draws the operation onto s with colour c.
func (o Op) Apply(s surface.Surface, c color.Color) {
	switch o.Kind {
	case OpDot:
		s.StrokeDot(o.From, o.Width, c)
	case OpSegment:
		s.StrokeSegment(o.From, o.To, o.Width, c)
	}
}

func point(s pointer.Sample) surface.Point { return surface.Point{X: s.X, Y: s.Y} }

// Start begins a stroke at s. A stroke already in progress is abandoned in
// place: its ink stays and the new stroke starts fresh from s.
func Start(cfg Config, _ State, s pointer.Sample) (State, []Op) {
	w := cfg.StartWidth()
	next := State{Phase: Drawing, Last: s, LastWidth: w}
	return next, []Op{{Kind: OpDot, From: point(s), To: point(s), Width: w}}
}

// Move extends the active stroke to s. While idle it returns st unchanged
// and no operations.
func Move(cfg Config, st State, s pointer.Sample) (State, []Op) {
	if st.Phase != Drawing {
		return st, nil
	}
	w := cfg.NextWidth(st.LastWidth, st.Last, s)
	op := Op{Kind: OpSegment, From: point(st.Last), To: point(s), Width: w}
	return State{Phase: Drawing, Last: s, LastWidth: w}, []Op{op}
}

// End finishes the active stroke. completed is false when there was no
// stroke to finish.
func End(st State) (next State, completed bool) {
	if st.Phase != Drawing {
		return st, false
	}
	return State{Phase: Idle}, true
}

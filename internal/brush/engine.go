package brush

import (
	"errors"
	"image/color"

	"github.com/example/inkpad/internal/pointer"
	"github.com/example/inkpad/internal/surface"
)

var (
	// DefaultInk is the stroke colour used when no WithInk option is given.
	DefaultInk = color.RGBA{17, 17, 17, 255}
	// DefaultBackground fills the surface when no WithBackground option is given.
	DefaultBackground = color.RGBA{255, 255, 255, 255}
)

// Engine owns the stroke state for one surface and rasterizes strokes onto
// it. It is not safe for concurrent use; all events must be delivered from
// the goroutine that owns the surface.
type Engine struct {
	surf       surface.Surface
	cfg        Config
	state      State
	ink        color.Color
	background color.Color
	onComplete func()
}

// Option configures an Engine during creation.
type Option func(*Engine)

// WithInk sets the stroke colour.
func WithInk(c color.Color) Option { return func(e *Engine) { e.ink = c } }

// WithBackground sets the colour used to fill the surface on creation and
// on Clear.
func WithBackground(c color.Color) Option { return func(e *Engine) { e.background = c } }

// WithOnComplete registers a callback invoked once per finished stroke.
func WithOnComplete(fn func()) Option { return func(e *Engine) { e.onComplete = fn } }

// NewEngine binds an engine to surf and fills it with the background. The
// surface must already exist; the engine never takes over its lifecycle.
func NewEngine(surf surface.Surface, cfg Config, opts ...Option) (*Engine, error) {
	if surf == nil {
		return nil, errors.New("brush engine requires a surface")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{surf: surf, cfg: cfg, ink: DefaultInk, background: DefaultBackground}
	for _, o := range opts {
		o(e)
	}
	e.surf.Fill(e.background)
	return e, nil
}

// Config returns the engine's brush configuration.
func (e *Engine) Config() Config { return e.cfg }

// State returns a copy of the current stroke state.
func (e *Engine) State() State { return e.state }

// Surface returns the surface the engine draws on.
func (e *Engine) Surface() surface.Surface { return e.surf }

// Start begins a stroke at s and paints the initial dot.
func (e *Engine) Start(s pointer.Sample) {
	var ops []Op
	e.state, ops = Start(e.cfg, e.state, s)
	e.apply(ops)
	logger().Debug("stroke start", "x", s.X, "y", s.Y, "width", e.state.LastWidth)
}

// Move extends the current stroke to s. It does nothing while idle.
func (e *Engine) Move(s pointer.Sample) {
	var ops []Op
	e.state, ops = Move(e.cfg, e.state, s)
	e.apply(ops)
}

// End finishes the current stroke and notifies the completion callback.
func (e *Engine) End() {
	var done bool
	e.state, done = End(e.state)
	if !done {
		return
	}
	logger().Debug("stroke end")
	if e.onComplete != nil {
		e.onComplete()
	}
}

// Handle normalizes ev against the surface rectangle r and dispatches it.
// Leave finishes the stroke exactly like Up; ink already drawn stays.
func (e *Engine) Handle(ev pointer.Event, r pointer.Rect) {
	switch ev.Kind {
	case pointer.Down:
		e.Start(pointer.Normalize(ev, r))
	case pointer.Move:
		if e.state.Active() {
			e.Move(pointer.Normalize(ev, r))
		}
	case pointer.Up, pointer.Leave:
		e.End()
	}
}

// Clear drops any stroke in progress without notifying completion and
// refills the surface with the background.
func (e *Engine) Clear() {
	e.state = State{}
	e.surf.Fill(e.background)
	logger().Debug("surface cleared")
}

func (e *Engine) apply(ops []Op) {
	for _, op := range ops {
		op.Apply(e.surf, e.ink)
	}
}

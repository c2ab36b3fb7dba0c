// Package pad hosts a practice session: one surface, the brush engine bound
// to it, and the actions a learner takes on the finished drawing.
package pad

import (
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/example/inkpad/internal/brush"
	"github.com/example/inkpad/internal/clipboard"
	"github.com/example/inkpad/internal/notify"
	"github.com/example/inkpad/internal/pointer"
	"github.com/example/inkpad/internal/surface"
	"github.com/example/inkpad/internal/theme"
	"github.com/example/inkpad/internal/trace"
)

// Config describes the surface and brush of a session.
type Config struct {
	Backend string
	Width   int
	Height  int
	Brush   brush.Config
	Theme   *theme.Theme
	SaveDir string
}

// Session owns one surface and its engine. Like the engine it is meant to
// be driven from a single goroutine.
type Session struct {
	cfg      Config
	surf     surface.Surface
	engine   *brush.Engine
	strokes  int
	listener func(strokes int)
	notifier *notify.Notifier
	recorder *trace.Writer
	copyFn   func(image.Image, string) error
}

// Option modifies a Session during creation.
type Option func(*Session)

// WithListener registers a callback run after every completed stroke with
// the number of strokes since the last clear.
func WithListener(fn func(strokes int)) Option { return func(s *Session) { s.listener = fn } }

// WithNotifier sends desktop notifications for save, copy and export.
func WithNotifier(n *notify.Notifier) Option { return func(s *Session) { s.notifier = n } }

// WithRecorder writes every pointer event to w in trace format.
func WithRecorder(w io.Writer) Option {
	return func(s *Session) { s.recorder = trace.NewWriter(w) }
}

// NewSession creates the surface described by cfg and binds an engine to it.
func NewSession(cfg Config, opts ...Option) (*Session, error) {
	if cfg.Theme == nil {
		cfg.Theme = theme.Default()
	}
	surf, err := surface.New(cfg.Backend, cfg.Width, cfg.Height, cfg.Theme.Paper)
	if err != nil {
		return nil, err
	}
	s := &Session{cfg: cfg, surf: surf, copyFn: clipboard.Write}
	for _, o := range opts {
		o(s)
	}
	s.engine, err = brush.NewEngine(surf, cfg.Brush,
		brush.WithInk(cfg.Theme.Ink),
		brush.WithBackground(cfg.Theme.Paper),
		brush.WithOnComplete(s.strokeDone),
	)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("brush: %w", err)
	}
	return s, nil
}

func (s *Session) strokeDone() {
	s.strokes++
	if s.listener != nil {
		s.listener(s.strokes)
	}
}

// Pointer routes a host pointer event to the engine. r is the surface's
// on-screen rectangle at the time of the event.
func (s *Session) Pointer(ev pointer.Event, r pointer.Rect) {
	if s.recorder != nil {
		if err := s.recorder.Write(ev, r); err != nil {
			log.Printf("record trace: %v", err)
			s.recorder = nil
		}
	}
	s.engine.Handle(ev, r)
}

// Clear wipes the surface back to paper and forgets completed strokes.
func (s *Session) Clear() {
	s.engine.Clear()
	s.strokes = 0
}

// Reset clears the surface because the practice target changed.
func (s *Session) Reset(reason string) {
	log.Printf("reset surface: %s", reason)
	s.Clear()
}

// Strokes reports the strokes completed since the last clear.
func (s *Session) Strokes() int { return s.strokes }

// Submittable reports whether there is anything to submit.
func (s *Session) Submittable() bool { return s.strokes > 0 }

// Drawing reports whether a stroke is in progress.
func (s *Session) Drawing() bool { return s.engine.State().Active() }

// Size reports the surface dimensions.
func (s *Session) Size() image.Point { return s.surf.Bounds().Size() }

// Theme returns the session's colours.
func (s *Session) Theme() *theme.Theme { return s.cfg.Theme }

// Surface exposes the surface for hosts that blit it directly.
func (s *Session) Surface() surface.Surface { return s.surf }

// Snapshot returns a copy of the drawing that stays valid after further
// strokes.
func (s *Session) Snapshot() *image.RGBA { return surface.Snapshot(s.surf) }

// SavePNG writes the drawing to a uniquely named file in dir, or in the
// configured save directory when dir is empty, and returns its path.
func (s *Session) SavePNG(dir string) (string, error) {
	if dir == "" {
		dir = s.cfg.SaveDir
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("save: %w", err)
	}
	path := filepath.Join(dir, "inkpad-"+uuid.NewString()+".png")
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("save: %w", err)
	}
	if err := surface.EncodePNG(out, s.surf); err != nil {
		if cerr := out.Close(); cerr != nil {
			log.Printf("save: closing file: %v", cerr)
		}
		return "", fmt.Errorf("save: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("save: closing file: %w", err)
	}
	s.Announce(notify.EventSave, path)
	return path, nil
}

// DataURL returns the drawing as a PNG data URL.
func (s *Session) DataURL() (string, error) {
	return surface.DataURL(s.surf)
}

// Export returns the data URL and announces it.
func (s *Session) Export() (string, error) {
	url, err := s.DataURL()
	if err != nil {
		return "", err
	}
	s.Announce(notify.EventExport, "")
	return url, nil
}

// CopyToClipboard places the drawing on the clipboard as PNG, with the data
// URL as the text alternative.
func (s *Session) CopyToClipboard() error {
	url, err := s.DataURL()
	if err != nil {
		return err
	}
	if err := s.copyFn(s.Snapshot(), url); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	s.Announce(notify.EventCopy, "")
	return nil
}

// Announce sends the notification for event when it is enabled. path names
// the written file for saves; otherwise a snapshot serves as the icon.
func (s *Session) Announce(event notify.Event, path string) {
	if !s.notifier.Enabled(event) {
		return
	}
	d := notify.Drawing{Strokes: s.strokes, Path: path}
	if path == "" {
		d.Preview = s.Snapshot()
	}
	s.notifier.Notify(event, d)
}

// Close releases backend resources.
func (s *Session) Close() {
	if c, ok := s.surf.(io.Closer); ok {
		if err := c.Close(); err != nil {
			log.Printf("close surface: %v", err)
		}
	}
}

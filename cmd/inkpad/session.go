package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/example/inkpad/internal/brush"
	"github.com/example/inkpad/internal/chime"
	"github.com/example/inkpad/internal/pad"
	"github.com/example/inkpad/internal/surface"
	"github.com/example/inkpad/internal/theme"
)

// sessionFlags are shared by every command that builds a session. They
// default to the loaded configuration.
type sessionFlags struct {
	backend     string
	width       int
	height      int
	minWidth    float64
	maxWidth    float64
	sensitivity float64
	smoothing   float64
	saveDir     string
}

func (sf *sessionFlags) register(fs *flag.FlagSet, r *root) {
	cfg := r.config
	fs.StringVar(&sf.backend, "backend", cfg.Backend, "surface backend: "+strings.Join(surface.Backends(), ", "))
	fs.IntVar(&sf.width, "width", cfg.Width, "surface width in pixels")
	fs.IntVar(&sf.height, "height", cfg.Height, "surface height in pixels")
	fs.Float64Var(&sf.minWidth, "min-width", cfg.Brush.MinWidth, "thinnest line width")
	fs.Float64Var(&sf.maxWidth, "max-width", cfg.Brush.MaxWidth, "thickest line width")
	fs.Float64Var(&sf.sensitivity, "sensitivity", cfg.Brush.VelocitySensitivity, "width lost per pixel/ms of pointer speed")
	fs.Float64Var(&sf.smoothing, "smoothing", cfg.Brush.SmoothingFactor, "fraction of the width change applied per sample (0, 1]")
	fs.StringVar(&sf.saveDir, "save-dir", cfg.SaveDir, "directory for saved drawings")
}

func (sf *sessionFlags) padConfig(t *theme.Theme) pad.Config {
	return pad.Config{
		Backend: sf.backend,
		Width:   sf.width,
		Height:  sf.height,
		Theme:   t,
		SaveDir: sf.saveDir,
		Brush: brush.Config{
			MinWidth:            sf.minWidth,
			MaxWidth:            sf.maxWidth,
			VelocitySensitivity: sf.sensitivity,
			SmoothingFactor:     sf.smoothing,
		},
	}
}

// interactiveFlags add recording and the chime to sessionFlags.
type interactiveFlags struct {
	sessionFlags
	record string
	chime  bool
}

func (f *interactiveFlags) register(fs *flag.FlagSet, r *root) {
	f.sessionFlags.register(fs, r)
	fs.StringVar(&f.record, "record", "", "write every pointer event to this trace file")
	fs.BoolVar(&f.chime, "chime", false, "play a short tone when a stroke is finished")
}

// open builds the session. The returned cleanup closes the trace file,
// the chime and the surface.
func (f *interactiveFlags) open(r *root) (*pad.Session, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	opts := []pad.Option{pad.WithNotifier(r.notifier)}
	if f.record != "" {
		out, err := os.Create(f.record)
		if err != nil {
			return nil, nil, fmt.Errorf("record: %w", err)
		}
		closers = append(closers, func() {
			if err := out.Close(); err != nil {
				log.Printf("record: closing file: %v", err)
			}
		})
		opts = append(opts, pad.WithRecorder(out))
	}
	if f.chime {
		c := chime.New(880, 120*time.Millisecond)
		if err := c.Initialize(); err != nil {
			log.Printf("chime disabled: %v", err)
		} else {
			closers = append(closers, c.Close)
			opts = append(opts, pad.WithListener(func(int) { c.Ring() }))
		}
	}
	s, err := pad.NewSession(f.padConfig(r.activeTheme), opts...)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	closers = append(closers, s.Close)
	return s, cleanup, nil
}

func printLine(w io.Writer, s string) {
	if _, err := fmt.Fprintln(w, s); err != nil {
		log.Printf("write: %v", err)
	}
}

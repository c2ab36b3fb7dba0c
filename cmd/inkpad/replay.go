package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/example/inkpad/internal/notify"
	"github.com/example/inkpad/internal/pad"
	"github.com/example/inkpad/internal/surface"
	"github.com/example/inkpad/internal/trace"
)

type replayCmd struct {
	sessionFlags
	output      string
	stdout      bool
	dataURL     bool
	toClipboard bool
	input       string
	// sizeExplicit is set when -width or -height was given
	sizeExplicit bool
	*root
	fs *flag.FlagSet

	stdin  io.Reader
	out    io.Writer
	copyFn func(*pad.Session) error
}

func (c *replayCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseReplayCmd(args []string, r *root) (*replayCmd, error) {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	c := &replayCmd{root: r, fs: fs, stdin: os.Stdin, out: os.Stdout, copyFn: (*pad.Session).CopyToClipboard}
	fs.Usage = usageFunc(c)
	c.sessionFlags.register(fs, r)
	fs.StringVar(&c.output, "output", "", "write the drawing to this PNG file")
	fs.BoolVar(&c.stdout, "stdout", false, "write PNG data to stdout")
	fs.BoolVar(&c.dataURL, "data-url", false, "print the drawing as a PNG data URL")
	fs.BoolVar(&c.toClipboard, "to-clipboard", false, "copy the drawing to the clipboard")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, &UsageError{of: c}
	}
	c.input = fs.Arg(0)
	if c.stdout && c.dataURL {
		return nil, fmt.Errorf("-stdout cannot be used with -data-url")
	}
	if c.output == "" && !c.stdout && !c.dataURL && !c.toClipboard {
		c.output = "replay.png"
	}
	// a recorded rect sizes the surface unless the size was given explicitly
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width", "height":
			c.sizeExplicit = true
		}
	})
	return c, nil
}

func (c *replayCmd) readTrace() (*trace.Trace, error) {
	if c.input == "-" {
		return trace.Parse(c.stdin)
	}
	f, err := os.Open(c.input)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	defer f.Close()
	tr, err := trace.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("replay %s: %w", c.input, err)
	}
	return tr, nil
}

func (c *replayCmd) Run() error {
	tr, err := c.readTrace()
	if err != nil {
		return err
	}
	cfg := c.padConfig(c.root.activeTheme)
	if !c.sizeExplicit && tr.Rect.Width >= 1 && tr.Rect.Height >= 1 {
		cfg.Width = int(tr.Rect.Width)
		cfg.Height = int(tr.Rect.Height)
	}
	s, err := pad.NewSession(cfg, pad.WithNotifier(c.root.notifier))
	if err != nil {
		return err
	}
	defer s.Close()
	trace.Replay(tr, s)

	if c.output != "" {
		if err := writePNG(c.output, s); err != nil {
			return err
		}
		s.Announce(notify.EventSave, c.output)
	}
	if c.stdout {
		if err := surface.EncodePNG(c.out, s.Surface()); err != nil {
			return fmt.Errorf("replay: %w", err)
		}
	}
	if c.dataURL {
		url, err := s.Export()
		if err != nil {
			return err
		}
		printLine(c.out, url)
	}
	if c.toClipboard {
		if err := c.copyFn(s); err != nil {
			return err
		}
	}
	return nil
}

func writePNG(path string, s *pad.Session) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := surface.EncodePNG(f, s.Surface()); err != nil {
		f.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

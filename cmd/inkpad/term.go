package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/example/inkpad/internal/term"
)

type termCmd struct {
	interactiveFlags
	*root
	fs *flag.FlagSet
}

func (t *termCmd) FlagSet() *flag.FlagSet {
	return t.fs
}

func parseTermCmd(args []string, r *root) (*termCmd, error) {
	fs := flag.NewFlagSet("term", flag.ExitOnError)
	c := &termCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	c.interactiveFlags.register(fs, r)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (t *termCmd) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}

	// log output would corrupt the screen; replay it once the terminal is restored
	var logs bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&logs)

	var exports []string
	s, cleanup, err := t.open(t.root)
	if err == nil {
		f := term.New(screen, s)
		f.Export = func(url string) { exports = append(exports, url) }
		f.Run()
		cleanup()
	}
	screen.Fini()
	log.SetOutput(prev)
	if logs.Len() > 0 {
		os.Stderr.Write(logs.Bytes())
	}
	if err != nil {
		return err
	}
	for _, url := range exports {
		printLine(os.Stdout, url)
	}
	return nil
}

package main

import (
	"flag"
	"os"

	"github.com/example/inkpad/internal/pad"
)

type padCmd struct {
	interactiveFlags
	*root
	fs *flag.FlagSet
}

func (p *padCmd) FlagSet() *flag.FlagSet {
	return p.fs
}

func parsePadCmd(args []string, r *root) (*padCmd, error) {
	fs := flag.NewFlagSet("pad", flag.ExitOnError)
	c := &padCmd{root: r, fs: fs}
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

func (p *padCmd) Run() error {
	s, cleanup, err := p.open(p.root)
	if err != nil {
		return err
	}
	defer cleanup()
	pad.NewWindow(s, pad.WithExportWriter(os.Stdout)).Run()
	return nil
}

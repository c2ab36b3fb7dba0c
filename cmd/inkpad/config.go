package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/example/inkpad/internal/config"
)

type configCmd struct {
	*root
	fs     *flag.FlagSet
	out    io.Writer
	loader *config.Loader
}

func (c *configCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseConfigCmd(args []string, r *root) (*configCmd, error) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	c := &configCmd{root: r, fs: fs, out: os.Stdout, loader: config.NewLoader(version, configPathOverride)}
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *configCmd) Run() error {
	switch sub := c.fs.Arg(0); sub {
	case "print":
		_, err := io.WriteString(c.out, c.root.config.String())
		return err
	case "save":
		path, err := c.loader.Save(c.root.config)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Configuration saved to %s\n", path)
		return nil
	default:
		return fmt.Errorf("unknown config command: %s", sub)
	}
}

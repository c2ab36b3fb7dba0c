package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/example/inkpad/internal/theme"
)

type themesCmd struct {
	*root
	fs  *flag.FlagSet
	out io.Writer
}

func (c *themesCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseThemesCmd(args []string, r *root) (*themesCmd, error) {
	fs := flag.NewFlagSet("themes", flag.ExitOnError)
	c := &themesCmd{root: r, fs: fs, out: os.Stdout}
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	switch {
	case fs.NArg() == 0, fs.NArg() == 1 && fs.Arg(0) == "list":
	case fs.NArg() == 2 && fs.Arg(0) == "show":
	default:
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *themesCmd) Run() error {
	if c.fs.NArg() == 2 {
		return c.show(c.fs.Arg(1))
	}
	active := ""
	if c.root.activeTheme != nil {
		active = c.root.activeTheme.Name
	}
	for _, name := range c.names() {
		marker := " "
		if strings.EqualFold(name, active) {
			marker = "*"
		}
		fmt.Fprintf(c.out, "%s %s\n", marker, name)
	}
	return nil
}

// names merges the embedded themes with those defined in the config file.
func (c *themesCmd) names() []string {
	seen := map[string]bool{}
	var names []string
	for _, n := range theme.Names() {
		seen[n] = true
		names = append(names, n)
	}
	var extra []string
	for n := range c.root.config.Themes {
		if !seen[n] {
			extra = append(extra, n)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}

func (c *themesCmd) show(name string) error {
	t, ok := c.root.config.Themes[name]
	if !ok {
		var err error
		if t, err = theme.NewLoader().Load(name); err != nil {
			return err
		}
	}
	fmt.Fprintf(c.out, "Name: %s\n", t.Name)
	for _, f := range t.Fields() {
		fmt.Fprintf(c.out, "%s: %s\n", f.Key, theme.Hex(f.Color))
	}
	return nil
}

package main

import (
	"bytes"
	"embed"
	"flag"
	"fmt"
	"os"
	"sync"
	"text/template"
)

// Help pages live in templates/, one per command plus flags.txt which every
// page includes to list its flag set.
//
//go:embed templates/*.txt
var helpFS embed.FS

var (
	helpOnce sync.Once
	helpTmpl *template.Template
)

func parseHelpTemplates() {
	helpTmpl = template.Must(template.New("").Funcs(map[string]any{
		// flags lists a command's flags in name order; nil for version
		"flags": func(fs *flag.FlagSet) []*flag.Flag {
			var out []*flag.Flag
			if fs != nil {
				fs.VisitAll(func(f *flag.Flag) { out = append(out, f) })
			}
			return out
		},
	}).ParseFS(helpFS, "templates/*.txt"))
}

// HelpData is implemented by root and every subcommand so a bad invocation
// can print that command's page.
type HelpData interface {
	Program() string
	Template() string
	FlagSet() *flag.FlagSet
}

// UsageError is returned by parseXxxCmd when the arguments do not fit the
// command. main prints it without a failing exit status.
type UsageError struct {
	of HelpData
}

func (e *UsageError) Error() string {
	help, err := e.renderHelp()
	if err != nil {
		return err.Error()
	}
	return help
}

func (e *UsageError) renderHelp() (string, error) {
	helpOnce.Do(parseHelpTemplates)
	var buf bytes.Buffer
	if err := helpTmpl.ExecuteTemplate(&buf, e.of.Template(), e.of); err != nil {
		return "", fmt.Errorf("help for %s: %w", e.of.Program(), err)
	}
	return buf.String(), nil
}

// usageFunc is installed as each command's FlagSet.Usage, so -h and flag
// parse errors show the same page as a UsageError. Session flags default to
// the loaded config, which is why the page is rendered on demand.
func usageFunc(h HelpData) func() {
	return func() {
		fmt.Fprint(os.Stderr, (&UsageError{of: h}).Error())
	}
}

func (r *root) Template() string {
	return "root.txt"
}

func (p *padCmd) Template() string {
	return "pad.txt"
}

func (t *termCmd) Template() string {
	return "term.txt"
}

func (c *replayCmd) Template() string {
	return "replay.txt"
}

func (c *themesCmd) Template() string {
	return "themes.txt"
}

func (c *configCmd) Template() string {
	return "config.txt"
}

func (v *versionCmd) Template() string {
	return "version.txt"
}

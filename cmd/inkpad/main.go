package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/example/inkpad/internal/brush"
	"github.com/example/inkpad/internal/config"
	"github.com/example/inkpad/internal/notify"
	"github.com/example/inkpad/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs           *flag.FlagSet
	program      string
	notifier     *notify.Notifier
	config       *config.Config
	saveAlerts   bool
	copyAlerts   bool
	exportAlerts bool
	verbose      bool
	themeName    string
	activeTheme  *theme.Theme
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	notifier, err := notify.New(notify.MessagesFromEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v. using default notification texts.\n", err)
		notifier, _ = notify.New(notify.DefaultMessages())
	}
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}

	r := &root{
		fs:       flag.NewFlagSet("inkpad", flag.ExitOnError),
		program:  "inkpad",
		notifier: notifier,
		config:   cfg,
	}
	r.fs.BoolVar(&r.saveAlerts, "notify-save", cfg.Notify.Save, "show a desktop notification after saving a drawing")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying to the clipboard")
	r.fs.BoolVar(&r.exportAlerts, "notify-export", cfg.Notify.Export, "show a desktop notification after exporting a data URL")
	r.fs.BoolVar(&r.verbose, "v", false, "log stroke transitions to stderr")

	// Precedence: CLI > Env > Config > Default
	r.fs.StringVar(&r.themeName, "theme", "", "colour theme ("+strings.Join(theme.Names(), ", ")+" or a .theme file)")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) subcommand(name string) *root {
	sub := *r
	sub.program = strings.TrimSpace(r.program + " " + name)
	sub.fs = nil
	return &sub
}

// resolveTheme applies the CLI > INKPAD_THEME > config > default order.
func (r *root) resolveTheme() *theme.Theme {
	name := r.themeName
	if name == "" {
		name = os.Getenv("INKPAD_THEME")
	}
	if name == "" {
		name = r.config.Theme
	}
	if t, ok := r.config.Themes[name]; ok {
		return t
	}
	t, err := theme.NewLoader().Load(name)
	if err != nil {
		if name != "" && name != "default" {
			fmt.Fprintf(os.Stderr, "warning: failed to load theme '%s': %v. using default.\n", name, err)
		}
		return theme.Default()
	}
	return t
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	if r.notifier != nil {
		r.notifier.Enable(notify.EventSave, r.saveAlerts)
		r.notifier.Enable(notify.EventCopy, r.copyAlerts)
		r.notifier.Enable(notify.EventExport, r.exportAlerts)
	}
	if r.verbose {
		brush.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	r.activeTheme = r.resolveTheme()

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "pad":
		cmd, err = parsePadCmd(subArgs, r.subcommand("pad"))
	case "term":
		cmd, err = parseTermCmd(subArgs, r.subcommand("term"))
	case "replay":
		cmd, err = parseReplayCmd(subArgs, r.subcommand("replay"))
	case "themes":
		cmd, err = parseThemesCmd(subArgs, r.subcommand("themes"))
	case "config":
		cmd, err = parseConfigCmd(subArgs, r.subcommand("config"))
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
		} else {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

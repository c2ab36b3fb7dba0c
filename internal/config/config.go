package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/example/inkpad/internal/brush"
	"github.com/example/inkpad/internal/surface"
	"github.com/example/inkpad/internal/theme"
)

// Notify holds notification settings.
type Notify struct {
	Save   bool
	Copy   bool
	Export bool
}

// Config holds the application configuration.
type Config struct {
	Theme   string
	SaveDir string
	Backend string
	Width   int
	Height  int
	Brush   brush.Config
	Notify  Notify
	Themes  map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme:   "", // empty falls back to env, then the default theme
		Backend: surface.BackendRaster,
		Width:   400,
		Height:  400,
		Brush:   brush.DefaultConfig(),
		Themes:  make(map[string]*theme.Theme),
	}
}

// Validate reports settings that would prevent a session from starting.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("surface size must be positive, got %dx%d", c.Width, c.Height)
	}
	if err := c.Brush.Validate(); err != nil {
		return fmt.Errorf("brush: %w", err)
	}
	return nil
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	fmt.Fprintf(&sb, "backend = %s\n", c.Backend)
	fmt.Fprintf(&sb, "width = %d\n", c.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Height)
	sb.WriteString("\n")

	sb.WriteString("[brush]\n")
	fmt.Fprintf(&sb, "min_width = %s\n", formatFloat(c.Brush.MinWidth))
	fmt.Fprintf(&sb, "max_width = %s\n", formatFloat(c.Brush.MaxWidth))
	fmt.Fprintf(&sb, "velocity_sensitivity = %s\n", formatFloat(c.Brush.VelocitySensitivity))
	fmt.Fprintf(&sb, "smoothing = %s\n", formatFloat(c.Brush.SmoothingFactor))
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	fmt.Fprintf(&sb, "export = %v\n", c.Notify.Export)
	sb.WriteString("\n")

	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		for _, f := range t.Fields() {
			fmt.Fprintf(&sb, "%s: %s\n", f.Key, theme.Hex(f.Color))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

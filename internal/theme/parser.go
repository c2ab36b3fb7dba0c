package theme

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Parse reads a theme definition from an io.Reader.
// Each line is "Key: value" where value is #RRGGBB, #RRGGBBAA or an SVG
// colour name. Unknown keys are ignored.
func Parse(r io.Reader) (*Theme, error) {
	t := Default()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if err := t.Set(strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return t, scanner.Err()
}

// Set assigns a field by its case-insensitive key.
func (t *Theme) Set(key, value string) error {
	if strings.EqualFold(key, "Name") {
		t.Name = value
		return nil
	}
	field := t.field(key)
	if field == nil {
		return nil
	}
	col, err := ParseColor(value)
	if err != nil {
		return fmt.Errorf("invalid color for key %s: %w", key, err)
	}
	*field = col
	return nil
}

// Fields returns the colour keys in a stable order with their values.
func (t *Theme) Fields() []Field {
	return []Field{
		{"Paper", t.Paper},
		{"Ink", t.Ink},
		{"Background", t.Background},
		{"StatusBar", t.StatusBar},
		{"StatusText", t.StatusText},
		{"Accent", t.Accent},
	}
}

// Field is a named theme colour.
type Field struct {
	Key   string
	Color color.RGBA
}

func (t *Theme) field(key string) *color.RGBA {
	switch strings.ToLower(key) {
	case "paper":
		return &t.Paper
	case "ink":
		return &t.Ink
	case "background":
		return &t.Background
	case "statusbar":
		return &t.StatusBar
	case "statustext":
		return &t.StatusText
	case "accent":
		return &t.Accent
	}
	return nil
}

// ParseColor accepts #RRGGBB, #RRGGBBAA or a colornames entry such as
// "ivory".
func ParseColor(s string) (color.RGBA, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if spec == "" {
		return color.RGBA{}, fmt.Errorf("color cannot be empty")
	}
	if c, ok := colornames.Map[spec]; ok {
		return c, nil
	}
	if !strings.HasPrefix(spec, "#") {
		return color.RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	hex := spec[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex length in %q", s)
	}
	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		return color.RGBA{R: uint8(val >> 16), G: uint8(val >> 8), B: uint8(val), A: 255}, nil
	}
	return color.RGBA{R: uint8(val >> 24), G: uint8(val >> 16), B: uint8(val >> 8), A: uint8(val)}, nil
}

// Hex formats c as #RRGGBB, or #RRGGBBAA when it is not opaque.
func Hex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

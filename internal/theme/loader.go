package theme

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Loader resolves theme names to definitions.
type Loader struct {
	ConfigDir string
	SystemDir string
}

// NewLoader creates a Loader with the standard user and system directories.
func NewLoader() *Loader {
	home, _ := os.UserHomeDir()
	return &Loader{
		ConfigDir: filepath.Join(home, ".config", "inkpad", "themes"),
		SystemDir: "/usr/share/inkpad/themes",
	}
}

// Load resolves name in order: an existing file path, the embedded themes,
// ConfigDir, SystemDir. An empty name yields Default.
func (l *Loader) Load(name string) (*Theme, error) {
	if name == "" {
		return Default(), nil
	}
	if _, err := os.Stat(name); err == nil {
		return parseFile(name)
	}

	filename := name
	if !strings.HasSuffix(filename, ".theme") {
		filename += ".theme"
	}
	if f, err := EmbeddedThemes.Open("defaults/" + filename); err == nil {
		defer f.Close()
		return parseNamed(f, name)
	}
	for _, dir := range []string{l.ConfigDir, l.SystemDir} {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return parseFile(path)
		}
	}
	return nil, fmt.Errorf("theme '%s' not found", name)
}

func parseFile(path string) (*Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}
	return t, nil
}

func parseNamed(r io.Reader, name string) (*Theme, error) {
	t, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", name, err)
	}
	if t.Name == "" || t.Name == Default().Name {
		t.Name = name
	}
	return t, nil
}

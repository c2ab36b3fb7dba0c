package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvPath names an environment variable that points at a config file.
const EnvPath = "INKPAD_CONFIG"

// Loader locates and reads the configuration file.
type Loader struct {
	Version      string // build version; "dev" also searches the working directory
	OverridePath string // set at compile time if needed
}

// NewLoader creates a new Loader.
func NewLoader(version string, overridePath string) *Loader {
	return &Loader{
		Version:      version,
		OverridePath: overridePath,
	}
}

// Load reads the first configuration file found, or returns defaults when
// there is none.
func (l *Loader) Load() (*Config, error) {
	path := l.GetConfigPath()
	if path == "" {
		return New(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// GetConfigPath returns the path to the configuration file, or empty string if not found.
func (l *Loader) GetConfigPath() string {
	for _, p := range l.candidates() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// DefaultPath is where Save writes when no file exists yet.
func (l *Loader) DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home dir: %w", err)
	}
	return filepath.Join(home, ".config", "inkpad", "config.rc"), nil
}

// Save writes cfg to the existing config file, or to DefaultPath.
func (l *Loader) Save(cfg *Config) (string, error) {
	path := l.GetConfigPath()
	if path == "" {
		var err error
		if path, err = l.DefaultPath(); err != nil {
			return "", err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(cfg.String()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return path, nil
}

func (l *Loader) candidates() []string {
	var out []string
	if l.OverridePath != "" {
		out = append(out, l.OverridePath)
	}
	if env := os.Getenv(EnvPath); env != "" {
		out = append(out, env)
	}
	if l.Version == "dev" {
		if wd, err := os.Getwd(); err == nil {
			out = append(out, filepath.Join(wd, ".inkpadrc"))
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		out = append(out,
			filepath.Join(home, ".config", "inkpad", "config.rc"),
			filepath.Join(home, ".config", "inkpad", "inkpad.rc"),
		)
	}
	return out
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
theme = rice_paper
save_dir = /tmp/practice
backend = VECTOR
width = 512
height = 384

[brush]
min_width = 1.5
max_width = 14
velocity_sensitivity = 5
smoothing = 0.25

[notify]
save = true
copy = false
export = true

[theme.night]
Paper = #111111
Ink = #FFFFFF
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "rice_paper" {
		t.Errorf("Expected theme 'rice_paper', got '%s'", cfg.Theme)
	}
	if cfg.SaveDir != "/tmp/practice" {
		t.Errorf("Expected save_dir '/tmp/practice', got '%s'", cfg.SaveDir)
	}
	if cfg.Backend != "vector" {
		t.Errorf("Expected backend 'vector', got '%s'", cfg.Backend)
	}
	if cfg.Width != 512 || cfg.Height != 384 {
		t.Errorf("unexpected size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Brush.MinWidth != 1.5 || cfg.Brush.MaxWidth != 14 || cfg.Brush.VelocitySensitivity != 5 || cfg.Brush.SmoothingFactor != 0.25 {
		t.Errorf("unexpected brush %+v", cfg.Brush)
	}
	if !cfg.Notify.Save || cfg.Notify.Copy || !cfg.Notify.Export {
		t.Errorf("unexpected notify %+v", cfg.Notify)
	}
	night, ok := cfg.Themes["night"]
	if !ok {
		t.Fatal("Expected theme 'night' to be loaded")
	}
	if night.Paper.R != 0x11 || night.Ink.R != 0xFF {
		t.Errorf("Unexpected night colors: %+v", night)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bad width", "width = wide\n", "root section"},
		{"bad brush", "[brush]\nmax_width = lots\n", "[brush]"},
		{"bad bool", "[notify]\nsave = maybe\n", "[notify]"},
		{"bad color", "[theme.x]\nInk = #XYZ\n", "[theme.x]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestValidateRejectsBadBrush(t *testing.T) {
	cfg, err := Parse(strings.NewReader("[brush]\nmin_width = 8\nmax_width = 4\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "brush") {
		t.Fatalf("expected brush validation error, got %v", err)
	}
}

func TestCircular(t *testing.T) {
	input := `theme = chalkboard
save_dir = /home/user/ink

[brush]
min_width = 0.75
max_width = 9
smoothing = 0.3

[notify]
save = true
copy = true
export = false

[theme.custom]
Name = custom
Paper = #000000
Accent = #FF000080
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	generated := cfg.String()

	cfg2, err := Parse(strings.NewReader(generated))
	if err != nil {
		t.Fatalf("Circular parse failed: %v", err)
	}

	if cfg.Theme != cfg2.Theme || cfg.SaveDir != cfg2.SaveDir || cfg.Backend != cfg2.Backend {
		t.Errorf("root mismatch: %+v vs %+v", cfg, cfg2)
	}
	if cfg.Width != cfg2.Width || cfg.Height != cfg2.Height {
		t.Errorf("size mismatch")
	}
	if cfg.Brush != cfg2.Brush {
		t.Errorf("Brush mismatch: %+v vs %+v", cfg.Brush, cfg2.Brush)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}
	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if *t1 != *t2 {
		t.Errorf("Theme mismatch: %+v vs %+v", t1, t2)
	}
}

func TestLoaderOverrideAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inkpad.rc")
	if err := os.WriteFile(path, []byte("width = 200\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := NewLoader("1.0.0", path)
	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != 200 {
		t.Fatalf("expected width from override file, got %d", cfg.Width)
	}
	cfg.Height = 123
	saved, err := l.Save(cfg)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved != path {
		t.Fatalf("expected save to existing file %s, got %s", path, saved)
	}
	again, err := l.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again.Height != 123 {
		t.Fatalf("saved height not reloaded: %d", again.Height)
	}
}

func TestLoaderEnvPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "env.rc")
	if err := os.WriteFile(path, []byte("backend = vector\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvPath, path)
	t.Setenv("HOME", t.TempDir())
	cfg, err := NewLoader("1.0.0", "").Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != "vector" {
		t.Fatalf("expected env config to be used, got backend %q", cfg.Backend)
	}
}

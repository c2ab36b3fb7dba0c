package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
# comment
Name: studio
Paper: #F0F0F0
Ink: navy
Accent: #11223344
Unknown: #000000
`
	th, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if th.Name != "studio" {
		t.Errorf("Name = %q", th.Name)
	}
	if th.Paper != (color.RGBA{0xF0, 0xF0, 0xF0, 0xFF}) {
		t.Errorf("Paper = %+v", th.Paper)
	}
	if th.Ink != (color.RGBA{0, 0, 0x80, 0xFF}) {
		t.Errorf("Ink = %+v", th.Ink)
	}
	if th.Accent != (color.RGBA{0x11, 0x22, 0x33, 0x44}) {
		t.Errorf("Accent = %+v", th.Accent)
	}
	if th.StatusBar != Default().StatusBar {
		t.Errorf("missing keys should keep defaults, got %+v", th.StatusBar)
	}
}

func TestParseReportsLine(t *testing.T) {
	_, err := Parse(strings.NewReader("Name: x\nPaper: #12345\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected line number in error, got %v", err)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#FF0000", color.RGBA{255, 0, 0, 255}, true},
		{"#00ff0080", color.RGBA{0, 255, 0, 128}, true},
		{" White ", color.RGBA{255, 255, 255, 255}, true},
		{"", color.RGBA{}, false},
		{"#GG0000", color.RGBA{}, false},
		{"chartreuse-ish", color.RGBA{}, false},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if tt.ok && (err != nil || got != tt.want) {
			t.Errorf("ParseColor(%q) = %+v, %v; want %+v", tt.in, got, err, tt.want)
		}
		if !tt.ok && err == nil {
			t.Errorf("ParseColor(%q) expected error", tt.in)
		}
	}
}

func TestHex(t *testing.T) {
	if got := Hex(color.RGBA{1, 2, 3, 255}); got != "#010203" {
		t.Errorf("Hex opaque = %s", got)
	}
	if got := Hex(color.RGBA{1, 2, 3, 4}); got != "#01020304" {
		t.Errorf("Hex translucent = %s", got)
	}
}

func TestLoaderEmbedded(t *testing.T) {
	l := &Loader{}
	for _, name := range Names() {
		th, err := l.Load(name)
		if err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		if th.Name != name {
			t.Errorf("Load(%q).Name = %q", name, th.Name)
		}
	}
	th, err := l.Load("rice_paper")
	if err != nil {
		t.Fatalf("Load rice_paper: %v", err)
	}
	if th.Paper != (color.RGBA{0xF6, 0xF0, 0xE1, 0xFF}) {
		t.Errorf("unexpected paper %+v", th.Paper)
	}
}

func TestLoaderConfigDirAndMissing(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "mine.theme"), []byte("Name: mine\nInk: #FF00FF\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := &Loader{ConfigDir: dir}
	th, err := l.Load("mine")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if th.Ink != (color.RGBA{255, 0, 255, 255}) {
		t.Errorf("Ink = %+v", th.Ink)
	}
	if _, err := l.Load("nope"); err == nil {
		t.Fatal("expected error for missing theme")
	}
	if th, err := l.Load(""); err != nil || th.Name != "Default" {
		t.Fatalf("empty name should give default, got %v %v", th, err)
	}
}

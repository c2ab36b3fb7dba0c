// Package clipboard publishes drawings to the system clipboard.
//
// A drawing is offered as image/png and, when text is given, as UTF-8 text
// (typically the PNG data URL) so text-only targets can paste it too.
package clipboard

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"runtime"
)

var errNoDisplay = errors.New("clipboard initialization requires DISPLAY or WAYLAND_DISPLAY")

// ErrEmpty is returned by Write when there is nothing to publish.
var ErrEmpty = errors.New("clipboard: nothing to write")

// hasDisplay reports whether a clipboard service can be reached. Only X11
// and Wayland sessions can be missing one.
func hasDisplay() bool {
	switch runtime.GOOS {
	case "darwin", "windows":
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

func encode(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, nil
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteImage publishes img as PNG.
func WriteImage(img image.Image) error { return Write(img, "") }

// WriteText publishes text.
func WriteText(text string) error { return Write(nil, text) }

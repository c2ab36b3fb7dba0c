package pad

import (
	"fmt"
	"image"
	"unicode"

	"golang.org/x/mobile/event/key"

	"github.com/example/inkpad/internal/pointer"
)

const (
	statusHeight = 24
	margin       = 8
)

// windowSize is the initial window size that fits a surface of sz.
func windowSize(sz image.Point) image.Point {
	return image.Point{sz.X + 2*margin, sz.Y + statusHeight + 2*margin}
}

// surfaceRect places a surface of sz in a winW x winH window: centred below
// the status bar, pinned to the top-left corner when the window is too small.
func surfaceRect(winW, winH int, sz image.Point) image.Rectangle {
	areaW := winW
	areaH := winH - statusHeight
	x := (areaW - sz.X) / 2
	y := statusHeight + (areaH-sz.Y)/2
	if x < 0 {
		x = 0
	}
	if y < statusHeight {
		y = statusHeight
	}
	return image.Rectangle{Min: image.Pt(x, y), Max: image.Pt(x+sz.X, y+sz.Y)}
}

func toPointerRect(r image.Rectangle) pointer.Rect {
	return pointer.Rect{
		Left:   float64(r.Min.X),
		Top:    float64(r.Min.Y),
		Width:  float64(r.Dx()),
		Height: float64(r.Dy()),
	}
}

func inside(p pointer.Position, r image.Rectangle) bool {
	return p.X >= float64(r.Min.X) && p.X < float64(r.Max.X) &&
		p.Y >= float64(r.Min.Y) && p.Y < float64(r.Max.Y)
}

// Window actions bound to keys.
const (
	actionClear  = "clear"
	actionSave   = "save"
	actionCopy   = "copy"
	actionExport = "export"
	actionQuit   = "quit"
)

var keyActions = map[rune]string{
	'c': actionClear,
	's': actionSave,
	'y': actionCopy,
	'e': actionExport,
	'q': actionQuit,
}

// keyAction maps a key press to a window action, or "" when unbound.
func keyAction(e key.Event) string {
	if e.Direction != key.DirPress {
		return ""
	}
	if e.Code == key.CodeEscape {
		return actionQuit
	}
	if e.Modifiers&(key.ModControl|key.ModAlt|key.ModMeta) != 0 {
		return ""
	}
	return keyActions[unicode.ToLower(e.Rune)]
}

func statusLine(strokes int, submittable bool) string {
	hint := "draw to begin"
	if submittable {
		hint = "ready to submit"
	}
	return fmt.Sprintf("strokes %d  %s  C:clear S:save Y:copy E:export Q:quit", strokes, hint)
}

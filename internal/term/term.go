// Package term draws a practice session inside a terminal.
//
// The surface is shown with upper half block glyphs, so every cell carries
// two vertically stacked swatches. Each swatch averages a Scale x Scale
// block of surface pixels. Mouse drags with the left button draw.
package term

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/example/inkpad/internal/pad"
	"github.com/example/inkpad/internal/pointer"
)

const statusRows = 1

// Grid maps terminal cells to surface pixels.
type Grid struct {
	Scale int
}

// FitGrid picks the smallest scale at which a surface of sz fits in a
// cols x rows terminal below the status row.
func FitGrid(sz image.Point, cols, rows int) Grid {
	rows -= statusRows
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	s := ceilDiv(sz.X, cols)
	if v := ceilDiv(sz.Y, 2*rows); v > s {
		s = v
	}
	if s < 1 {
		s = 1
	}
	return Grid{Scale: s}
}

// Rect is the surface's rectangle in the grid's screen pixel space.
func (g Grid) Rect(sz image.Point) pointer.Rect {
	return pointer.Rect{
		Left:   0,
		Top:    float64(statusRows * 2 * g.Scale),
		Width:  float64(sz.X),
		Height: float64(sz.Y),
	}
}

// Screen converts a cell to the screen pixel at its centre.
func (g Grid) Screen(col, row int) pointer.Position {
	s := float64(g.Scale)
	return pointer.Position{X: (float64(col) + 0.5) * s, Y: (float64(row) + 0.5) * 2 * s}
}

// Cells reports how many columns and rows the surface occupies.
func (g Grid) Cells(sz image.Point) (cols, rows int) {
	return ceilDiv(sz.X, g.Scale), ceilDiv(sz.Y, 2*g.Scale)
}

// Contains reports whether a cell lies over the surface.
func (g Grid) Contains(sz image.Point, col, row int) bool {
	cols, rows := g.Cells(sz)
	row -= statusRows
	return col >= 0 && col < cols && row >= 0 && row < rows
}

// Swatches averages the pixels under cell (col, row) of the surface area,
// where row 0 is the first surface row.
func (g Grid) Swatches(img image.Image, col, row int) (top, bottom color.RGBA) {
	s := g.Scale
	b := img.Bounds()
	x0 := b.Min.X + col*s
	y0 := b.Min.Y + row*2*s
	top = average(img, image.Rect(x0, y0, x0+s, y0+s))
	bottom = average(img, image.Rect(x0, y0+s, x0+s, y0+2*s))
	return top, bottom
}

func average(img image.Image, r image.Rectangle) color.RGBA {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return color.RGBA{}
	}
	var sr, sg, sb, sa, n uint64
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			sr += uint64(c.R)
			sg += uint64(c.G)
			sb += uint64(c.B)
			sa += uint64(c.A)
			n++
		}
	}
	return color.RGBA{uint8(sr / n), uint8(sg / n), uint8(sb / n), uint8(sa / n)}
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}

// buttonTracker turns tcell's button masks into press, drag and release.
type buttonTracker struct {
	pressed bool
}

func (t *buttonTracker) next(buttons tcell.ButtonMask, over bool) (pointer.Kind, bool) {
	down := buttons&tcell.Button1 != 0
	switch {
	case down && !t.pressed:
		if !over {
			return 0, false
		}
		t.pressed = true
		return pointer.Down, true
	case down && t.pressed:
		if !over {
			t.pressed = false
			return pointer.Leave, true
		}
		return pointer.Move, true
	case !down && t.pressed:
		t.pressed = false
		return pointer.Up, true
	}
	return 0, false
}

// Frontend drives a session from a tcell screen.
type Frontend struct {
	screen  tcell.Screen
	session *pad.Session
	grid    Grid
	buttons buttonTracker
	start   time.Time
	message string
	// Export receives data URLs from the export key.
	Export func(url string)
}

// New binds a session to an initialized screen.
func New(screen tcell.Screen, s *pad.Session) *Frontend {
	f := &Frontend{screen: screen, session: s, start: time.Now()}
	f.resize()
	return f
}

func (f *Frontend) resize() {
	cols, rows := f.screen.Size()
	f.grid = FitGrid(f.session.Size(), cols, rows)
}

// Run polls events until the user quits or the screen is finalized.
func (f *Frontend) Run() {
	f.screen.EnableMouse()
	defer f.screen.DisableMouse()
	f.draw()
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			return
		}
		if !f.handle(ev) {
			return
		}
		f.draw()
	}
}

// handle processes one event and reports whether to keep running.
func (f *Frontend) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		f.resize()
		f.screen.Sync()
	case *tcell.EventMouse:
		col, row := ev.Position()
		over := f.grid.Contains(f.session.Size(), col, row)
		kind, ok := f.buttons.next(ev.Buttons(), over)
		if !ok {
			return true
		}
		f.session.Pointer(pointer.Event{
			Kind:     kind,
			Mouse:    f.grid.Screen(col, row),
			HasMouse: true,
			Millis:   ev.When().Sub(f.start).Milliseconds(),
		}, f.grid.Rect(f.session.Size()))
	case *tcell.EventKey:
		return f.keyPress(ev.Key(), ev.Rune())
	}
	return true
}

func (f *Frontend) keyPress(k tcell.Key, r rune) bool {
	if k == tcell.KeyEscape || k == tcell.KeyCtrlC {
		return false
	}
	if k != tcell.KeyRune {
		return true
	}
	switch r {
	case 'q', 'Q':
		return false
	case 'c', 'C':
		f.session.Clear()
		f.message = "cleared"
	case 's', 'S':
		path, err := f.session.SavePNG("")
		if err != nil {
			log.Printf("save: %v", err)
			f.message = "save failed"
			break
		}
		f.message = "saved " + path
	case 'y', 'Y':
		if err := f.session.CopyToClipboard(); err != nil {
			log.Printf("copy: %v", err)
			f.message = "copy failed"
			break
		}
		f.message = "copied"
	case 'e', 'E':
		url, err := f.session.Export()
		if err != nil {
			log.Printf("export: %v", err)
			f.message = "export failed"
			break
		}
		if f.Export != nil {
			f.Export(url)
		}
		f.message = fmt.Sprintf("exported %d bytes", len(url))
	}
	return true
}

func (f *Frontend) draw() {
	f.screen.Clear()
	th := f.session.Theme()
	status := fmt.Sprintf(" strokes %d  C:clear S:save Y:copy E:export Q:quit  %s", f.session.Strokes(), f.message)
	style := tcell.StyleDefault.Background(rgb(th.StatusBar)).Foreground(rgb(th.StatusText))
	if f.session.Submittable() {
		style = style.Foreground(rgb(th.Accent))
	}
	cols, _ := f.screen.Size()
	text := []rune(status)
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(text) {
			r = text[x]
		}
		f.screen.SetContent(x, 0, r, nil, style)
	}

	img := f.session.Snapshot()
	sz := f.session.Size()
	w, h := f.grid.Cells(sz)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			top, bottom := f.grid.Swatches(img, col, row)
			st := tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom))
			f.screen.SetContent(col, row+statusRows, '▀', nil, st)
		}
	}
	f.screen.Show()
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

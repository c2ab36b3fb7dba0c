package pad

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"log"
	"sync"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"

	"github.com/example/inkpad/internal/pointer"
	"github.com/example/inkpad/internal/render"
	"github.com/example/inkpad/internal/theme"
)

// frameDropThreshold specifies how many consecutive frames can be canceled
// before a draw is allowed to complete to keep the UI responsive.
const frameDropThreshold = 10

// Window shows a Session in a desktop window.
type Window struct {
	session *Session
	exports io.Writer
	onClose func()
}

// WindowOption modifies a Window during creation.
type WindowOption func(*Window)

// WithExportWriter sets where the export key writes the data URL.
func WithExportWriter(w io.Writer) WindowOption { return func(win *Window) { win.exports = w } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) WindowOption { return func(win *Window) { win.onClose = fn } }

// NewWindow wraps s in a window.
func NewWindow(s *Session, opts ...WindowOption) *Window {
	w := &Window{session: s, exports: io.Discard}
	for _, o := range opts {
		o(w)
	}
	return w
}

// Run executes the UI loop using shiny's driver.
func (win *Window) Run() { driver.Main(win.Main) }

type paintState struct {
	width, height int
	surface       *image.RGBA
	rect          image.Rectangle
	shadow        render.Shadow
	shadowMask    *image.Gray
	theme         *theme.Theme
	status        string
	submittable   bool
	message       string
	messageUntil  time.Time
}

func drawFrame(ctx context.Context, s screen.Screen, w screen.Window, st paintState) {
	b, err := s.NewBuffer(image.Point{st.width, st.height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()
	dst := b.RGBA()

	draw.Draw(dst, dst.Bounds(), image.NewUniform(st.theme.Background), image.Point{}, draw.Src)
	st.shadow.Draw(dst, st.rect, st.shadowMask)
	draw.Draw(dst, st.rect, st.surface, image.Point{}, draw.Src)
	if ctx.Err() != nil {
		return
	}

	bar := image.Rect(0, 0, st.width, statusHeight)
	draw.Draw(dst, bar, image.NewUniform(st.theme.StatusBar), image.Point{}, draw.Src)
	if st.submittable {
		draw.Draw(dst, image.Rect(0, statusHeight-3, st.width, statusHeight), image.NewUniform(st.theme.Accent), image.Point{}, draw.Src)
	}
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(st.theme.StatusText), Face: basicfont.Face7x13}
	d.Dot = fixed.P(6, 16)
	d.DrawString(st.status)
	if ctx.Err() != nil {
		return
	}

	if st.message != "" && time.Now().Before(st.messageUntil) {
		d := &font.Drawer{Dst: dst, Src: image.Black, Face: basicfont.Face7x13}
		wmsg := d.MeasureString(st.message).Ceil()
		px := (st.width - wmsg) / 2
		py := st.height - 16
		box := image.Rect(px-8, py-13-4, px+wmsg+8, py+6)
		draw.Draw(dst, box, image.NewUniform(color.RGBA{255, 255, 255, 230}), image.Point{}, draw.Over)
		d.Dot = fixed.P(px, py)
		d.DrawString(st.message)
	}
	if ctx.Err() != nil {
		return
	}

	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}

// offerFrame puts st in the one-slot paint queue, replacing a frame the
// painter has not picked up yet. It never blocks while the event loop is
// the only sender.
func offerFrame(ch chan paintState, st paintState) {
	for {
		select {
		case ch <- st:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

// Main runs the event loop on an existing screen.
func (win *Window) Main(s screen.Screen) {
	sess := win.session
	initial := windowSize(sess.Size())
	width, height := initial.X, initial.Y
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: "Inkpad"})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()
	if win.onClose != nil {
		defer win.onClose()
	}

	start := time.Now()
	millis := func() int64 { return time.Since(start).Milliseconds() }
	rect := surfaceRect(width, height, sess.Size())
	// the surface never changes size, so the shadow is blurred once
	shadow := render.DefaultShadow()
	shadowMask := shadow.Mask(sess.Size())

	var message string
	var messageUntil time.Time
	show := func(msg string) {
		message = msg
		log.Print(message)
		messageUntil = time.Now().Add(2 * time.Second)
	}

	var paintMu sync.Mutex
	var paintCancel context.CancelFunc
	var dropCount int
	paintCh := make(chan paintState, 1)
	go func() {
		for st := range paintCh {
			ctx, cancel := context.WithCancel(context.Background())
			paintMu.Lock()
			paintCancel = cancel
			paintMu.Unlock()
			drawFrame(ctx, s, w, st)
			paintMu.Lock()
			paintCancel = nil
			if ctx.Err() == nil {
				dropCount = 0
			}
			paintMu.Unlock()
			cancel()
		}
	}()
	defer close(paintCh)

	leave := func() {
		if sess.Drawing() {
			sess.Pointer(pointer.Event{Kind: pointer.Leave, Millis: millis()}, toPointerRect(rect))
		}
	}

	actions := map[string]func(){
		actionClear: func() {
			sess.Clear()
			show("cleared")
		},
		actionSave: func() {
			path, err := sess.SavePNG("")
			if err != nil {
				log.Printf("save: %v", err)
				show("save failed")
				return
			}
			show(fmt.Sprintf("saved %s", path))
		},
		actionCopy: func() {
			if err := sess.CopyToClipboard(); err != nil {
				log.Printf("copy: %v", err)
				show("copy failed")
				return
			}
			show("drawing copied to clipboard")
		},
		actionExport: func() {
			url, err := sess.Export()
			if err != nil {
				log.Printf("export: %v", err)
				return
			}
			if _, err := fmt.Fprintln(win.exports, url); err != nil {
				log.Printf("export: %v", err)
				return
			}
			show("exported data URL")
		},
	}

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.Crosses(lifecycle.StageFocused) == lifecycle.CrossOff {
				leave()
				w.Send(paint.Event{})
			}
			if e.To == lifecycle.StageDead {
				paintMu.Lock()
				if paintCancel != nil {
					paintCancel()
				}
				paintMu.Unlock()
				return
			}
		case size.Event:
			width = e.WidthPx
			height = e.HeightPx
			rect = surfaceRect(width, height, sess.Size())
			w.Send(paint.Event{})
		case paint.Event:
			paintMu.Lock()
			if paintCancel != nil && dropCount < frameDropThreshold {
				paintCancel()
				dropCount++
			}
			paintMu.Unlock()
			st := paintState{
				width:        width,
				height:       height,
				surface:      sess.Snapshot(),
				rect:         rect,
				shadow:       shadow,
				shadowMask:   shadowMask,
				theme:        sess.Theme(),
				status:       statusLine(sess.Strokes(), sess.Submittable()),
				submittable:  sess.Submittable(),
				message:      message,
				messageUntil: messageUntil,
			}
			offerFrame(paintCh, st)
		case mouse.Event:
			ev, ok := pointer.FromMouse(e, millis())
			if !ok {
				continue
			}
			if ev.Kind == pointer.Move && !sess.Drawing() {
				continue
			}
			if ev.Kind == pointer.Down && !inside(ev.Mouse, rect) {
				continue
			}
			if ev.Kind == pointer.Move && !inside(ev.Mouse, rect) {
				ev.Kind = pointer.Leave
			}
			sess.Pointer(ev, toPointerRect(rect))
			w.Send(paint.Event{})
		case touch.Event:
			ev := pointer.FromTouch(e, millis())
			if ev.Kind == pointer.Down && !inside(ev.Touches[0].Position, rect) {
				continue
			}
			sess.Pointer(ev, toPointerRect(rect))
			w.Send(paint.Event{})
		case key.Event:
			act := keyAction(e)
			if act == "" {
				continue
			}
			if act == actionQuit {
				leave()
				return
			}
			actions[act]()
			w.Send(paint.Event{})
		case error:
			log.Printf("window: %v", e)
		}
	}
}

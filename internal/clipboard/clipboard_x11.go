//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

import (
	"image"
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var (
	initOnce sync.Once
	initErr  error
	owner    *x11Owner
)

func ensureInit() error {
	initOnce.Do(func() {
		if !hasDisplay() {
			initErr = errNoDisplay
			return
		}
		o := &x11Owner{}
		if err := o.open(); err != nil {
			initErr = err
			return
		}
		owner = o
	})
	return initErr
}

// Write takes CLIPBOARD ownership and serves img as image/png and text as
// UTF-8 until another client claims the selection.
func Write(img image.Image, text string) error {
	if img == nil && text == "" {
		return ErrEmpty
	}
	if err := ensureInit(); err != nil {
		return err
	}
	data, err := encode(img)
	if err != nil {
		return err
	}
	return owner.publish(offer{png: data, text: []byte(text)})
}

type offer struct {
	png  []byte
	text []byte
}

type atomSet struct {
	clipboard xproto.Atom
	targets   xproto.Atom
	utf8      xproto.Atom
	textPlain xproto.Atom
	png       xproto.Atom
}

// targets lists what o can be converted to, TARGETS first.
func (a atomSet) targetsFor(o offer) []xproto.Atom {
	out := []xproto.Atom{a.targets}
	if len(o.png) > 0 {
		out = append(out, a.png)
	}
	if len(o.text) > 0 {
		out = append(out, a.utf8, xproto.AtomString, a.textPlain)
	}
	return out
}

// convert returns the property type, format and payload answering a request
// for target. ok is false when the offer cannot satisfy it.
func (a atomSet) convert(o offer, target xproto.Atom) (typ xproto.Atom, format byte, data []byte, ok bool) {
	switch target {
	case a.targets:
		return xproto.AtomAtom, 32, atomsToBytes(a.targetsFor(o)), true
	case a.png:
		return a.png, 8, o.png, len(o.png) > 0
	case a.utf8, xproto.AtomString, a.textPlain:
		return a.utf8, 8, o.text, len(o.text) > 0
	}
	return 0, 0, nil, false
}

type x11Owner struct {
	conn   *xgb.Conn
	window xproto.Window
	atoms  atomSet

	mu      sync.RWMutex
	current offer
}

func (o *x11Owner) open() error {
	conn, err := xgb.NewConn()
	if err != nil {
		return err
	}
	screen := xproto.Setup(conn).DefaultScreen(conn)
	window, err := xproto.NewWindowId(conn)
	if err != nil {
		conn.Close()
		return err
	}
	const eventMask = xproto.EventMaskPropertyChange | xproto.EventMaskStructureNotify
	if err := xproto.CreateWindowChecked(conn, screen.RootDepth, window, screen.Root, 0, 0, 1, 1, 0, xproto.WindowClassInputOutput, screen.RootVisual, xproto.CwEventMask, []uint32{eventMask}).Check(); err != nil {
		conn.Close()
		return err
	}
	atoms, err := internAtoms(conn)
	if err != nil {
		xproto.DestroyWindow(conn, window)
		conn.Close()
		return err
	}
	o.conn = conn
	o.window = window
	o.atoms = atoms
	go o.serve()
	return nil
}

func internAtoms(conn *xgb.Conn) (atomSet, error) {
	names := []string{"CLIPBOARD", "TARGETS", "UTF8_STRING", "text/plain;charset=utf-8", "image/png"}
	got := make([]xproto.Atom, len(names))
	for i, name := range names {
		reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
		if err != nil {
			return atomSet{}, err
		}
		got[i] = reply.Atom
	}
	return atomSet{clipboard: got[0], targets: got[1], utf8: got[2], textPlain: got[3], png: got[4]}, nil
}

func (o *x11Owner) publish(next offer) error {
	o.mu.Lock()
	o.current = next
	o.mu.Unlock()
	return xproto.SetSelectionOwnerChecked(o.conn, o.window, o.atoms.clipboard, xproto.TimeCurrentTime).Check()
}

func (o *x11Owner) serve() {
	for {
		ev, err := o.conn.WaitForEvent()
		if err != nil {
			return
		}
		switch e := ev.(type) {
		case xproto.SelectionRequestEvent:
			o.answer(e)
		case xproto.SelectionClearEvent:
			o.mu.Lock()
			o.current = offer{}
			o.mu.Unlock()
		}
	}
}

func (o *x11Owner) answer(e xproto.SelectionRequestEvent) {
	property := e.Property
	if property == xproto.AtomNone {
		property = e.Target
	}
	o.mu.RLock()
	cur := o.current
	o.mu.RUnlock()

	typ, format, data, ok := o.atoms.convert(cur, e.Target)
	if ok {
		length := uint32(len(data))
		if format == 32 {
			length /= 4
		}
		xproto.ChangeProperty(o.conn, xproto.PropModeReplace, e.Requestor, property, typ, format, length, data)
	} else {
		property = xproto.AtomNone
	}

	notify := xproto.SelectionNotifyEvent{
		Time:      e.Time,
		Requestor: e.Requestor,
		Selection: e.Selection,
		Target:    e.Target,
		Property:  property,
	}
	_ = xproto.SendEvent(o.conn, false, e.Requestor, 0, string(notify.Bytes()))
}

func atomsToBytes(atoms []xproto.Atom) []byte {
	buf := make([]byte, len(atoms)*4)
	for i, atom := range atoms {
		xgb.Put32(buf[i*4:], uint32(atom))
	}
	return buf
}

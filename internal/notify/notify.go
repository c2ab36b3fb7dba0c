// Package notify announces saved, copied and exported drawings through
// desktop notifications.
package notify

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/example/inkpad/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventSave fires when a drawing is written to disk.
	EventSave Event = "save"
	// EventCopy fires when a drawing is placed on the clipboard.
	EventCopy Event = "copy"
	// EventExport fires when a drawing is exported as a data URL.
	EventExport Event = "export"
)

// Events lists every event in a stable order.
func Events() []Event { return []Event{EventSave, EventCopy, EventExport} }

// Drawing is what a notification reports on. Message templates see its
// fields.
type Drawing struct {
	Strokes int
	// Path is the written file for saves.
	Path string
	// Preview is shown as the notification icon when no file exists yet.
	Preview image.Image
}

// Messages holds the notification title and one text/template per event.
type Messages struct {
	Title string
	Text  map[Event]string
}

// DefaultMessages returns the built-in texts.
func DefaultMessages() Messages {
	return Messages{
		Title: platform.AppName,
		Text: map[Event]string{
			EventSave:   "Saved {{.Strokes}} stroke drawing to {{.Path}}",
			EventCopy:   "Copied {{.Strokes}} stroke drawing to the clipboard",
			EventExport: "Exported {{.Strokes}} stroke drawing as a data URL",
		},
	}
}

// MessagesFromEnv applies INKPAD_NOTIFY_TITLE and INKPAD_NOTIFY_<EVENT>_TEXT
// over the defaults.
func MessagesFromEnv() Messages {
	m := DefaultMessages()
	if v := strings.TrimSpace(os.Getenv("INKPAD_NOTIFY_TITLE")); v != "" {
		m.Title = v
	}
	for _, ev := range Events() {
		key := "INKPAD_NOTIFY_" + strings.ToUpper(string(ev)) + "_TEXT"
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			m.Text[ev] = v
		}
	}
	return m
}

// Notifier sends notifications for the events that have been enabled. A nil
// Notifier is silent.
type Notifier struct {
	title   string
	texts   map[Event]*template.Template
	enabled map[Event]bool
	send    func(title, body string, opts platform.Options) error
}

// New parses the message templates. Every event is disabled until Enable.
func New(m Messages) (*Notifier, error) {
	n := &Notifier{
		title:   m.Title,
		texts:   make(map[Event]*template.Template, len(m.Text)),
		enabled: make(map[Event]bool),
		send:    platform.Notify,
	}
	for ev, text := range m.Text {
		t, err := template.New(string(ev)).Option("missingkey=error").Parse(text)
		if err != nil {
			return nil, fmt.Errorf("%s notification text: %w", ev, err)
		}
		n.texts[ev] = t
	}
	return n, nil
}

// Enable toggles notifications for event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	n.enabled[event] = enabled
}

// Enabled reports whether event will produce a notification.
func (n *Notifier) Enabled(event Event) bool {
	return n != nil && n.enabled[event] && n.texts[event] != nil
}

// Notify announces d for event. Failures are logged; a missed notification
// never interrupts drawing.
func (n *Notifier) Notify(event Event, d Drawing) {
	if !n.Enabled(event) {
		return
	}
	body, err := n.render(event, d)
	if err != nil {
		log.Printf("notification %s: %v", event, err)
		return
	}
	if body == "" {
		return
	}
	// saves stay in the notification history since they point at a file
	opts := platform.Options{Transient: event != EventSave}
	if d.Path != "" {
		if abs, err := filepath.Abs(d.Path); err == nil {
			if _, err := os.Stat(abs); err == nil {
				opts.IconPath = abs
			}
		}
	}
	if opts.IconPath == "" && d.Preview != nil {
		path, cleanup, err := writePreview(d.Preview)
		if err != nil {
			log.Printf("notification preview: %v", err)
		} else {
			defer cleanup()
			opts.IconPath = path
		}
	}
	if err := n.send(n.title, body, opts); err != nil {
		log.Printf("notification %s: %v", event, err)
	}
}

func (n *Notifier) render(event Event, d Drawing) (string, error) {
	if abs, err := filepath.Abs(d.Path); err == nil && d.Path != "" {
		d.Path = abs
	}
	var sb strings.Builder
	if err := n.texts[event].Execute(&sb, d); err != nil {
		return "", err
	}
	return strings.TrimSpace(sb.String()), nil
}

func writePreview(img image.Image) (string, func(), error) {
	f, err := os.CreateTemp("", "inkpad-preview-*.png")
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", nil, err
	}
	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("remove preview: %v", err)
		}
	}
	return path, cleanup, nil
}

package notify

import (
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/inkpad/internal/platform"
)

type sent struct {
	title, body string
	opts        platform.Options
	iconExisted bool
}

func recording(t *testing.T, m Messages) (*Notifier, *[]sent) {
	t.Helper()
	n, err := New(m)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var got []sent
	n.send = func(title, body string, opts platform.Options) error {
		s := sent{title: title, body: body, opts: opts}
		if opts.IconPath != "" {
			_, err := os.Stat(opts.IconPath)
			s.iconExisted = err == nil
		}
		got = append(got, s)
		return nil
	}
	return n, &got
}

func TestMessagesFromEnv(t *testing.T) {
	t.Setenv("INKPAD_NOTIFY_TITLE", "Practice")
	t.Setenv("INKPAD_NOTIFY_SAVE_TEXT", "Wrote {{.Path}}")
	m := MessagesFromEnv()
	if m.Title != "Practice" {
		t.Errorf("Title = %q", m.Title)
	}
	if got := m.Text[EventSave]; got != "Wrote {{.Path}}" {
		t.Errorf("save text = %q", got)
	}
	if got := m.Text[EventExport]; got != DefaultMessages().Text[EventExport] {
		t.Errorf("export text = %q", got)
	}
}

func TestNewRejectsBadTemplate(t *testing.T) {
	m := DefaultMessages()
	m.Text[EventCopy] = "Copied {{.Strokes"
	if _, err := New(m); err == nil || !strings.Contains(err.Error(), "copy") {
		t.Fatalf("expected a copy template error, got %v", err)
	}
}

func TestDisabledByDefault(t *testing.T) {
	n, got := recording(t, DefaultMessages())
	for _, ev := range Events() {
		if n.Enabled(ev) {
			t.Errorf("%s enabled without Enable", ev)
		}
		n.Notify(ev, Drawing{Strokes: 1})
	}
	if len(*got) != 0 {
		t.Fatalf("sent %d notifications while disabled", len(*got))
	}

	var nilNotifier *Notifier
	nilNotifier.Enable(EventSave, true)
	nilNotifier.Notify(EventSave, Drawing{Path: "x.png"})
}

func TestNotifySave(t *testing.T) {
	n, got := recording(t, DefaultMessages())
	n.Enable(EventSave, true)
	path := filepath.Join(t.TempDir(), "inkpad.png")
	if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	n.Notify(EventSave, Drawing{Strokes: 3, Path: path})
	if len(*got) != 1 {
		t.Fatalf("expected one notification, got %d", len(*got))
	}
	s := (*got)[0]
	if s.title != platform.AppName {
		t.Errorf("title = %q", s.title)
	}
	if want := "Saved 3 stroke drawing to " + path; s.body != want {
		t.Errorf("body = %q, want %q", s.body, want)
	}
	if s.opts.IconPath != path || s.opts.Transient {
		t.Errorf("unexpected options %+v", s.opts)
	}
}

func TestNotifyExportUsesPreview(t *testing.T) {
	n, got := recording(t, DefaultMessages())
	n.Enable(EventExport, true)
	n.Notify(EventExport, Drawing{Strokes: 1, Preview: image.NewRGBA(image.Rect(0, 0, 4, 4))})
	if len(*got) != 1 {
		t.Fatalf("expected one notification, got %d", len(*got))
	}
	s := (*got)[0]
	if !s.opts.Transient {
		t.Errorf("export notifications should be transient")
	}
	if s.opts.IconPath == "" || !s.iconExisted {
		t.Fatalf("expected a preview icon while sending, got %+v", s.opts)
	}
	if _, err := os.Stat(s.opts.IconPath); !os.IsNotExist(err) {
		t.Fatalf("preview %s was not removed", s.opts.IconPath)
	}
}

func TestNotifyMissingFieldIsNotSent(t *testing.T) {
	m := DefaultMessages()
	m.Text[EventCopy] = "Copied {{.Colour}}"
	n, got := recording(t, m)
	n.Enable(EventCopy, true)
	n.Notify(EventCopy, Drawing{Strokes: 2})
	if len(*got) != 0 {
		t.Fatalf("expected the broken template to be skipped, got %+v", *got)
	}
}

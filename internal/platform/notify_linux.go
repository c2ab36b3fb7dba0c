//go:build linux

package platform

import (
	"github.com/godbus/dbus/v5"
)

const (
	notifyDest = "org.freedesktop.Notifications"
	notifyPath = "/org/freedesktop/Notifications"
	// expireMillis is how long a notification stays on screen.
	expireMillis = int32(5000)
)

// notifyHints maps Options onto freedesktop notification hints.
func notifyHints(opts Options) map[string]dbus.Variant {
	hints := map[string]dbus.Variant{
		"desktop-entry": dbus.MakeVariant("inkpad"),
	}
	if opts.Transient {
		hints["transient"] = dbus.MakeVariant(true)
		hints["urgency"] = dbus.MakeVariant(byte(0))
	}
	if opts.IconPath != "" {
		hints["image-path"] = dbus.MakeVariant(opts.IconPath)
	}
	return hints
}

// Notify sends a notification over the session bus.
func Notify(title, body string, opts Options) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return err
	}
	defer conn.Close()

	call := conn.Object(notifyDest, notifyPath).Call(notifyDest+".Notify", 0,
		AppName, uint32(0), opts.IconPath, title, body, []string{}, notifyHints(opts), expireMillis)
	return call.Err
}

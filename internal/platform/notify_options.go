// Package platform delivers desktop notifications through the host's
// notification service.
package platform

import "errors"

// AppName identifies inkpad to the notification service.
const AppName = "Inkpad"

// ErrUnsupported is returned where no notification service is known.
var ErrUnsupported = errors.New("desktop notifications are not supported on this platform")

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath, when non-empty, points to an image file shown with the
	// notification where supported.
	IconPath string
	// Transient keeps the notification out of the service's history. Linux
	// sends the transient hint; Windows expires the toast.
	Transient bool
}

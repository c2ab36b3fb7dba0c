//go:build ((linux || freebsd || openbsd || netbsd || dragonfly || darwin) && cgo) || windows

package clipboard

import (
	"image"
	"sync"

	"golang.design/x/clipboard"
)

var (
	initOnce sync.Once
	initErr  error
)

func ensureInit() error {
	initOnce.Do(func() {
		if !hasDisplay() {
			initErr = errNoDisplay
			return
		}
		initErr = clipboard.Init()
	})
	return initErr
}

// Write publishes img and text. This backend owns one format at a time, so
// the image wins when both are given.
func Write(img image.Image, text string) error {
	if img == nil && text == "" {
		return ErrEmpty
	}
	if err := ensureInit(); err != nil {
		return err
	}
	if img == nil {
		clipboard.Write(clipboard.FmtText, []byte(text))
		return nil
	}
	data, err := encode(img)
	if err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtImage, data)
	return nil
}

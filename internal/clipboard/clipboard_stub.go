//go:build !windows && !linux && !freebsd && !openbsd && !netbsd && !dragonfly && !(darwin && cgo)

package clipboard

import (
	"errors"
	"image"
)

var errUnsupported = errors.New("clipboard: not supported on this platform or build")

func Write(img image.Image, text string) error {
	if img == nil && text == "" {
		return ErrEmpty
	}
	return errUnsupported
}

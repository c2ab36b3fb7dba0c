// Package surface provides the pixel grid that accumulates brush ink.
//
// A Surface is owned by the host that created it. The brush engine only
// mutates it through Fill, StrokeSegment and StrokeDot; nothing in this
// package is safe for concurrent use.
package surface

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"
)

// Point is a surface-local coordinate in pixels.
type Point struct {
	X, Y float64
}

// Surface is a fixed-size raster that strokes are composited onto.
type Surface interface {
	// Bounds reports the addressable pixel grid.
	Bounds() image.Rectangle
	// Fill replaces every pixel with c.
	Fill(c color.Color)
	// StrokeSegment draws a line from a to b with round caps and the given
	// thickness.
	StrokeSegment(a, b Point, width float64, c color.Color)
	// StrokeDot draws a filled disc centred on p.
	StrokeDot(p Point, diameter float64, c color.Color)
	// Image returns the current composite. Callers must not retain it across
	// further mutations; use Snapshot for a stable copy.
	Image() image.Image
}

const (
	BackendRaster = "raster"
	BackendVector = "vector"
)

// Backends lists the accepted backend names.
func Backends() []string { return []string{BackendRaster, BackendVector} }

// New creates a surface of the given size filled with bg.
func New(backend string, width, height int, bg color.Color) (Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid surface size %dx%d", width, height)
	}
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendRaster:
		return NewRaster(width, height, bg), nil
	case BackendVector:
		return NewVector(width, height, bg), nil
	default:
		return nil, fmt.Errorf("unknown surface backend %q (want one of %s)", backend, strings.Join(Backends(), ", "))
	}
}

// Snapshot returns an independent RGBA copy of the surface contents.
func Snapshot(s Surface) *image.RGBA {
	src := s.Image()
	b := src.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), src, b.Min, draw.Src)
	return out
}

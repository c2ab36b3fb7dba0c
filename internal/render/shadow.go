// Package render holds window chrome effects drawn around the paper.
package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Shadow describes a soft drop shadow cast by the paper.
type Shadow struct {
	Radius  int
	Offset  image.Point
	Opacity float64
}

// DefaultShadow is a small shadow that fits inside the window margin.
func DefaultShadow() Shadow {
	return Shadow{Radius: 5, Offset: image.Pt(2, 3), Opacity: 0.35}
}

// Mask returns the blurred coverage of a size rectangle. The mask is padded
// by Radius on every side, so the rectangle's top-left sits at
// (Radius, Radius). A nil mask means there is nothing to draw.
func (s Shadow) Mask(size image.Point) *image.Gray {
	if size.X <= 0 || size.Y <= 0 || s.Opacity <= 0 {
		return nil
	}
	radius := max(s.Radius, 0)
	mask := image.NewGray(image.Rect(0, 0, size.X+2*radius, size.Y+2*radius))
	inner := image.Rect(radius, radius, radius+size.X, radius+size.Y)
	draw.Draw(mask, inner, image.NewUniform(color.Gray{Y: 255}), image.Point{}, draw.Src)
	return boxBlur(mask, radius)
}

// Draw composites mask under rect onto dst. rect is where the paper is drawn;
// mask must come from Mask for the same size.
func (s Shadow) Draw(dst draw.Image, rect image.Rectangle, mask *image.Gray) {
	if mask == nil {
		return
	}
	radius := max(s.Radius, 0)
	origin := rect.Min.Sub(image.Pt(radius, radius)).Add(s.Offset)
	alpha := uint8(min(s.Opacity, 1)*255 + 0.5)
	shade := image.NewUniform(color.RGBA{0, 0, 0, alpha})
	draw.DrawMask(dst, mask.Bounds().Add(origin), shade, image.Point{}, mask, image.Point{}, draw.Over)
}

// boxBlur applies a separable box filter of the given radius.
func boxBlur(src *image.Gray, radius int) *image.Gray {
	if radius <= 0 {
		return src
	}
	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	tmp := image.NewGray(bounds)
	dst := image.NewGray(bounds)

	prefix := make([]int, max(w, h)+1)
	for y := 0; y < h; y++ {
		row := y * src.Stride
		for x := 0; x < w; x++ {
			prefix[x+1] = prefix[x] + int(src.Pix[row+x])
		}
		for x := 0; x < w; x++ {
			x0 := max(x-radius, 0)
			x1 := min(x+radius, w-1)
			tmp.Pix[y*tmp.Stride+x] = uint8((prefix[x1+1] - prefix[x0]) / (x1 - x0 + 1))
		}
	}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			prefix[y+1] = prefix[y] + int(tmp.Pix[y*tmp.Stride+x])
		}
		for y := 0; y < h; y++ {
			y0 := max(y-radius, 0)
			y1 := min(y+radius, h-1)
			dst.Pix[y*dst.Stride+x] = uint8((prefix[y1+1] - prefix[y0]) / (y1 - y0 + 1))
		}
	}
	return dst
}

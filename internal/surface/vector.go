package surface

import (
	"image"
	"image/color"
	"log"
	"math"

	"github.com/gogpu/gg"
)

// Vector renders through a gg drawing context using round caps and joins.
type Vector struct {
	dc     *gg.Context
	bounds image.Rectangle
}

// NewVector creates a gg-backed surface filled with bg.
func NewVector(width, height int, bg color.Color) *Vector {
	dc := gg.NewContext(width, height)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	v := &Vector{dc: dc, bounds: image.Rect(0, 0, width, height)}
	v.Fill(bg)
	return v
}

func (v *Vector) Bounds() image.Rectangle { return v.bounds }

func (v *Vector) Image() image.Image { return v.dc.Image() }

func (v *Vector) Fill(c color.Color) {
	v.dc.ClearPath()
	v.dc.ClearWithColor(gg.FromColor(c))
}

func (v *Vector) StrokeDot(p Point, diameter float64, c color.Color) {
	if diameter <= 0 {
		return
	}
	v.dc.SetColor(c)
	v.dc.DrawCircle(p.X, p.Y, diameter/2)
	if err := v.dc.Fill(); err != nil {
		log.Printf("vector surface: fill dot: %v", err)
	}
}

func (v *Vector) StrokeSegment(a, b Point, width float64, c color.Color) {
	if width <= 0 {
		return
	}
	if math.Hypot(b.X-a.X, b.Y-a.Y) < 1e-9 {
		v.StrokeDot(a, width, c)
		return
	}
	v.dc.SetColor(c)
	v.dc.SetLineWidth(width)
	v.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	if err := v.dc.Stroke(); err != nil {
		log.Printf("vector surface: stroke segment: %v", err)
	}
}

// Close releases renderer resources held by the gg context.
func (v *Vector) Close() error { return v.dc.Close() }

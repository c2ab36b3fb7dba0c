package surface

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847498307936

// Raster is the software backend. Coverage is computed with an anti-aliasing
// vector rasterizer sized to the bounding box of each operation and the ink
// is composited over the existing pixels through that mask.
type Raster struct {
	img *image.RGBA
	z   vector.Rasterizer
	// origin of the current rasterizer window in surface space
	off Point
}

// NewRaster allocates a width x height surface filled with bg.
func NewRaster(width, height int, bg color.Color) *Raster {
	r := &Raster{img: image.NewRGBA(image.Rect(0, 0, width, height))}
	r.Fill(bg)
	return r
}

func (r *Raster) Bounds() image.Rectangle { return r.img.Bounds() }

func (r *Raster) Image() image.Image { return r.img }

// RGBA exposes the backing image for hosts that blit it directly.
func (r *Raster) RGBA() *image.RGBA { return r.img }

func (r *Raster) Fill(c color.Color) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (r *Raster) StrokeDot(p Point, diameter float64, c color.Color) {
	if diameter <= 0 {
		return
	}
	rad := diameter / 2
	win, ok := r.begin(p, p, rad)
	if !ok {
		return
	}
	r.circle(p, rad)
	r.composite(win, c)
}

func (r *Raster) StrokeSegment(a, b Point, width float64, c color.Color) {
	if width <= 0 {
		return
	}
	rad := width / 2
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length < 1e-9 {
		r.StrokeDot(a, width, c)
		return
	}
	win, ok := r.begin(a, b, rad)
	if !ok {
		return
	}
	u := Point{dx / length, dy / length}
	n := Point{-u.Y, u.X}
	neg := func(p Point) Point { return Point{-p.X, -p.Y} }

	r.moveTo(along(a, n, rad))
	r.lineTo(along(b, n, rad))
	r.quarter(b, n, u, rad)
	r.quarter(b, u, neg(n), rad)
	r.lineTo(along(a, neg(n), rad))
	r.quarter(a, neg(n), neg(u), rad)
	r.quarter(a, neg(u), n, rad)
	r.z.ClosePath()
	r.composite(win, c)
}

// begin resets the rasterizer to the clipped box around a and b grown by rad.
func (r *Raster) begin(a, b Point, rad float64) (image.Rectangle, bool) {
	pad := rad + 1
	win := image.Rect(
		int(math.Floor(math.Min(a.X, b.X)-pad)),
		int(math.Floor(math.Min(a.Y, b.Y)-pad)),
		int(math.Ceil(math.Max(a.X, b.X)+pad)),
		int(math.Ceil(math.Max(a.Y, b.Y)+pad)),
	).Intersect(r.img.Bounds())
	if win.Empty() {
		return win, false
	}
	r.z.Reset(win.Dx(), win.Dy())
	r.z.DrawOp = draw.Over
	r.off = Point{float64(win.Min.X), float64(win.Min.Y)}
	return win, true
}

func (r *Raster) composite(win image.Rectangle, c color.Color) {
	r.z.Draw(r.img, win, image.NewUniform(c), image.Point{})
}

func (r *Raster) circle(p Point, rad float64) {
	right, down := Point{1, 0}, Point{0, 1}
	left, up := Point{-1, 0}, Point{0, -1}
	r.moveTo(along(p, right, rad))
	r.quarter(p, right, down, rad)
	r.quarter(p, down, left, rad)
	r.quarter(p, left, up, rad)
	r.quarter(p, up, right, rad)
	r.z.ClosePath()
}

// quarter appends a 90 degree arc around c from direction from to direction
// to. The pen must already sit at c + from*rad.
func (r *Raster) quarter(c, from, to Point, rad float64) {
	start := along(c, from, rad)
	end := along(c, to, rad)
	c1 := along(start, to, kappa*rad)
	c2 := along(end, from, kappa*rad)
	r.z.CubeTo(r.x(c1.X), r.y(c1.Y), r.x(c2.X), r.y(c2.Y), r.x(end.X), r.y(end.Y))
}

func (r *Raster) moveTo(p Point) { r.z.MoveTo(r.x(p.X), r.y(p.Y)) }
func (r *Raster) lineTo(p Point) { r.z.LineTo(r.x(p.X), r.y(p.Y)) }

func (r *Raster) x(v float64) float32 { return float32(v - r.off.X) }
func (r *Raster) y(v float64) float32 { return float32(v - r.off.Y) }

func along(p, dir Point, dist float64) Point {
	return Point{p.X + dir.X*dist, p.Y + dir.Y*dist}
}

package surface

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

var (
	paper = color.RGBA{250, 246, 236, 255}
	ink   = color.RGBA{20, 20, 20, 255}
)

func isInk(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r>>8 < 64 && g>>8 < 64 && b>>8 < 64
}

func assertBackground(t *testing.T, img image.Image) {
	t.Helper()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if got := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA); got != paper {
				t.Fatalf("pixel (%d,%d) = %+v, want background %+v", x, y, got, paper)
			}
		}
	}
}

func TestRasterStartsFilled(t *testing.T) {
	r := NewRaster(8, 6, paper)
	assertBackground(t, r.Image())
	if !r.Bounds().Eq(image.Rect(0, 0, 8, 6)) {
		t.Fatalf("unexpected bounds %v", r.Bounds())
	}
}

func TestRasterDot(t *testing.T) {
	r := NewRaster(40, 40, paper)
	r.StrokeDot(Point{20, 20}, 10, ink)
	if !isInk(r.RGBA().At(20, 20)) {
		t.Fatalf("expected ink at dot centre, got %+v", r.RGBA().At(20, 20))
	}
	if !isInk(r.RGBA().At(23, 20)) {
		t.Fatalf("expected ink inside radius")
	}
	if got := r.RGBA().RGBAAt(27, 20); got != paper {
		t.Fatalf("expected background outside radius, got %+v", got)
	}
}

func TestRasterSegmentCoversPath(t *testing.T) {
	r := NewRaster(120, 40, paper)
	r.StrokeSegment(Point{10, 20}, Point{110, 20}, 6, ink)
	for _, x := range []int{10, 60, 110} {
		if !isInk(r.RGBA().At(x, 20)) {
			t.Errorf("expected ink at (%d,20)", x)
		}
	}
	// round caps extend past the endpoints by the radius
	if !isInk(r.RGBA().At(8, 20)) {
		t.Error("expected round cap before the start point")
	}
	if got := r.RGBA().RGBAAt(60, 30); got != paper {
		t.Errorf("expected background away from the line, got %+v", got)
	}
}

func TestRasterDiagonalSegment(t *testing.T) {
	r := NewRaster(50, 50, paper)
	r.StrokeSegment(Point{5, 5}, Point{45, 45}, 4, ink)
	if !isInk(r.RGBA().At(25, 25)) {
		t.Fatal("expected ink on the diagonal")
	}
	if got := r.RGBA().RGBAAt(40, 10); got != paper {
		t.Fatalf("expected background off the diagonal, got %+v", got)
	}
}

func TestRasterZeroLengthSegmentIsDot(t *testing.T) {
	r := NewRaster(20, 20, paper)
	r.StrokeSegment(Point{10, 10}, Point{10, 10}, 6, ink)
	if !isInk(r.RGBA().At(10, 10)) {
		t.Fatal("expected zero-length segment to leave a mark")
	}
}

func TestRasterClipsOutsideBounds(t *testing.T) {
	r := NewRaster(10, 10, paper)
	r.StrokeSegment(Point{-50, -50}, Point{-20, -30}, 5, ink)
	r.StrokeDot(Point{100, 100}, 8, ink)
	assertBackground(t, r.Image())

	r.StrokeSegment(Point{-10, 5}, Point{20, 5}, 2, ink)
	if !isInk(r.RGBA().At(5, 5)) {
		t.Fatal("expected partially visible segment to be drawn")
	}
}

func TestRasterFillIsIdempotent(t *testing.T) {
	r := NewRaster(16, 16, paper)
	r.StrokeDot(Point{8, 8}, 6, ink)
	r.Fill(paper)
	first := Snapshot(r)
	r.Fill(paper)
	second := Snapshot(r)
	if !bytes.Equal(first.Pix, second.Pix) {
		t.Fatal("second fill changed pixels")
	}
	assertBackground(t, second)
}

func TestSnapshotIsIndependent(t *testing.T) {
	r := NewRaster(10, 10, paper)
	snap := Snapshot(r)
	r.StrokeDot(Point{5, 5}, 6, ink)
	assertBackground(t, snap)
}

func TestNewBackends(t *testing.T) {
	for _, name := range []string{"", "raster", "RASTER", "vector"} {
		s, err := New(name, 12, 9, paper)
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
		if s.Bounds().Dx() != 12 || s.Bounds().Dy() != 9 {
			t.Fatalf("New(%q) bounds = %v", name, s.Bounds())
		}
	}
	if _, err := New("opengl", 1, 1, paper); err == nil || !strings.Contains(err.Error(), "unknown surface backend") {
		t.Fatalf("expected unknown backend error, got %v", err)
	}
	if _, err := New("raster", 0, 10, paper); err == nil {
		t.Fatal("expected error for empty surface")
	}
}

func TestVectorDot(t *testing.T) {
	v := NewVector(30, 30, paper)
	defer v.Close()
	if isInk(v.Image().At(2, 2)) {
		t.Fatalf("expected background, got %+v", v.Image().At(2, 2))
	}
	v.StrokeDot(Point{15, 15}, 10, ink)
	if !isInk(v.Image().At(15, 15)) {
		t.Fatalf("expected ink at dot centre, got %+v", v.Image().At(15, 15))
	}
	if isInk(v.Image().At(27, 15)) {
		t.Fatal("expected background outside the dot")
	}
}

func TestVectorSegmentRoundCaps(t *testing.T) {
	v := NewVector(100, 100, paper)
	defer v.Close()
	v.StrokeSegment(Point{10, 50}, Point{90, 50}, 10, ink)
	for _, p := range []image.Point{{10, 50}, {50, 50}, {90, 50}, {6, 50}, {94, 50}} {
		if !isInk(v.Image().At(p.X, p.Y)) {
			t.Fatalf("expected ink at %v, got %+v", p, v.Image().At(p.X, p.Y))
		}
	}
	if isInk(v.Image().At(50, 60)) || isInk(v.Image().At(1, 50)) {
		t.Fatal("segment spilled past its width or caps")
	}
}

func TestVectorFillClearsInk(t *testing.T) {
	v := NewVector(20, 20, paper)
	defer v.Close()
	v.StrokeSegment(Point{2, 10}, Point{18, 10}, 6, ink)
	v.StrokeDot(Point{10, 4}, 4, ink)
	v.Fill(paper)
	assertBackground(t, v.Image())
}

func TestDataURL(t *testing.T) {
	r := NewRaster(4, 3, paper)
	url, err := DataURL(r)
	if err != nil {
		t.Fatalf("DataURL: %v", err)
	}
	if !strings.HasPrefix(url, DataURLPrefix) {
		t.Fatalf("missing prefix: %.40s", url)
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, DataURLPrefix))
	if err != nil {
		t.Fatalf("decode base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	assertBackground(t, img)
}

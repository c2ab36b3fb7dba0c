package render

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestMaskPadsAndFades(t *testing.T) {
	s := Shadow{Radius: 4, Opacity: 0.5}
	mask := s.Mask(image.Pt(20, 10))
	if mask == nil {
		t.Fatal("expected mask")
	}
	if want := image.Rect(0, 0, 28, 18); !mask.Bounds().Eq(want) {
		t.Fatalf("bounds %v, want %v", mask.Bounds(), want)
	}
	centre := mask.GrayAt(14, 9).Y
	edge := mask.GrayAt(4, 9).Y
	outside := mask.GrayAt(0, 0).Y
	if centre != 255 {
		t.Fatalf("expected full coverage in the middle, got %d", centre)
	}
	if !(outside < edge && edge < centre) {
		t.Fatalf("expected coverage to fall off towards the border: %d %d %d", outside, edge, centre)
	}
}

func TestMaskNothingToDraw(t *testing.T) {
	if DefaultShadow().Mask(image.Point{}) != nil {
		t.Fatal("empty size should give no mask")
	}
	if (Shadow{Radius: 3}).Mask(image.Pt(5, 5)) != nil {
		t.Fatal("zero opacity should give no mask")
	}
}

func TestDrawOffsetsShadow(t *testing.T) {
	s := Shadow{Radius: 2, Offset: image.Pt(4, 4), Opacity: 1}
	dst := image.NewRGBA(image.Rect(0, 0, 40, 40))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	paper := image.Rect(10, 10, 20, 20)
	s.Draw(dst, paper, s.Mask(paper.Size()))

	if got := dst.RGBAAt(22, 22); got == (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("expected shade below and right of the paper")
	}
	if got := dst.RGBAAt(7, 7); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("expected no shade above and left, got %v", got)
	}
}

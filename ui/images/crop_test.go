package images

import (
	"image"
	"image/color"
	"testing"

	"github.com/soocke/holdmark/domain/hold"
)

func TestCropBox_PadsAndKeepsPixels(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 100))
	src.Set(30, 30, color.RGBA{R: 255, A: 255})
	crop, r, err := CropBox(src, hold.BoxDimensions{X: 30, Y: 30, Width: 20, Height: 10}, 5)
	if err != nil {
		t.Fatalf("crop: %v", err)
	}
	if r != image.Rect(25, 25, 55, 45) {
		t.Fatalf("unexpected rect %v", r)
	}
	if crop.Bounds().Dx() != 30 || crop.Bounds().Dy() != 20 {
		t.Fatalf("unexpected crop size %v", crop.Bounds())
	}
	if got := crop.NRGBAAt(5, 5); got.R != 255 {
		t.Fatalf("expected red pixel at box corner, got %v", got)
	}
}

func TestCropBox_ClampsNearEdge(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 20, 20))
	_, r, err := CropBox(src, hold.BoxDimensions{X: 2, Y: 15, Width: 10, Height: 10}, 4)
	if err != nil {
		t.Fatal(err)
	}
	if r != image.Rect(0, 11, 16, 20) {
		t.Fatalf("expected clamped rect, got %v", r)
	}
}

func TestCropBox_OutsideAndNil(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 20, 20))
	_, r, err := CropBox(src, hold.BoxDimensions{X: 50, Y: 50, Width: 5, Height: 5}, 0)
	if err != nil || r.Dx() != 1 || r.Dy() != 1 || r.Min != image.Pt(19, 19) {
		t.Fatalf("expected 1px corner fallback, got %v %v", r, err)
	}
	if _, _, err := CropBox(nil, hold.BoxDimensions{}, 0); err == nil {
		t.Fatalf("expected error for nil image")
	}
}

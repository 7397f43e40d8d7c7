package images

import (
	"errors"
	"image"
	"math"

	"github.com/disintegration/imaging"

	"github.com/soocke/holdmark/domain/hold"
)

// CropBox cuts the region d, grown by pad pixels on each side, out of src.
// The region is clamped to src and is at least 1x1. It returns the crop
// (origin at 0,0) and the rectangle used, in src coordinates.
func CropBox(src image.Image, d hold.BoxDimensions, pad int) (*image.NRGBA, image.Rectangle, error) {
	if src == nil {
		return nil, image.Rectangle{}, errors.New("nil image")
	}
	b := src.Bounds()
	r := image.Rect(
		int(math.Floor(d.X))-pad, int(math.Floor(d.Y))-pad,
		int(math.Ceil(d.X+d.Width))+pad, int(math.Ceil(d.Y+d.Height))+pad,
	).Add(b.Min).Intersect(b)
	if r.Empty() {
		// box lies outside the image; fall back to the nearest corner pixel
		x := clamp(int(d.X)+b.Min.X, b.Min.X, b.Max.X-1)
		y := clamp(int(d.Y)+b.Min.Y, b.Min.Y, b.Max.Y-1)
		r = image.Rect(x, y, x+1, y+1)
	}
	return imaging.Crop(src, r), r, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

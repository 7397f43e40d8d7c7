package images

import (
	"bytes"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// FitFactor returns the uniform scale that fits a w x h image inside maxW x maxH
// while preserving aspect ratio. Images that already fit get 1; a non-positive
// bound leaves that axis unconstrained.
func FitFactor(w, h, maxW, maxH int) float64 {
	if w <= 0 || h <= 0 {
		return 1
	}
	ratio := 1.0
	if maxW > 0 && w > maxW {
		ratio = float64(maxW) / float64(w)
	}
	if maxH > 0 && h > maxH {
		if r := float64(maxH) / float64(h); r < ratio {
			ratio = r
		}
	}
	return ratio
}

// Scale resizes src by factor with a Lanczos filter. A factor of 1 returns src unchanged.
func Scale(src image.Image, factor float64) image.Image {
	if src == nil || factor == 1 || factor <= 0 {
		return src
	}
	b := src.Bounds()
	newW := int(float64(b.Dx())*factor + 0.5)
	newH := int(float64(b.Dy())*factor + 0.5)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}
	return imaging.Resize(src, newW, newH, imaging.Lanczos)
}

// ScaleToFit scales src so it fits within maxW x maxH preserving aspect ratio,
// and returns the factor used. If the source already fits, the original is returned.
func ScaleToFit(src image.Image, maxW, maxH int) (image.Image, float64) {
	if src == nil {
		return nil, 1
	}
	b := src.Bounds()
	f := FitFactor(b.Dx(), b.Dy(), maxW, maxH)
	return Scale(src, f), f
}

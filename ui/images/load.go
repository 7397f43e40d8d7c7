package images

import (
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// Load opens a wall photo. Formats registered with imaging are tried first,
// honoring EXIF orientation; WebP is decoded explicitly as a fallback.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err == nil {
		return img, nil
	}
	if !strings.HasSuffix(strings.ToLower(path), ".webp") {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	f, ferr := os.Open(path)
	if ferr != nil {
		return nil, fmt.Errorf("open image %s: %w", path, ferr)
	}
	defer f.Close()
	img, err = webp.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode webp %s: %w", path, err)
	}
	return img, nil
}

// Save writes img to path; the format follows the file extension.
func Save(img image.Image, path string) error {
	if strings.HasSuffix(strings.ToLower(path), ".webp") {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return webp.Encode(f, img, &webp.Options{Lossless: true})
	}
	return imaging.Save(img, path)
}

package canvas

import (
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
)

const defaultFontSize = 12.0

// fontCache keeps one face per point size for the label font.
type fontCache struct {
	ttf   *truetype.Font
	faces map[float64]font.Face
}

// newFontCache parses the embedded Go Bold font. If parsing fails every size
// falls back to the fixed 7x13 bitmap face.
func newFontCache() (*fontCache, error) {
	c := &fontCache{faces: make(map[float64]font.Face)}
	f, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return c, err
	}
	c.ttf = f
	return c, nil
}

func (c *fontCache) face(size float64) font.Face {
	if size <= 0 {
		size = defaultFontSize
	}
	if c.ttf == nil {
		return basicfont.Face7x13
	}
	if f, ok := c.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(c.ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	c.faces[size] = f
	return f
}

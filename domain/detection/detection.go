package detection

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/soocke/holdmark/domain/hold"
)

// Box is one detected or user-drawn hold rectangle. Coordinates are pixels at
// the image's natural resolution, or fractions in [0,1] when the file is normalized.
type Box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W      float64 `json:"w"`
	H      float64 `json:"h"`
	Class  string  `json:"class,omitempty"`
	State  string  `json:"state,omitempty"`
	Number *int    `json:"number,omitempty"`
}

// File is the detections document.
type File struct {
	ImageWidth  int   `json:"image_width,omitempty"`
	ImageHeight int   `json:"image_height,omitempty"`
	Normalized  bool  `json:"normalized,omitempty"`
	Boxes       []Box `json:"boxes"`
}

// Hold is a box resolved to pixel geometry and an initial classification.
type Hold struct {
	ID     int
	Class  string
	Dims   hold.BoxDimensions
	State  hold.BoxState
	Number int
}

// Defaults supply state and number for boxes that do not carry them.
type Defaults struct {
	State  hold.BoxState
	Number int
}

// Load reads and parses the detections file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read detections: %w", err)
	}
	return Parse(data)
}

// Parse accepts either a File object or a bare array of boxes.
func Parse(data []byte) (*File, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return &File{}, nil
	}
	if data[0] == '[' {
		var boxes []Box
		if err := json.Unmarshal(data, &boxes); err != nil {
			return nil, fmt.Errorf("decode detections: %w", err)
		}
		return &File{Boxes: boxes}, nil
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode detections: %w", err)
	}
	return &f, nil
}

// Resolve converts boxes to pixel holds for an image of imgW x imgH. Normalized
// boxes are scaled by the image size; the file's own size is used when the
// caller passes zero. Unknown states fall back to def.State and are reported in skipped.
func (f *File) Resolve(imgW, imgH int, def Defaults) (holds []Hold, skipped []error) {
	if f == nil {
		return nil, nil
	}
	if imgW <= 0 {
		imgW = f.ImageWidth
	}
	if imgH <= 0 {
		imgH = f.ImageHeight
	}
	sx, sy := 1.0, 1.0
	if f.Normalized {
		sx, sy = float64(imgW), float64(imgH)
	}
	for i, b := range f.Boxes {
		h := Hold{
			ID:     i + 1,
			Class:  b.Class,
			Dims:   hold.BoxDimensions{X: b.X * sx, Y: b.Y * sy, Width: b.W * sx, Height: b.H * sy},
			State:  def.State,
			Number: def.Number,
		}
		if b.State != "" {
			st, err := hold.ParseBoxState(b.State)
			if err != nil {
				skipped = append(skipped, fmt.Errorf("box %d: %w", h.ID, err))
			} else {
				h.State = st
			}
		}
		if b.Number != nil {
			h.Number = *b.Number
		}
		holds = append(holds, h)
	}
	return holds, skipped
}

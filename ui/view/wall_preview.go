package view

import (
	"image"

	"github.com/soocke/holdmark/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// WallPreview shows the rendered wall image with its boxes and reports
// pointer activity in wall pixels.
type WallPreview interface {
	UpdateWall(img image.Image)
	Reset()
	BindPointer(move func(x, y int), out func(), click func(x, y int))
}

// FocusPreview shows a close-up of the focused hold.
type FocusPreview interface {
	UpdateFocus(img image.Image)
}

// photoPanel is a label showing one Tk photo. The previous photo is deleted
// before replacement so obsolete pixel data is not retained.
type photoPanel struct {
	label     *LabelWidget
	prevPhoto *Img
	w, h      int
}

func newPhotoPanel(w, h int) *photoPanel {
	p := &photoPanel{w: w, h: h}
	p.prevPhoto = NewPhoto(Data(p.placeholder()))
	p.label = Label(Image(p.prevPhoto), Borderwidth(1), Relief("sunken"))
	return p
}

// NewWallPreview creates the wall label and grids it at (row, 0).
func NewWallPreview(row int) WallPreview {
	p := newPhotoPanel(400, 225)
	Grid(p.label, Row(row), Column(0), Sticky("nsew"), Padx("0.4m"), Pady("0.4m"))
	return p
}

// NewFocusPreview creates the close-up label and grids it at (row, col).
func NewFocusPreview(row, col int) FocusPreview {
	p := newPhotoPanel(160, 160)
	Grid(p.label, Row(row), Column(col), Sticky("n"), Padx("0.4m"), Pady("0.4m"))
	return p
}

func (p *photoPanel) placeholder() []byte {
	return images.EncodePNG(image.NewRGBA(image.Rect(0, 0, p.w, p.h)))
}

func (p *photoPanel) UpdateWall(img image.Image)  { p.update(img) }
func (p *photoPanel) UpdateFocus(img image.Image) { p.update(img) }

func (p *photoPanel) update(img image.Image) {
	if p == nil || p.label == nil || img == nil {
		return
	}
	p.show(images.EncodePNG(img))
}

// photoInset is the label border plus the classic label's default 1px padding.
const photoInset = 2

// BindPointer forwards motion, leave and left-button presses on the photo.
// Coordinates are shifted so (0, 0) is the image's top-left pixel.
func (p *photoPanel) BindPointer(move func(x, y int), out func(), click func(x, y int)) {
	if p == nil || p.label == nil {
		return
	}
	at := func(fn func(x, y int)) func(*Event) {
		return func(e *Event) {
			if fn != nil {
				fn(e.X-photoInset, e.Y-photoInset)
			}
		}
	}
	Bind(p.label.Window, "<Motion>", Command(at(move)))
	Bind(p.label.Window, "<Button-1>", Command(at(click)))
	Bind(p.label.Window, "<Leave>", Command(func() {
		if out != nil {
			out()
		}
	}))
}

func (p *photoPanel) Reset() {
	if p == nil || p.label == nil {
		return
	}
	p.show(p.placeholder())
}

func (p *photoPanel) show(pngBytes []byte) {
	if p.prevPhoto != nil {
		p.prevPhoto.Delete()
	}
	p.prevPhoto = NewPhoto(Data(pngBytes))
	p.label.Configure(Image(p.prevPhoto))
}

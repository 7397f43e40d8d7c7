package view

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/soocke/holdmark/domain/hold"
	"github.com/soocke/holdmark/ui/model"
	"github.com/soocke/holdmark/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Handlers are the user actions the root view forwards. Nil entries are skipped.
type Handlers struct {
	Mode       func(hold.SelectMode)
	FocusNext  func()
	FocusPrev  func()
	Click      func()
	Mark       func(hold.BoxState)
	Number     func(int)
	Delete     func()
	ZoomIn     func()
	ZoomOut    func()
	ToggleDark func()
	Exit       func()

	// Pointer events on the wall, in wall pixels.
	PointerMove  func(x, y int)
	PointerOut   func()
	PointerClick func(x, y int)
}

// RootView composes the top-level application layout and wires UI callbacks.
type RootView struct {
	style  hold.Style
	logger *slog.Logger

	// Subviews
	Stats HoldStats
	Wall  WallPreview
	Focus FocusPreview

	// Widgets
	ModeLabel  *LabelWidget
	FocusLabel *LabelWidget
}

// UI abstracts the subset of view operations needed by presenters.
type UI interface {
	UpdateWall(img image.Image)
	SetMode(m hold.SelectMode)
	SetCounts(c model.Counts)
	SetFocusLabel(text string)
	UpdateFocus(img image.Image)
}

func NewRootView(style hold.Style, logger *slog.Logger) *RootView {
	return &RootView{style: style, logger: logger}
}

// Build constructs the layout and installs keyboard bindings on the main window.
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	// Row 0: toolbar
	bar := Frame()
	Grid(bar, Row(0), Column(0), Columnspan(2), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	col := 0
	add := func(b *ButtonWidget) {
		Grid(b, In(bar), Row(0), Column(col), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
		col++
	}
	for _, m := range []hold.SelectMode{hold.ModeDrawBox, hold.ModeHandHold, hold.ModeFootHold} {
		add(Button(Txt(modeCaption(m)), Command(func() { call1(h.Mode, m) })))
	}
	add(Button(Txt("Zoom -"), Command(func() { call(h.ZoomOut) })))
	add(Button(Txt("Zoom +"), Command(func() { call(h.ZoomIn) })))
	add(Button(Txt("Exit"), Command(func() { call(h.Exit) })))

	// Row 1: status
	status := Frame()
	Grid(status, Row(1), Column(0), Columnspan(2), Sticky("we"), Padx("0.3m"))
	rv.ModeLabel = Label(Txt("Mode: <none>"), Borderwidth(1), Relief("ridge"), Width(16))
	Grid(rv.ModeLabel, In(status), Row(0), Column(0), Sticky("w"), Padx("0.2m"))
	rv.Stats = NewHoldStats(status, 0, 1)
	rv.FocusLabel = Label(Txt("Focus: <none>"), Width(28))
	Grid(rv.FocusLabel, In(status), Row(0), Column(4), Sticky("w"), Padx("0.2m"))

	// Row 2: wall and focused-hold close-up
	rv.Wall = NewWallPreview(2)
	rv.Focus = NewFocusPreview(2, 1)
	rv.Wall.BindPointer(h.PointerMove, h.PointerOut, h.PointerClick)

	rv.bindKeys(h)
	if rv.logger != nil {
		rv.logger.Debug("root view built")
	}
}

func (rv *RootView) bindKeys(h Handlers) {
	key := func(seq string, fn func()) { Bind(App, seq, Command(fn)) }
	key("<Key-d>", func() { call1(h.Mode, hold.ModeDrawBox) })
	key("<Key-h>", func() { call1(h.Mode, hold.ModeHandHold) })
	key("<Key-f>", func() { call1(h.Mode, hold.ModeFootHold) })
	key("<Tab>", func() { call(h.FocusNext) })
	// X11 reports Shift-Tab as ISO_Left_Tab
	key("<Shift-Tab>", func() { call(h.FocusPrev) })
	key("<ISO_Left_Tab>", func() { call(h.FocusPrev) })
	key("<Return>", func() { call(h.Click) })
	key("<space>", func() { call(h.Click) })
	key("<Key-s>", func() { call1(h.Mark, hold.StateSingleStartHandHold) })
	key("<Key-S>", func() { call1(h.Mark, hold.StateDualStartHandHold) })
	key("<Key-e>", func() { call1(h.Mark, hold.StateEndHandHold) })
	key("<Key-x>", func() { call1(h.Mark, hold.StateHidden) })
	key("<Key-u>", func() { call1(h.Mark, hold.StateUnselected) })
	key("<Delete>", func() { call(h.Delete) })
	key("<BackSpace>", func() { call(h.Delete) })
	key("<plus>", func() { call(h.ZoomIn) })
	key("<equal>", func() { call(h.ZoomIn) })
	key("<minus>", func() { call(h.ZoomOut) })
	key("<Key-t>", func() { call(h.ToggleDark) })
	key("<Key-q>", func() { call(h.Exit) })
	for n := 0; n <= 9; n++ {
		key(fmt.Sprintf("<Key-%d>", n), func() { call1(h.Number, n) })
	}
}

func modeCaption(m hold.SelectMode) string {
	switch m {
	case hold.ModeHandHold:
		return "Hand (h)"
	case hold.ModeFootHold:
		return "Foot (f)"
	default:
		return "Draw (d)"
	}
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}

func call1[T any](fn func(T), v T) {
	if fn != nil {
		fn(v)
	}
}

// SetMode shows m in the mode label, tinted with the mode's outline color.
func (rv *RootView) SetMode(m hold.SelectMode) {
	if rv == nil || rv.ModeLabel == nil {
		return
	}
	rv.ModeLabel.Configure(Txt("Mode: "+m.String()), Background(theme.ModeColor(rv.style, m)))
}

// SetCounts proxies to the hold stats subview.
func (rv *RootView) SetCounts(c model.Counts) {
	if rv != nil && rv.Stats != nil {
		rv.Stats.SetCounts(c)
	}
}

// SetFocusLabel updates the focused-box label.
func (rv *RootView) SetFocusLabel(text string) {
	if rv != nil && rv.FocusLabel != nil {
		rv.FocusLabel.Configure(Txt(text))
	}
}

// UpdateWall proxies to the wall preview.
func (rv *RootView) UpdateWall(img image.Image) {
	if rv != nil && rv.Wall != nil {
		rv.Wall.UpdateWall(img)
	}
}

// UpdateFocus proxies to the close-up preview.
func (rv *RootView) UpdateFocus(img image.Image) {
	if rv != nil && rv.Focus != nil {
		rv.Focus.UpdateFocus(img)
	}
}

var _ UI = (*RootView)(nil)

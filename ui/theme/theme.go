package theme

// Palette and ttk style setup for the annotator window. Mode colors follow
// the hold outline style so the toolbar matches what is drawn on the wall.

import (
	"github.com/soocke/holdmark/domain/hold"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// PaletteSnapshot represents resolved colors for the active mode.
type PaletteSnapshot struct {
	AppBg     string
	Surface   string
	Border    string
	Primary   string
	Text      string
	TextMuted string
}

var (
	light = PaletteSnapshot{AppBg: "#f7f9fb", Surface: "#ffffff", Border: "#d0d7de", Primary: "#2563eb", Text: "#1e293b", TextMuted: "#64748b"}
	dark  = PaletteSnapshot{AppBg: "#0f172a", Surface: "#1e293b", Border: "#334155", Primary: "#3b82f6", Text: "#f1f5f9", TextMuted: "#94a3b8"}
)

// style names used with StyleConfigure
const (
	StyleModeButton = "mode.TButton"
	StyleStatus     = "status.TLabel"
)

var darkMode bool

// CurrentPalette returns colors for the current dark/light mode.
func CurrentPalette() PaletteSnapshot {
	if darkMode {
		return dark
	}
	return light
}

// ModeColor returns the toolbar accent for m: the hand or foot outline stroke,
// or the primary color for the draw tool.
func ModeColor(style hold.Style, m hold.SelectMode) string {
	switch m {
	case hold.ModeHandHold:
		return style.HandHold.Stroke
	case hold.ModeFootHold:
		return style.FootHold.Stroke
	default:
		return CurrentPalette().Primary
	}
}

// InitStyles (re)applies styles for the current mode.
func InitStyles() { applyStyles(CurrentPalette()) }

// ToggleDark flips dark mode and reapplies styles. Returns the new mode value.
func ToggleDark() bool {
	darkMode = !darkMode
	applyStyles(CurrentPalette())
	return darkMode
}

func applyStyles(p PaletteSnapshot) {
	_ = ActivateTheme("azure light") // baseline metrics
	App.Configure(Background(p.AppBg))
	StyleConfigure(StyleModeButton,
		Background(p.Primary),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleStatus,
		Foreground(p.Text),
		Background(p.Surface),
		Padding("2p 1p"),
	)
}

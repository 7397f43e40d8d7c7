package config

import (
	"encoding/json"
	"os"

	"github.com/soocke/holdmark/domain/hold"
)

// Config holds runtime configuration for the annotator.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Inputs
	ImagePath      string `json:"image_path"`
	DetectionsPath string `json:"detections_path"`
	WatchDetection bool   `json:"watch_detections"`

	// Box defaults
	InitialState  string     `json:"initial_state"`
	DefaultNumber int        `json:"default_number"`
	SelectMode    string     `json:"select_mode"`
	Style         hold.Style `json:"style"`

	// Viewer
	MaxViewW     int     `json:"max_view_w"`
	MaxViewH     int     `json:"max_view_h"`
	ZoomStep     float64 `json:"zoom_step"`
	MinZoom      float64 `json:"min_zoom"`
	MaxZoom      float64 `json:"max_zoom"`
	TickMillis   int     `json:"tick_millis"`
	StatsSeconds int     `json:"stats_seconds"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:          false,
		WatchDetection: true,
		InitialState:   hold.InitialState.String(),
		DefaultNumber:  4,
		SelectMode:     hold.ModeHandHold.String(),
		Style:          hold.DefaultStyle(),
		MaxViewW:       1280,
		MaxViewH:       800,
		ZoomStep:       1.25,
		MinZoom:        0.1,
		MaxZoom:        8,
		TickMillis:     50,
		StatsSeconds:   5,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if _, err := hold.ParseBoxState(c.InitialState); err != nil {
		c.InitialState = hold.InitialState.String()
	}
	if _, err := hold.ParseSelectMode(c.SelectMode); err != nil {
		c.SelectMode = hold.ModeHandHold.String()
	}
	if c.DefaultNumber < 0 {
		c.DefaultNumber = 0
	}
	def := hold.DefaultStyle()
	if c.Style.HoverStrokeWidth <= 0 {
		c.Style.HoverStrokeWidth = def.HoverStrokeWidth
	}
	if c.Style.TapeWidthFactor <= 0 {
		c.Style.TapeWidthFactor = def.TapeWidthFactor
	}
	if c.Style.TapeColor == "" {
		c.Style.TapeColor = def.TapeColor
	}
	if c.Style.Label.FontSize <= 0 {
		c.Style.Label.FontSize = def.Label.FontSize
	}
	if c.MaxViewW <= 0 {
		c.MaxViewW = 1280
	}
	if c.MaxViewH <= 0 {
		c.MaxViewH = 800
	}
	if c.ZoomStep <= 1 {
		c.ZoomStep = 1.25
	}
	if c.MinZoom <= 0 {
		c.MinZoom = 0.1
	}
	if c.MaxZoom < c.MinZoom {
		c.MaxZoom = c.MinZoom * 80
	}
	if c.TickMillis <= 0 {
		c.TickMillis = 50
	}
	if c.StatsSeconds <= 0 {
		c.StatsSeconds = 5
	}
	return nil
}

// BoxState returns the parsed initial state.
func (c *Config) BoxState() hold.BoxState {
	s, err := hold.ParseBoxState(c.InitialState)
	if err != nil {
		return hold.InitialState
	}
	return s
}

// Mode returns the parsed start-up select mode.
func (c *Config) Mode() hold.SelectMode {
	m, err := hold.ParseSelectMode(c.SelectMode)
	if err != nil {
		return hold.ModeHandHold
	}
	return m
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

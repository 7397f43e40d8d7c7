package hold

import (
	"log/slog"
)

// ControllerConfig holds per-box construction parameters.
type ControllerConfig struct {
	ID           int
	Style        Style
	InitialState BoxState
	Number       int
}

// DefaultControllerConfig returns the stock style, the dual-start initial
// state and label number 4.
func DefaultControllerConfig(id int) ControllerConfig {
	return ControllerConfig{ID: id, Style: DefaultStyle(), InitialState: InitialState, Number: 4}
}

// BoxController binds one hold to its drawable group and translates pointer
// input into state transitions.
type BoxController struct {
	id         int
	layer      Layer
	modes      ModeProvider
	style      Style
	logger     *slog.Logger
	machine    *StateMachine
	dims       BoxDimensions
	registered bool

	group Group
	rect  Rect
	label Text
	tape1 Line
	tape2 Line
}

// NewBoxController constructs an unregistered controller.
func NewBoxController(layer Layer, modes ModeProvider, cfg ControllerConfig, logger *slog.Logger) *BoxController {
	if modes == nil {
		modes = ModeFunc(func() SelectMode { return ModeDrawBox })
	}
	return &BoxController{
		id:      cfg.ID,
		layer:   layer,
		modes:   modes,
		style:   cfg.Style,
		logger:  logger,
		machine: NewStateMachine(cfg.InitialState, cfg.Number),
	}
}

func (c *BoxController) ID() int                   { return c.id }
func (c *BoxController) State() BoxState           { return c.machine.Current() }
func (c *BoxController) Number() int               { return c.machine.Number() }
func (c *BoxController) Dimensions() BoxDimensions { return c.dims }
func (c *BoxController) Registered() bool          { return c.registered }

// AddListener forwards to the state machine.
func (c *BoxController) AddListener(l StateListener) { c.machine.AddListener(l) }

// Register builds the box primitives at d, installs the interaction handlers
// and attaches the group to the layer. Only the first call has any effect.
func (c *BoxController) Register(d BoxDimensions) {
	if c.registered {
		if c.logger != nil {
			c.logger.Warn("bounding box already registered", "id", c.id)
		}
		return
	}
	c.registered = true
	c.dims = d
	c.group = c.layer.CreateGroup()
	c.rect = c.layer.CreateRect()
	c.label = c.layer.CreateText()
	c.tape1 = c.layer.CreateLine()
	c.tape2 = c.layer.CreateLine()

	c.group.SetGeometry(d)
	c.rect.SetSize(d.Width, d.Height)
	c.rect.On(EventPointerEnter, c.PointerEnter)
	c.rect.On(EventPointerLeave, c.PointerLeave)
	c.rect.On(EventClick, c.Click)
	c.rect.On(EventTap, c.Click)

	c.group.Add(c.rect, c.label, c.tape1, c.tape2)
	c.layer.Attach(c.group)
	c.apply()
	if c.logger != nil {
		c.logger.Debug("bounding box registered", "id", c.id, "x", d.X, "y", d.Y, "w", d.Width, "h", d.Height, "state", c.State().String())
	}
}

// Unregister detaches the group from the layer when the hold is deleted.
// The controller is inert afterwards.
func (c *BoxController) Unregister() {
	if !c.registered {
		return
	}
	c.registered = false
	c.layer.Detach(c.group)
	c.layer.RequestRedraw()
	if c.logger != nil {
		c.logger.Debug("bounding box unregistered", "id", c.id)
	}
}

// PointerEnter widens the outline as a hover affordance unless the draw tool is active.
func (c *BoxController) PointerEnter() {
	if !c.registered {
		return
	}
	if c.modes.Mode() != ModeDrawBox {
		c.rect.SetAttrs(c.style.Hover(c.State()))
	}
	c.layer.RequestRedraw()
}

// PointerLeave restores the state-derived outline unless the draw tool is active.
func (c *BoxController) PointerLeave() {
	if !c.registered {
		return
	}
	if c.modes.Mode() != ModeDrawBox {
		c.applyOutline()
	}
	c.layer.RequestRedraw()
}

// Click applies the current mode to the box state and re-derives all visuals.
func (c *BoxController) Click() {
	if !c.registered {
		return
	}
	mode := c.modes.Mode()
	prev := c.State()
	next, changed := c.machine.OnInteraction(mode)
	if changed && c.logger != nil {
		c.logger.Debug("box state transition", "id", c.id, "mode", mode.String(), "from", prev.String(), "to", next.String())
	}
	c.apply()
	c.layer.RequestRedraw()
}

// SetState marks the box directly (start, end, hidden) outside the click toggle.
func (c *BoxController) SetState(s BoxState) {
	if !s.Valid() && c.logger != nil {
		c.logger.Warn("unknown box state, default style applies", "id", c.id, "state", int(s))
	}
	c.machine.SetState(s)
	if c.registered {
		c.apply()
		c.layer.RequestRedraw()
	}
}

// SetNumber changes the label number; zero hides the label.
func (c *BoxController) SetNumber(n int) {
	c.machine.SetNumber(n)
	if c.registered {
		c.label.SetAttrs(c.style.LabelAttrs(c.Number(), c.dims.Height))
		c.layer.RequestRedraw()
	}
}

// Resize scales position and size by factor (new scale / old scale) and keeps
// the label anchored under the box. The state is unchanged.
func (c *BoxController) Resize(factor float64) {
	c.dims = c.dims.Scale(factor)
	if !c.registered {
		return
	}
	c.group.SetGeometry(c.dims)
	c.rect.SetSize(c.dims.Width, c.dims.Height)
	c.label.SetAttrs(c.style.LabelAttrs(c.Number(), c.dims.Height))
	c.applyTapes()
}

func (c *BoxController) apply() {
	c.applyOutline()
	c.label.SetAttrs(c.style.LabelAttrs(c.Number(), c.dims.Height))
	c.applyTapes()
}

func (c *BoxController) applyOutline() { c.rect.SetAttrs(c.style.Outline(c.State())) }

// applyTapes derives tape width from the state outline, never from a hover width.
func (c *BoxController) applyTapes() {
	state := c.State()
	tapes := c.style.Tapes(state, c.dims.Width, c.style.Outline(state).StrokeWidth)
	c.tape1.SetAttrs(tapes.Tape1)
	c.tape2.SetAttrs(tapes.Tape2)
}

package hold

// EventKind enumerates pointer interactions a surface delivers to a box outline.
type EventKind int

const (
	EventPointerEnter EventKind = iota
	EventPointerLeave
	EventClick
	EventTap
)

func (e EventKind) String() string {
	switch e {
	case EventPointerEnter:
		return "pointerenter"
	case EventPointerLeave:
		return "pointerleave"
	case EventClick:
		return "click"
	case EventTap:
		return "tap"
	default:
		return "unknown"
	}
}

// Node is any drawable primitive created by a Layer.
type Node interface{ NodeID() int }

// Group positions its children; child coordinates are relative to the group origin.
type Group interface {
	Node
	SetGeometry(BoxDimensions)
	Add(children ...Node)
}

// Rect is the box outline and the hit target for interactions.
type Rect interface {
	Node
	SetSize(width, height float64)
	SetAttrs(RectAttrs)
	On(kind EventKind, handler func())
}

// Text is the numeric label.
type Text interface {
	Node
	SetAttrs(TextAttrs)
}

// Line is one tape segment.
type Line interface {
	Node
	SetAttrs(LineAttrs)
}

// Layer is the capability set a box needs from the rendering surface.
// RequestRedraw schedules a coalesced repaint; it never draws immediately.
type Layer interface {
	CreateGroup() Group
	CreateRect() Rect
	CreateText() Text
	CreateLine() Line
	Attach(Group)
	Detach(Group)
	RequestRedraw()
}

// ModeProvider yields the current editing mode at call time.
type ModeProvider interface{ Mode() SelectMode }

// ModeFunc adapts a function to ModeProvider.
type ModeFunc func() SelectMode

func (f ModeFunc) Mode() SelectMode { return f() }

// Package widgets defines the immutable widget tree: a closed set of six
// variants (Flex, Grid, Text, Rect, Scroll, Spacer) plus the box style and
// scroll state they carry.
//
// Widgets are plain value types. A tree is built once per pass and never
// mutated; any change (such as attaching a resolved text layout) produces a
// new tree value.
package widgets

import (
	"github.com/go-slate/slate/pkg/graphics"
	"github.com/go-slate/slate/pkg/text"
)

// WidgetID uniquely identifies a widget within one tree snapshot.
//
// Uniqueness is a caller obligation: nothing validates it, and lookups by
// identity resolve to the first match in pre-order when it is violated.
type WidgetID int64

// Widget is a node in the declarative UI tree.
//
// The variant set is closed: exactly Flex, Grid, Text, Rect, Scroll and
// Spacer implement it, so consumers may (and do) switch exhaustively.
type Widget interface {
	// Identity returns the widget's unique integer identity.
	Identity() WidgetID
	// DebugName returns the optional human-readable name, or "".
	DebugName() string

	sealed()
}

// Info carries the identity fields embedded by every widget variant.
type Info struct {
	// ID is the widget's unique identity within the tree snapshot.
	ID WidgetID
	// Name is an optional human-readable label for debugging.
	Name string
}

// Identity returns the widget's unique integer identity.
func (i Info) Identity() WidgetID { return i.ID }

// DebugName returns the optional human-readable name, or "".
func (i Info) DebugName() string { return i.Name }

func (Info) sealed() {}

// Axis represents a layout direction.
// AxisVertical is the zero value, making a Flex default to a column.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	if a == AxisHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// Flex lays out its children along a single axis with a uniform gap.
type Flex struct {
	Info
	Style     *BoxStyle
	Direction Axis
	Gap       float64
	Children  []Widget
}

// Grid lays out its children in uniform cells across a fixed column count.
type Grid struct {
	Info
	Style     *BoxStyle
	Columns   int
	ColumnGap float64
	RowGap    float64
	Children  []Widget
}

// Text is a leaf displaying one block of styled text.
type Text struct {
	Info
	Content string
	Font    text.Font
	Color   graphics.Color
	Align   text.Align
	// WrapWidth constrains line wrapping. 0 means single-line.
	WrapWidth float64
	// Layout is the resolved line structure, attached by the measurement
	// pass. It is nil on a freshly built tree.
	Layout *text.Layout
}

// WithLayout returns a copy of the text widget with the resolved layout
// attached. The receiver is unchanged.
func (t Text) WithLayout(layout *text.Layout) Text {
	t.Layout = layout
	return t
}

// Rect is a leaf with visual style only.
type Rect struct {
	Info
	Style *BoxStyle
}

// Scroll clips a single child to a viewport and translates it by the
// offsets in State. ContentWidth/ContentHeight declare the scrollable
// extent, which may exceed the viewport; 0 leaves the axis undeclared.
type Scroll struct {
	Info
	Style         *BoxStyle
	State         *ScrollState
	ContentWidth  float64
	ContentHeight float64
	Child         Widget
}

// Spacer is a leaf occupying a fixed amount of space and drawing nothing.
type Spacer struct {
	Info
	Width  float64
	Height float64
}

// ChildrenOf returns the ordered child slice of a container widget, or nil
// for leaves. The returned slice must not be mutated.
func ChildrenOf(w Widget) []Widget {
	switch t := w.(type) {
	case Flex:
		return t.Children
	case Grid:
		return t.Children
	case Scroll:
		if t.Child == nil {
			return nil
		}
		return []Widget{t.Child}
	default:
		return nil
	}
}

// StyleOf returns the box style attached to the widget, or nil.
func StyleOf(w Widget) *BoxStyle {
	switch t := w.(type) {
	case Flex:
		return t.Style
	case Grid:
		return t.Style
	case Rect:
		return t.Style
	case Scroll:
		return t.Style
	default:
		return nil
	}
}

// IDSource allocates widget identities for a single tree-construction pass.
// It is not safe for concurrent use and must not be reused across passes.
type IDSource struct {
	next WidgetID
}

// NewIDSource returns a counter starting at identity 1.
func NewIDSource() *IDSource {
	return &IDSource{}
}

// Next returns the next unused identity.
func (s *IDSource) Next() WidgetID {
	s.next++
	return s.next
}

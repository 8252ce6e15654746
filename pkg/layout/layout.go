// Package layout defines the contract between the widget kernel and the
// external geometric layout engine.
//
// The kernel builds an Input tree (box constraints, container strategy and
// intrinsic content size per widget identity) and hands it to an Engine.
// The engine hands back a Result: solved border and content rectangles,
// all in one shared coordinate space, looked up by widget identity.
// The kernel never solves layout itself.
package layout

import (
	"github.com/go-slate/slate/pkg/graphics"
	"github.com/go-slate/slate/pkg/widgets"
)

// SizingMode tells the engine how a node wants to be sized.
type SizingMode int

const (
	// SizingContent sizes the node from its intrinsic content size,
	// subject to min/max constraints.
	SizingContent SizingMode = iota
	// SizingFixed pins the node to its content size exactly. Used for
	// spacers and scroll viewports, whose extent does not negotiate.
	SizingFixed
)

// Strategy tags how a node arranges its children.
type Strategy int

const (
	// StrategyLeaf marks a node without layout-relevant children.
	StrategyLeaf Strategy = iota
	// StrategyFlex marks a single-axis container.
	StrategyFlex
	// StrategyGrid marks a fixed-column grid container.
	StrategyGrid
)

// FlexParams carries the flex container properties of an Input node.
type FlexParams struct {
	Direction widgets.Axis
	Gap       float64
}

// GridParams carries the grid container properties of an Input node.
type GridParams struct {
	Columns   int
	ColumnGap float64
	RowGap    float64
}

// BoxConstraints are the sizing inputs the engine receives per node.
// Zero min/max values mean unconstrained.
type BoxConstraints struct {
	Mode      SizingMode
	MinWidth  float64
	MinHeight float64
	MaxWidth  float64
	MaxHeight float64
	Margin    graphics.EdgeInsets
	Padding   graphics.EdgeInsets
}

// Input is one node of the layout-input tree produced by the measurement
// pass. It parallels the widget tree and is keyed by the same identities.
type Input struct {
	ID          widgets.WidgetID
	Constraints BoxConstraints
	Strategy    Strategy
	// Flex is set when Strategy is StrategyFlex.
	Flex *FlexParams
	// Grid is set when Strategy is StrategyGrid.
	Grid *GridParams
	// ContentSize is the intrinsic content size demand.
	ContentSize graphics.Size
	Children    []Input
}

// ComputedLayout is the engine's solved placement for one widget.
type ComputedLayout struct {
	// Border is the outer rectangle including the border.
	Border graphics.Rect
	// Content is the inner rectangle excluding padding and border.
	Content graphics.Rect
}

// Result maps widget identities to solved rectangles. It is produced once
// per layout pass and treated as read-only for the remainder of that pass.
type Result map[widgets.WidgetID]ComputedLayout

// Lookup returns the computed layout for the given identity.
// A missing entry is a normal, recoverable condition: the widget was absent
// from the pass that produced this result.
func (r Result) Lookup(id widgets.WidgetID) (ComputedLayout, bool) {
	cl, ok := r[id]
	return cl, ok
}

// Engine solves geometric placement for a measured input tree.
// Implementations live outside the kernel.
type Engine interface {
	Solve(root Input, viewport graphics.Size) (Result, error)
}

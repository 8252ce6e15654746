// Package measure implements the content measurement pass: a bottom-up
// recursion over the widget tree that resolves text layouts and produces
// the layout-input tree consumed by the external layout engine.
package measure

import (
	"math"

	"github.com/go-slate/slate/pkg/errors"
	"github.com/go-slate/slate/pkg/graphics"
	"github.com/go-slate/slate/pkg/layout"
	"github.com/go-slate/slate/pkg/text"
	"github.com/go-slate/slate/pkg/widgets"
)

// Tree measures the widget tree bottom-up.
//
// It returns the layout-input tree for the external engine and a new widget
// tree in which every Text leaf carries its resolved layout. The input tree
// is never mutated. The measurer is invoked exactly once per text leaf.
func Tree(w widgets.Widget, m text.Measurer) (layout.Input, widgets.Widget, error) {
	input, measured, err := measureNode(w, m)
	if err != nil {
		if slateErr, ok := err.(*errors.SlateError); ok {
			errors.Report(slateErr)
		}
		return layout.Input{}, nil, err
	}
	return input, measured, nil
}

func measureNode(w widgets.Widget, m text.Measurer) (layout.Input, widgets.Widget, error) {
	switch t := w.(type) {
	case widgets.Text:
		return measureText(t, m)

	case widgets.Rect:
		size := floorAt(graphics.Size{}, t.Style.MinSize())
		return layout.Input{
			ID:          t.ID,
			Constraints: constraintsFor(t.Style, layout.SizingContent),
			Strategy:    layout.StrategyLeaf,
			ContentSize: size,
		}, t, nil

	case widgets.Spacer:
		return layout.Input{
			ID: t.ID,
			Constraints: layout.BoxConstraints{
				Mode:      layout.SizingFixed,
				MinWidth:  t.Width,
				MinHeight: t.Height,
				MaxWidth:  t.Width,
				MaxHeight: t.Height,
			},
			Strategy:    layout.StrategyLeaf,
			ContentSize: graphics.Size{Width: t.Width, Height: t.Height},
		}, t, nil

	case widgets.Flex:
		childInputs, childWidgets, err := measureChildren(t.Children, m)
		if err != nil {
			return layout.Input{}, nil, err
		}
		size := flexAggregate(t.Direction, t.Gap, childInputs)
		size = t.Style.PaddingOf().Inflate(size)
		size = floorAt(size, t.Style.MinSize())
		t.Children = childWidgets
		return layout.Input{
			ID:          t.ID,
			Constraints: constraintsFor(t.Style, layout.SizingContent),
			Strategy:    layout.StrategyFlex,
			Flex:        &layout.FlexParams{Direction: t.Direction, Gap: t.Gap},
			ContentSize: size,
			Children:    childInputs,
		}, t, nil

	case widgets.Grid:
		childInputs, childWidgets, err := measureChildren(t.Children, m)
		if err != nil {
			return layout.Input{}, nil, err
		}
		columns := t.Columns
		if columns < 1 {
			columns = 1
		}
		size := gridAggregate(columns, t.ColumnGap, t.RowGap, childInputs)
		size = t.Style.PaddingOf().Inflate(size)
		size = floorAt(size, t.Style.MinSize())
		t.Children = childWidgets
		return layout.Input{
			ID:          t.ID,
			Constraints: constraintsFor(t.Style, layout.SizingContent),
			Strategy:    layout.StrategyGrid,
			Grid:        &layout.GridParams{Columns: columns, ColumnGap: t.ColumnGap, RowGap: t.RowGap},
			ContentSize: size,
			Children:    childInputs,
		}, t, nil

	case widgets.Scroll:
		return measureScroll(t, m)

	default:
		// Unreachable: the variant set is closed.
		return layout.Input{}, w, nil
	}
}

func measureText(t widgets.Text, m text.Measurer) (layout.Input, widgets.Widget, error) {
	var resolved text.Layout
	if t.WrapWidth > 0 {
		wrapped, err := m.WrapLines(t.Content, t.Font, t.WrapWidth)
		if err != nil {
			return layout.Input{}, nil, wrapMeasureErr(t.ID, err)
		}
		resolved = wrapped
	} else {
		metrics, err := m.MeasureLine(t.Content, t.Font)
		if err != nil {
			return layout.Input{}, nil, wrapMeasureErr(t.ID, err)
		}
		resolved = text.Layout{
			Lines:      []text.Line{{Text: t.Content, Width: metrics.Width}},
			Height:     metrics.LineHeight,
			MaxWidth:   metrics.Width,
			LineHeight: metrics.LineHeight,
			Ascent:     metrics.Ascent,
		}
	}
	return layout.Input{
		ID:          t.ID,
		Constraints: layout.BoxConstraints{Mode: layout.SizingContent},
		Strategy:    layout.StrategyLeaf,
		ContentSize: graphics.Size{Width: resolved.MaxWidth, Height: resolved.Height},
	}, t.WithLayout(&resolved), nil
}

func measureScroll(t widgets.Scroll, m text.Measurer) (layout.Input, widgets.Widget, error) {
	// The viewport the engine sizes: explicit style minimum, or the declared
	// content extent when unset. The scrollable extent itself never leaks
	// into the parent's layout.
	viewport := t.Style.MinSize()
	if viewport.Width == 0 {
		viewport.Width = t.ContentWidth
	}
	if viewport.Height == 0 {
		viewport.Height = t.ContentHeight
	}

	input := layout.Input{
		ID:          t.ID,
		Constraints: constraintsFor(t.Style, layout.SizingFixed),
		Strategy:    layout.StrategyLeaf,
		ContentSize: viewport,
	}

	if t.Child != nil {
		childInput, childWidget, err := measureNode(t.Child, m)
		if err != nil {
			return layout.Input{}, nil, err
		}
		// The child is laid out against the declared scrollable extent,
		// not the viewport, so content may exceed what is visible.
		if t.ContentWidth > childInput.Constraints.MinWidth {
			childInput.Constraints.MinWidth = t.ContentWidth
		}
		if t.ContentHeight > childInput.Constraints.MinHeight {
			childInput.Constraints.MinHeight = t.ContentHeight
		}
		input.Children = []layout.Input{childInput}
		t.Child = childWidget
	}
	return input, t, nil
}

func measureChildren(children []widgets.Widget, m text.Measurer) ([]layout.Input, []widgets.Widget, error) {
	if len(children) == 0 {
		return nil, nil, nil
	}
	inputs := make([]layout.Input, 0, len(children))
	measured := make([]widgets.Widget, 0, len(children))
	for _, child := range children {
		input, widget, err := measureNode(child, m)
		if err != nil {
			return nil, nil, err
		}
		inputs = append(inputs, input)
		measured = append(measured, widget)
	}
	return inputs, measured, nil
}

// flexAggregate combines child content sizes along the flex axis:
// sum plus gaps on the main axis, max on the cross axis.
func flexAggregate(direction widgets.Axis, gap float64, children []layout.Input) graphics.Size {
	var size graphics.Size
	if len(children) == 0 {
		return size
	}
	for _, child := range children {
		cs := child.ContentSize
		if direction == widgets.AxisVertical {
			size.Width = math.Max(size.Width, cs.Width)
			size.Height += cs.Height
		} else {
			size.Width += cs.Width
			size.Height = math.Max(size.Height, cs.Height)
		}
	}
	gapTotal := gap * float64(len(children)-1)
	if direction == widgets.AxisVertical {
		size.Height += gapTotal
	} else {
		size.Width += gapTotal
	}
	return size
}

// gridAggregate sizes a uniform-cell grid: every cell is as wide as the
// widest child and as tall as the tallest.
func gridAggregate(columns int, columnGap, rowGap float64, children []layout.Input) graphics.Size {
	if len(children) == 0 {
		return graphics.Size{}
	}
	var cellWidth, cellHeight float64
	for _, child := range children {
		cellWidth = math.Max(cellWidth, child.ContentSize.Width)
		cellHeight = math.Max(cellHeight, child.ContentSize.Height)
	}
	rows := (len(children) + columns - 1) / columns
	return graphics.Size{
		Width:  cellWidth*float64(columns) + columnGap*float64(columns-1),
		Height: cellHeight*float64(rows) + rowGap*float64(rows-1),
	}
}

func constraintsFor(style *widgets.BoxStyle, mode layout.SizingMode) layout.BoxConstraints {
	if style == nil {
		return layout.BoxConstraints{Mode: mode}
	}
	return layout.BoxConstraints{
		Mode:      mode,
		MinWidth:  style.MinWidth,
		MinHeight: style.MinHeight,
		MaxWidth:  style.MaxWidth,
		MaxHeight: style.MaxHeight,
		Margin:    style.Margin,
		Padding:   style.Padding,
	}
}

func floorAt(size, minimum graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  math.Max(size.Width, minimum.Width),
		Height: math.Max(size.Height, minimum.Height),
	}
}

func wrapMeasureErr(id widgets.WidgetID, err error) error {
	return &errors.SlateError{
		Op:     "measure.Tree",
		Kind:   errors.KindMeasure,
		Widget: int64(id),
		Err:    err,
	}
}

package render

import (
	"github.com/go-slate/slate/pkg/layout"
	"github.com/go-slate/slate/pkg/text"
	"github.com/go-slate/slate/pkg/widgets"
)

// Collect walks the widget tree in pre-order, children in array order, and
// emits draw commands for every widget present in the computed layout.
//
// A widget whose identity is missing from the result is skipped along with
// its whole subtree; that widget was absent from the layout pass and there
// is nothing sensible to draw for it.
func Collect(root widgets.Widget, result layout.Result, sink Sink) {
	if root == nil {
		return
	}
	collectNode(root, result, sink)
}

func collectNode(w widgets.Widget, result layout.Result, sink Sink) {
	cl, ok := result.Lookup(w.Identity())
	if !ok {
		return
	}

	switch t := w.(type) {
	case widgets.Flex:
		paintBox(t.Style, cl, sink)
		for _, child := range t.Children {
			collectNode(child, result, sink)
		}

	case widgets.Grid:
		paintBox(t.Style, cl, sink)
		for _, child := range t.Children {
			collectNode(child, result, sink)
		}

	case widgets.Rect:
		paintBox(t.Style, cl, sink)

	case widgets.Text:
		paintText(t, cl, sink)

	case widgets.Scroll:
		paintBox(t.Style, cl, sink)
		// The bracket below is emitted unconditionally so clip, save and
		// translate counts stay balanced no matter what the child does.
		offset := t.State.Offset()
		sink.PushClip(cl.Content)
		sink.Save()
		sink.PushTranslate(-offset.X, -offset.Y)
		if t.Child != nil {
			collectNode(t.Child, result, sink)
		}
		sink.PopTransform()
		sink.Restore()
		sink.PopClip()

	case widgets.Spacer:
		// Spacers occupy space and draw nothing.
	}
}

// paintBox emits the background fill and, when a border is configured, the
// border stroke. Both target the border rectangle.
func paintBox(style *widgets.BoxStyle, cl layout.ComputedLayout, sink Sink) {
	if style == nil {
		return
	}
	sink.FillRect(cl.Border, style.Background, style.CornerRadius)
	if style.BorderWidth > 0 {
		sink.StrokeRect(cl.Border, style.BorderColor, style.BorderWidth, style.CornerRadius)
	}
}

// paintText vertically centers the text block in the content rectangle and
// emits one fill-text command per line, y at the line's baseline.
func paintText(t widgets.Text, cl layout.ComputedLayout, sink Sink) {
	resolved := t.Layout
	if resolved == nil {
		// Unmeasured tree; nothing to draw.
		return
	}
	content := cl.Content
	centering := (content.Height() - resolved.Height) / 2
	baseline := content.Top + centering + resolved.Ascent

	for _, line := range resolved.Lines {
		var x float64
		switch t.Align {
		case text.AlignCenter:
			x = content.Left + (content.Width()-line.Width)/2
		case text.AlignRight:
			x = content.Right - line.Width
		default:
			x = content.Left
		}
		sink.FillText(line.Text, x, baseline, t.Font, t.Color)
		baseline += resolved.LineHeight
	}
}

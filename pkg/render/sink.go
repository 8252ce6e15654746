// Package render implements the render command collector: a pre-order pass
// over the widget tree and its computed layout that emits an ordered
// sequence of abstract draw commands. The emission order is the paint
// order; later commands draw over earlier ones.
package render

import (
	"github.com/go-slate/slate/pkg/graphics"
	"github.com/go-slate/slate/pkg/text"
)

// Sink receives draw commands in paint order. Any concrete backend
// implements exactly these primitives with standard 2D-canvas semantics:
// clips intersect with the current clip, translations compose additively,
// and save/restore manages the full graphics state as a LIFO stack.
type Sink interface {
	// FillRect fills a rectangle, honoring the corner radius.
	FillRect(rect graphics.Rect, color graphics.Color, cornerRadius float64)

	// StrokeRect strokes a rectangle outline.
	StrokeRect(rect graphics.Rect, color graphics.Color, lineWidth, cornerRadius float64)

	// FillText draws one line of text. y is the baseline.
	FillText(content string, x, y float64, font text.Font, color graphics.Color)

	// PushClip intersects the current clip with rect.
	PushClip(rect graphics.Rect)

	// PopClip removes the most recent clip.
	PopClip()

	// PushTranslate offsets the coordinate system by (dx, dy).
	PushTranslate(dx, dy float64)

	// PopTransform removes the most recent translation.
	PopTransform()

	// Save pushes the full graphics state.
	Save()

	// Restore pops the full graphics state.
	Restore()
}

package widgets

import "github.com/go-slate/slate/pkg/graphics"

// ScrollState holds the current scroll offsets for a Scroll widget.
//
// Unlike widgets themselves, scroll state is identity: the same *ScrollState
// is shared by successive tree snapshots, and scroll-input handling (outside
// the kernel) mutates it between passes. The kernel only ever reads it.
type ScrollState struct {
	X float64
	Y float64
}

// Offset returns the current offset. A nil state reads as (0, 0).
func (s *ScrollState) Offset() graphics.Offset {
	if s == nil {
		return graphics.Offset{}
	}
	return graphics.Offset{X: s.X, Y: s.Y}
}

// ScrollTo sets the absolute offset.
func (s *ScrollState) ScrollTo(x, y float64) {
	s.X = x
	s.Y = y
}

// ScrollBy adjusts the offset by the given deltas.
func (s *ScrollState) ScrollBy(dx, dy float64) {
	s.X += dx
	s.Y += dy
}

// ClampTo limits the offset so the viewport stays within the scrollable
// content extent.
func (s *ScrollState) ClampTo(content, viewport graphics.Size) {
	maxX := content.Width - viewport.Width
	maxY := content.Height - viewport.Height
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	s.X = clamp(s.X, 0, maxX)
	s.Y = clamp(s.Y, 0, maxY)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package graphics

// EdgeInsets describes offsets from the four edges of a box.
type EdgeInsets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// EdgeInsetsAll creates insets with the same value on all four edges.
func EdgeInsetsAll(value float64) EdgeInsets {
	return EdgeInsets{Left: value, Top: value, Right: value, Bottom: value}
}

// EdgeInsetsSymmetric creates insets with the given horizontal and vertical values.
func EdgeInsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// EdgeInsetsOnly creates insets with individual edge values.
func EdgeInsetsOnly(left, top, right, bottom float64) EdgeInsets {
	return EdgeInsets{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Horizontal returns the total horizontal inset (left + right).
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the total vertical inset (top + bottom).
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}

// IsZero returns true if all four edges are zero.
func (e EdgeInsets) IsZero() bool {
	return e == EdgeInsets{}
}

// Inflate grows the size by the insets on both axes.
func (e EdgeInsets) Inflate(s Size) Size {
	return Size{Width: s.Width + e.Horizontal(), Height: s.Height + e.Vertical()}
}

// Deflate shrinks the rect inward by the insets.
func (e EdgeInsets) Deflate(r Rect) Rect {
	return Rect{
		Left:   r.Left + e.Left,
		Top:    r.Top + e.Top,
		Right:  r.Right - e.Right,
		Bottom: r.Bottom - e.Bottom,
	}
}

// Package graphics provides the geometric and color primitives shared by
// measurement, render collection and hit testing: offsets, sizes,
// rectangles, edge insets and ARGB colors.
package graphics

// Offset is a point or translation in logical pixels.
type Offset struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Size is a width and height in logical pixels.
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty reports whether the size has no area.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is an axis-aligned rectangle defined by its edges.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a rectangle from its top-left corner and size.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Right: left + width, Bottom: top + height}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the rectangle's extent.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() Offset {
	return Offset{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Contains reports whether the point lies within the rectangle. All four
// edges count as inside.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Translate returns the rectangle shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Intersect returns the overlapping region of two rectangles. The result
// is empty when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	return Rect{
		Left:   max(r.Left, other.Left),
		Top:    max(r.Top, other.Top),
		Right:  min(r.Right, other.Right),
		Bottom: min(r.Bottom, other.Bottom),
	}
}

// Union returns the smallest rectangle covering both rectangles.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Left:   min(r.Left, other.Left),
		Top:    min(r.Top, other.Top),
		Right:  max(r.Right, other.Right),
		Bottom: max(r.Bottom, other.Bottom),
	}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

package widgets

import "github.com/go-slate/slate/pkg/graphics"

// BoxStyle describes the visual box decoration and sizing constraints of a
// container, rect or scroll widget.
type BoxStyle struct {
	// Background fills the border rectangle, honoring CornerRadius.
	Background graphics.Color
	// BorderColor strokes the border rectangle when BorderWidth > 0.
	BorderColor graphics.Color
	// BorderWidth is the stroke width of the border. 0 disables the border.
	BorderWidth float64
	// CornerRadius rounds the corners of both fill and stroke.
	CornerRadius float64
	// Padding insets content from the border rectangle.
	Padding graphics.EdgeInsets
	// Margin spaces the widget away from its siblings; consumed by the
	// external layout engine, never painted.
	Margin graphics.EdgeInsets

	// Minimum and maximum sizes passed to the layout engine. Zero means
	// unconstrained. The measurement pass floors aggregate content sizes
	// at the minimum.
	MinWidth  float64
	MinHeight float64
	MaxWidth  float64
	MaxHeight float64
}

// MinSize returns the configured minimum as a size.
func (s *BoxStyle) MinSize() graphics.Size {
	if s == nil {
		return graphics.Size{}
	}
	return graphics.Size{Width: s.MinWidth, Height: s.MinHeight}
}

// PaddingOf returns the style's padding, tolerating a nil style.
func (s *BoxStyle) PaddingOf() graphics.EdgeInsets {
	if s == nil {
		return graphics.EdgeInsets{}
	}
	return s.Padding
}

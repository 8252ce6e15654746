// Package text defines the pluggable text measurement capability used by the
// measurement pass, along with the font reference and resolved layout types
// that flow through the widget tree.
package text

import "fmt"

const (
	// defaultFontSize is used when no font size is specified.
	defaultFontSize = 16
)

// FontWeight represents a numeric font weight.
type FontWeight int

const (
	FontWeightThin       FontWeight = 100
	FontWeightExtraLight FontWeight = 200
	FontWeightLight      FontWeight = 300
	FontWeightNormal     FontWeight = 400
	FontWeightMedium     FontWeight = 500
	FontWeightSemibold   FontWeight = 600
	FontWeightBold       FontWeight = 700
	FontWeightExtraBold  FontWeight = 800
	FontWeightBlack      FontWeight = 900
)

// String returns a human-readable representation of the font weight.
func (w FontWeight) String() string {
	switch w {
	case FontWeightThin:
		return "thin"
	case FontWeightExtraLight:
		return "extra_light"
	case FontWeightLight:
		return "light"
	case FontWeightNormal:
		return "normal"
	case FontWeightMedium:
		return "medium"
	case FontWeightSemibold:
		return "semibold"
	case FontWeightBold:
		return "bold"
	case FontWeightExtraBold:
		return "extra_bold"
	case FontWeightBlack:
		return "black"
	default:
		return fmt.Sprintf("FontWeight(%d)", int(w))
	}
}

// FontStyle represents normal or italic text styles.
type FontStyle int

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
)

// Font is a reference to a registered font family at a given size.
// It identifies which face a Measurer should use; it carries no face data
// itself, so it is freely copyable and comparable.
type Font struct {
	Family string
	Size   float64
	Weight FontWeight
	Style  FontStyle
}

// EffectiveSize returns the font size, falling back to the default when unset.
func (f Font) EffectiveSize() float64 {
	if f.Size <= 0 {
		return defaultFontSize
	}
	return f.Size
}

// Align controls horizontal placement of lines within a text block.
type Align int

const (
	// AlignLeft aligns lines to the left edge of the content rectangle.
	AlignLeft Align = iota
	// AlignCenter centers each line within the content rectangle.
	AlignCenter
	// AlignRight aligns lines to the right edge of the content rectangle.
	AlignRight
)

// String returns a human-readable representation of the alignment.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("Align(%d)", int(a))
	}
}

// LineMetrics holds single-line measurement results.
type LineMetrics struct {
	// Width is the advance width of the measured text.
	Width float64
	// Height is the glyph extent (ascent + descent).
	Height float64
	// Ascent is the distance from the baseline to the top of glyphs.
	Ascent float64
	// Descent is the distance from the baseline to the bottom of glyphs.
	Descent float64
	// LineHeight is the recommended baseline-to-baseline distance.
	LineHeight float64
}

// Line represents a single laid-out line of text.
type Line struct {
	Text  string
	Width float64
}

// Layout contains the measured line structure of a text block.
// It is produced once per text leaf per measurement pass and is
// immutable afterwards.
type Layout struct {
	// Lines are the laid-out lines in display order.
	Lines []Line
	// Height is the total block height (LineHeight times the line count).
	Height float64
	// MaxWidth is the width of the widest line.
	MaxWidth float64
	// LineHeight is the baseline-to-baseline distance between lines.
	LineHeight float64
	// Ascent positions the first baseline within the block.
	Ascent float64
}

// Measurer is the text measurement capability consumed by the measurement
// pass. Implementations may be pure (FixedMeasurer) or backed by real font
// data (FaceMeasurer); the caller treats each call as a single synchronous
// operation.
type Measurer interface {
	// MeasureLine measures text as a single unwrapped line.
	MeasureLine(text string, font Font) (LineMetrics, error)

	// WrapLines breaks text into lines no wider than maxWidth and returns
	// the resulting block layout.
	WrapLines(text string, font Font, maxWidth float64) (Layout, error)
}

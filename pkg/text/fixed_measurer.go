package text

import "github.com/mattn/go-runewidth"

// FixedMeasurer provides deterministic metrics without any font data.
//
// Advance widths are derived from terminal cell widths, so East Asian wide
// runes advance twice as far as narrow ones. Useful for headless measurement
// and for tests that need exact, font-independent numbers.
type FixedMeasurer struct {
	// CellWidth is the advance per narrow rune. 0 means 0.6 times the font size.
	CellWidth float64
	// LineHeightFactor scales the font size into a line height. 0 means 1.2.
	LineHeightFactor float64
	// AscentFactor scales the font size into an ascent. 0 means 0.8.
	AscentFactor float64
}

func (m FixedMeasurer) cell(f Font) float64 {
	if m.CellWidth > 0 {
		return m.CellWidth
	}
	return f.EffectiveSize() * 0.6
}

// MeasureLine measures text as a single unwrapped line.
func (m FixedMeasurer) MeasureLine(text string, f Font) (LineMetrics, error) {
	size := f.EffectiveSize()
	lineFactor := m.LineHeightFactor
	if lineFactor <= 0 {
		lineFactor = 1.2
	}
	ascentFactor := m.AscentFactor
	if ascentFactor <= 0 {
		ascentFactor = 0.8
	}
	ascent := size * ascentFactor
	return LineMetrics{
		Width:      m.cell(f) * float64(runewidth.StringWidth(text)),
		Height:     size,
		Ascent:     ascent,
		Descent:    size - ascent,
		LineHeight: size * lineFactor,
	}, nil
}

// WrapLines breaks text greedily at word boundaries to fit maxWidth.
func (m FixedMeasurer) WrapLines(text string, f Font, maxWidth float64) (Layout, error) {
	return wrapWithMeasure(text, maxWidth, func(s string) (LineMetrics, error) {
		return m.MeasureLine(s, f)
	})
}

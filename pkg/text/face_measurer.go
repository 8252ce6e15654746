package text

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/go-slate/slate/pkg/errors"
)

// FaceMeasurer measures text against real font data.
//
// Families are registered from TrueType/OpenType bytes with RegisterFont;
// faces are instantiated lazily per (family, size) and cached. The first
// registered family becomes the fallback for fonts that name no family.
type FaceMeasurer struct {
	mu          sync.RWMutex
	fonts       map[string]*opentype.Font
	faces       map[faceKey]font.Face
	defaultName string
}

type faceKey struct {
	family string
	size   float64
}

// NewFaceMeasurer creates an empty measurer with no registered fonts.
func NewFaceMeasurer() *FaceMeasurer {
	return &FaceMeasurer{
		fonts: make(map[string]*opentype.Font),
		faces: make(map[faceKey]font.Face),
	}
}

// RegisterFont registers a font family from TrueType or OpenType data.
func (m *FaceMeasurer) RegisterFont(name string, data []byte) error {
	if name == "" {
		return fmt.Errorf("font name required")
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		slateErr := &errors.SlateError{
			Op:   "text.RegisterFont",
			Kind: errors.KindFont,
			Err:  err,
		}
		errors.Report(slateErr)
		return slateErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fonts[name] = parsed
	if m.defaultName == "" {
		m.defaultName = name
	}
	return nil
}

// face resolves (and caches) a face for the given font reference.
func (m *FaceMeasurer) face(f Font) (font.Face, error) {
	family := f.Family
	size := f.EffectiveSize()

	m.mu.RLock()
	if family == "" {
		family = m.defaultName
	}
	if cached, ok := m.faces[faceKey{family, size}]; ok {
		m.mu.RUnlock()
		return cached, nil
	}
	parsed, ok := m.fonts[family]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("font family %q not registered", family)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.faces[faceKey{family, size}] = face
	m.mu.Unlock()
	return face, nil
}

// MeasureLine measures text as a single unwrapped line.
func (m *FaceMeasurer) MeasureLine(text string, f Font) (LineMetrics, error) {
	face, err := m.face(f)
	if err != nil {
		return LineMetrics{}, err
	}
	metrics := face.Metrics()
	ascent := fixedToFloat(metrics.Ascent)
	descent := fixedToFloat(metrics.Descent)
	lineHeight := fixedToFloat(metrics.Height)
	if lineHeight < ascent+descent {
		lineHeight = ascent + descent
	}
	return LineMetrics{
		Width:      fixedToFloat(font.MeasureString(face, text)),
		Height:     ascent + descent,
		Ascent:     ascent,
		Descent:    descent,
		LineHeight: lineHeight,
	}, nil
}

// WrapLines breaks text greedily at word boundaries to fit maxWidth.
func (m *FaceMeasurer) WrapLines(text string, f Font, maxWidth float64) (Layout, error) {
	return wrapWithMeasure(text, maxWidth, func(s string) (LineMetrics, error) {
		return m.MeasureLine(s, f)
	})
}

// fixedToFloat converts a 26.6 fixed-point value to float64 pixels.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

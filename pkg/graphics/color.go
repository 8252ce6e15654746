package graphics

import (
	"fmt"
	"strconv"
	"strings"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue, alpha bytes.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// Alpha returns the alpha channel (0-255).
func (c Color) Alpha() uint8 {
	return uint8(c >> 24)
}

// WithAlpha returns a copy of the color with the given alpha (0-255).
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// ParseColor parses "#RGB", "#RRGGBB", or "#AARRGGBB" hex notation.
// Colors without an alpha component parse as fully opaque.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		var expanded strings.Builder
		for _, r := range hex {
			expanded.WriteRune(r)
			expanded.WriteRune(r)
		}
		hex = expanded.String()
	}
	switch len(hex) {
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return Color(0xFF000000 | uint32(v)), nil
	case 8:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return Color(v), nil
	default:
		return 0, fmt.Errorf("invalid color %q: expected 3, 6 or 8 hex digits", s)
	}
}

// Common colors.
var (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
)

// Package testing provides test utilities for the Slate kernel: a draw
// command sink that records serialized ops, and assertions over the
// structural properties of recorded command streams.
package testing

import (
	"fmt"
	"math"

	"github.com/go-slate/slate/pkg/graphics"
	"github.com/go-slate/slate/pkg/text"
)

// DisplayOp represents a serialized draw command.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// RecordingSink implements render.Sink and records ops as DisplayOp values
// for inspection in tests. The zero value is ready to use.
type RecordingSink struct {
	ops []DisplayOp
}

// Ops returns the recorded operations in emission order.
func (s *RecordingSink) Ops() []DisplayOp {
	return s.ops
}

// Reset discards all recorded operations.
func (s *RecordingSink) Reset() {
	s.ops = s.ops[:0]
}

// Count returns the number of recorded ops with the given name.
func (s *RecordingSink) Count(op string) int {
	n := 0
	for _, recorded := range s.ops {
		if recorded.Op == op {
			n++
		}
	}
	return n
}

// Filter returns the recorded ops with the given name, in order.
func (s *RecordingSink) Filter(op string) []DisplayOp {
	var out []DisplayOp
	for _, recorded := range s.ops {
		if recorded.Op == op {
			out = append(out, recorded)
		}
	}
	return out
}

func (s *RecordingSink) FillRect(rect graphics.Rect, color graphics.Color, cornerRadius float64) {
	s.ops = append(s.ops, DisplayOp{
		Op:     "fillRect",
		Params: sortedMap("rect", serializeRect(rect), "color", serializeColor(color), "cornerRadius", round2(cornerRadius)),
	})
}

func (s *RecordingSink) StrokeRect(rect graphics.Rect, color graphics.Color, lineWidth, cornerRadius float64) {
	s.ops = append(s.ops, DisplayOp{
		Op:     "strokeRect",
		Params: sortedMap("rect", serializeRect(rect), "color", serializeColor(color), "lineWidth", round2(lineWidth), "cornerRadius", round2(cornerRadius)),
	})
}

func (s *RecordingSink) FillText(content string, x, y float64, font text.Font, color graphics.Color) {
	s.ops = append(s.ops, DisplayOp{
		Op:     "fillText",
		Params: sortedMap("text", content, "x", round2(x), "y", round2(y), "family", font.Family, "size", round2(font.EffectiveSize()), "color", serializeColor(color)),
	})
}

func (s *RecordingSink) PushClip(rect graphics.Rect) {
	s.ops = append(s.ops, DisplayOp{
		Op:     "pushClip",
		Params: sortedMap("rect", serializeRect(rect)),
	})
}

func (s *RecordingSink) PopClip() {
	s.ops = append(s.ops, DisplayOp{Op: "popClip"})
}

func (s *RecordingSink) PushTranslate(dx, dy float64) {
	s.ops = append(s.ops, DisplayOp{
		Op:     "pushTranslate",
		Params: sortedMap("dx", round2(dx), "dy", round2(dy)),
	})
}

func (s *RecordingSink) PopTransform() {
	s.ops = append(s.ops, DisplayOp{Op: "popTransform"})
}

func (s *RecordingSink) Save() {
	s.ops = append(s.ops, DisplayOp{Op: "save"})
}

func (s *RecordingSink) Restore() {
	s.ops = append(s.ops, DisplayOp{Op: "restore"})
}

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}

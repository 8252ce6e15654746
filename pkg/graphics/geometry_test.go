package graphics

import "testing"

func TestRectContains_EdgeInclusive(t *testing.T) {
	r := RectFromLTWH(10, 20, 30, 40) // right=40, bottom=60

	tests := []struct {
		name  string
		point Offset
		want  bool
	}{
		{"center", Offset{X: 25, Y: 40}, true},
		{"top-left corner", Offset{X: 10, Y: 20}, true},
		{"right edge", Offset{X: 40, Y: 40}, true},
		{"bottom edge", Offset{X: 25, Y: 60}, true},
		{"bottom-right corner", Offset{X: 40, Y: 60}, true},
		{"just outside right", Offset{X: 40.001, Y: 40}, false},
		{"just outside bottom", Offset{X: 25, Y: 60.001}, false},
		{"left of rect", Offset{X: 9.999, Y: 40}, false},
		{"above rect", Offset{X: 25, Y: 19.999}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.point); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestRectDimensions(t *testing.T) {
	r := RectFromLTWH(5, 10, 20, 30)
	if r.Width() != 20 || r.Height() != 30 {
		t.Errorf("got %vx%v, want 20x30", r.Width(), r.Height())
	}
	if c := r.Center(); c.X != 15 || c.Y != 25 {
		t.Errorf("Center() = %v, want {15 25}", c)
	}
}

func TestRectIntersect(t *testing.T) {
	a := RectFromLTWH(0, 0, 10, 10)
	b := RectFromLTWH(5, 5, 10, 10)
	got := a.Intersect(b)
	want := Rect{Left: 5, Top: 5, Right: 10, Bottom: 10}
	if got != want {
		t.Errorf("Intersect = %+v, want %+v", got, want)
	}

	c := RectFromLTWH(20, 20, 5, 5)
	if !a.Intersect(c).IsEmpty() {
		t.Error("expected empty intersection for disjoint rects")
	}
}

func TestRectTranslate(t *testing.T) {
	r := RectFromLTWH(1, 2, 3, 4).Translate(10, 20)
	want := Rect{Left: 11, Top: 22, Right: 14, Bottom: 26}
	if r != want {
		t.Errorf("Translate = %+v, want %+v", r, want)
	}
}

func TestEdgeInsets(t *testing.T) {
	e := EdgeInsetsOnly(1, 2, 3, 4)
	if e.Horizontal() != 4 || e.Vertical() != 6 {
		t.Errorf("Horizontal=%v Vertical=%v, want 4, 6", e.Horizontal(), e.Vertical())
	}
	if got := e.Inflate(Size{Width: 10, Height: 10}); got.Width != 14 || got.Height != 16 {
		t.Errorf("Inflate = %+v", got)
	}
	deflated := e.Deflate(RectFromLTWH(0, 0, 100, 100))
	want := Rect{Left: 1, Top: 2, Right: 97, Bottom: 96}
	if deflated != want {
		t.Errorf("Deflate = %+v, want %+v", deflated, want)
	}
	if !(EdgeInsets{}).IsZero() || EdgeInsetsAll(1).IsZero() {
		t.Error("IsZero misreported")
	}
}

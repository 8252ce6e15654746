package graphics

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#FF0000", ColorRed, false},
		{"#ff0000", ColorRed, false},
		{"FF0000", ColorRed, false},
		{"#F00", ColorRed, false},
		{"#80FF0000", Color(0x80FF0000), false},
		{" #0000FF ", ColorBlue, false},
		{"#GG0000", 0, true},
		{"#12345", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseColor(%q) = %#08x, want %#08x", tt.in, uint32(got), uint32(tt.want))
		}
	}
}

func TestColorChannels(t *testing.T) {
	c := RGBA(0x12, 0x34, 0x56, 0x78)
	if c != Color(0x78123456) {
		t.Fatalf("RGBA = %#08x", uint32(c))
	}
	if c.Alpha() != 0x78 {
		t.Errorf("Alpha = %#02x", c.Alpha())
	}
	if got := c.WithAlpha(0xFF); got != Color(0xFF123456) {
		t.Errorf("WithAlpha = %#08x", uint32(got))
	}
	r, g, b, a := ColorWhite.RGBAF()
	if r != 1 || g != 1 || b != 1 || a != 1 {
		t.Errorf("RGBAF(white) = %v %v %v %v", r, g, b, a)
	}
}

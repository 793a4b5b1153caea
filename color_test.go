package femtogl

import "testing"

func TestRGB565PackUnpack(t *testing.T) {
	cases := []struct {
		r, g, b uint8
		want    Color
	}{
		{0, 0, 0, 0x0000},
		{255, 255, 255, 0xFFFF},
		{255, 0, 0, 0xF800},
		{0, 255, 0, 0x07E0},
		{0, 0, 255, 0x001F},
	}
	for _, tc := range cases {
		if got := RGB565(tc.r, tc.g, tc.b); got != tc.want {
			t.Fatalf("RGB565(%d,%d,%d) = %04x, want %04x", tc.r, tc.g, tc.b, got, tc.want)
		}
	}

	r, g, b := Color(0xFFFF).RGBA()
	if r != 255 || g != 255 || b != 255 {
		t.Fatalf("white unpacked to %d,%d,%d", r, g, b)
	}
}

func TestColorScale(t *testing.T) {
	if got := ColorWhite.Scale(0); got != ColorBlack {
		t.Fatalf("scale 0 = %04x", got)
	}
	if got := ColorWhite.Scale(1); got != ColorWhite {
		t.Fatalf("scale 1 = %04x", got)
	}
	half := ColorWhite.Scale(0.5)
	r, g, b := half.RGBA()
	if r < 100 || r > 160 || g < 100 || g > 160 || b < 100 || b > 160 {
		t.Fatalf("half white = %d,%d,%d", r, g, b)
	}
}

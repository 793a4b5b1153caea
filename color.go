package femtogl

// Color is a 16bpp RGB565 pixel value: rrrrrggggggbbbbb.
//
// The rasterizer treats it as opaque and passes it through unchanged; only
// the concrete targets interpret the bit layout.
type Color uint16

const (
	ColorBlack Color = 0x0000
	ColorWhite Color = 0xFFFF
)

// RGB565 packs 8-bit channels into a Color.
func RGB565(r, g, b uint8) Color {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return Color((rr << 11) | (gg << 5) | bb)
}

// RGBA expands a Color back to 8-bit channels.
func (c Color) RGBA() (r, g, b uint8) {
	rr := (uint16(c) >> 11) & 0x1F
	gg := (uint16(c) >> 5) & 0x3F
	bb := uint16(c) & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// Scale multiplies each channel by t in [0,1], for flat directional shading.
func (c Color) Scale(t float32) Color {
	if t <= 0 {
		return ColorBlack
	}
	if t >= 1 {
		return c
	}
	r, g, b := c.RGBA()
	return RGB565(
		uint8(float32(r)*t),
		uint8(float32(g)*t),
		uint8(float32(b)*t),
	)
}

package femtogl

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// DisplayerTarget adapts any tinygo display driver to the Target interface,
// so the rasterizer can draw straight onto ST7789/ILI9341-class panels.
//
// Drivers buffer SetPixel writes internally; call Flush once per frame to
// push the buffer to the panel and observe device errors.
type DisplayerTarget struct {
	D drivers.Displayer
}

func (t *DisplayerTarget) Size() (w, h int) {
	if t.D == nil {
		return 0, 0
	}
	x, y := t.D.Size()
	return int(x), int(y)
}

func (t *DisplayerTarget) DrawPixels(px []Pixel) error {
	if t.D == nil {
		return ErrTargetUnavailable
	}
	for _, p := range px {
		if p.P.X < -32768 || p.P.X > 32767 || p.P.Y < -32768 || p.P.Y > 32767 {
			continue
		}
		r, g, b := p.C.RGBA()
		t.D.SetPixel(int16(p.P.X), int16(p.P.Y), color.RGBA{R: r, G: g, B: b, A: 0xFF})
	}
	return nil
}

// Flush presents buffered pixels on the device.
func (t *DisplayerTarget) Flush() error {
	if t.D == nil {
		return ErrTargetUnavailable
	}
	return t.D.Display()
}

package femtogl

import "errors"

// ErrTargetUnavailable is the device-level failure an in-memory target
// reports when its backing buffer is missing or too small for its layout.
var ErrTargetUnavailable = errors.New("femtogl: target buffer unavailable")

// RGB565Target renders into a raw little-endian RGB565 framebuffer.
//
// Callers provide the backing buffer and layout; the target needs nothing
// else. Pixels outside the W×H rectangle are ignored, which is the clipping
// contract points and lines rely on.
type RGB565Target struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

func (t *RGB565Target) Size() (w, h int) { return t.W, t.H }

func (t *RGB565Target) ok() bool {
	return t.Buf != nil && t.Stride >= t.W*2 && t.W > 0 && t.H > 0 &&
		len(t.Buf) >= t.Stride*(t.H-1)+t.W*2
}

// DrawPixels writes a batch into the buffer. Out-of-rect coordinates are
// skipped; a missing or undersized buffer fails the whole batch.
func (t *RGB565Target) DrawPixels(px []Pixel) error {
	if !t.ok() {
		return ErrTargetUnavailable
	}
	for _, p := range px {
		if p.P.X < 0 || p.P.Y < 0 || p.P.X >= t.W || p.P.Y >= t.H {
			continue
		}
		off := p.P.Y*t.Stride + p.P.X*2
		t.Buf[off] = byte(p.C)
		t.Buf[off+1] = byte(p.C >> 8)
	}
	return nil
}

// Clear fills the whole rectangle with one color.
func (t *RGB565Target) Clear(c Color) error {
	if !t.ok() {
		return ErrTargetUnavailable
	}
	lo := byte(c)
	hi := byte(c >> 8)
	for y := 0; y < t.H; y++ {
		row := y * t.Stride
		for x := 0; x < t.W; x++ {
			t.Buf[row+x*2] = lo
			t.Buf[row+x*2+1] = hi
		}
	}
	return nil
}

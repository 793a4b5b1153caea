package femtogl

import (
	"errors"
	"image/color"
	"testing"
)

func TestRGB565TargetWritesLittleEndian(t *testing.T) {
	buf := make([]byte, 4*2*2)
	rt := &RGB565Target{Buf: buf, Stride: 8, W: 4, H: 2}

	if err := rt.DrawPixels([]Pixel{{P: Point{1, 1}, C: 0xABCD}}); err != nil {
		t.Fatalf("DrawPixels: %v", err)
	}
	off := 1*8 + 1*2
	if buf[off] != 0xCD || buf[off+1] != 0xAB {
		t.Fatalf("bytes at %d = %02x %02x, want CD AB", off, buf[off], buf[off+1])
	}
}

func TestRGB565TargetClipsOutOfRect(t *testing.T) {
	buf := make([]byte, 4*2*2)
	rt := &RGB565Target{Buf: buf, Stride: 8, W: 4, H: 2}

	px := []Pixel{
		{P: Point{-1, 0}, C: 0xFFFF},
		{P: Point{4, 0}, C: 0xFFFF},
		{P: Point{0, 2}, C: 0xFFFF},
		{P: Point{0, -1}, C: 0xFFFF},
	}
	if err := rt.DrawPixels(px); err != nil {
		t.Fatalf("DrawPixels: %v", err)
	}
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d modified by out-of-rect write", i)
		}
	}
}

func TestRGB565TargetUnavailable(t *testing.T) {
	cases := []struct {
		name string
		rt   RGB565Target
	}{
		{"nil buffer", RGB565Target{Stride: 8, W: 4, H: 2}},
		{"short buffer", RGB565Target{Buf: make([]byte, 4), Stride: 8, W: 4, H: 2}},
		{"zero size", RGB565Target{Buf: make([]byte, 16)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.rt.DrawPixels([]Pixel{{P: Point{0, 0}}})
			if !errors.Is(err, ErrTargetUnavailable) {
				t.Fatalf("got %v, want ErrTargetUnavailable", err)
			}
		})
	}
}

func TestRGB565TargetClear(t *testing.T) {
	buf := make([]byte, 3*2*2)
	rt := &RGB565Target{Buf: buf, Stride: 6, W: 3, H: 2}
	if err := rt.Clear(0x1234); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	for i := 0; i < len(buf); i += 2 {
		if buf[i] != 0x34 || buf[i+1] != 0x12 {
			t.Fatalf("pixel at byte %d = %02x %02x", i, buf[i], buf[i+1])
		}
	}
}

type fakeDisplayer struct {
	w, h   int16
	pixels map[[2]int16]color.RGBA
	dispN  int
	err    error
}

func (d *fakeDisplayer) Size() (int16, int16) { return d.w, d.h }
func (d *fakeDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.pixels == nil {
		d.pixels = map[[2]int16]color.RGBA{}
	}
	d.pixels[[2]int16{x, y}] = c
}
func (d *fakeDisplayer) Display() error {
	d.dispN++
	return d.err
}

func TestDisplayerTarget(t *testing.T) {
	fd := &fakeDisplayer{w: 10, h: 8}
	dt := &DisplayerTarget{D: fd}

	if w, h := dt.Size(); w != 10 || h != 8 {
		t.Fatalf("Size() = %d,%d", w, h)
	}
	if err := dt.DrawPixels([]Pixel{{P: Point{2, 3}, C: RGB565(255, 0, 0)}}); err != nil {
		t.Fatalf("DrawPixels: %v", err)
	}
	c, ok := fd.pixels[[2]int16{2, 3}]
	if !ok || c.R < 0xF0 || c.G != 0 {
		t.Fatalf("pixel = %+v, ok=%v", c, ok)
	}
	if err := dt.Flush(); err != nil || fd.dispN != 1 {
		t.Fatalf("Flush: err=%v dispN=%d", err, fd.dispN)
	}
}

func TestDisplayerTargetFlushError(t *testing.T) {
	devErr := errors.New("spi timeout")
	dt := &DisplayerTarget{D: &fakeDisplayer{w: 4, h: 4, err: devErr}}
	if err := dt.Flush(); !errors.Is(err, devErr) {
		t.Fatalf("got %v, want device error", err)
	}
}

func TestDisplayerTargetNilDevice(t *testing.T) {
	dt := &DisplayerTarget{}
	if err := dt.DrawPixels(nil); !errors.Is(err, ErrTargetUnavailable) {
		t.Fatalf("got %v, want ErrTargetUnavailable", err)
	}
}

package hal

import "sync"

// HostFramebuffer is an in-memory RGB565 framebuffer for the desktop backend
// and for tests. The mutex only guards against the window's present loop
// reading while the render goroutine writes; the draw path itself is
// single-threaded.
type HostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

func NewHostFramebuffer(width, height int) *HostFramebuffer {
	stride := width * 2
	return &HostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *HostFramebuffer) Width() int          { return f.width }
func (f *HostFramebuffer) Height() int         { return f.height }
func (f *HostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *HostFramebuffer) StrideBytes() int    { return f.stride }
func (f *HostFramebuffer) Buffer() []byte      { return f.buf }
func (f *HostFramebuffer) Present() error      { return nil }

func (f *HostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// snapshotRGBA expands the RGB565 contents into an RGBA pixel slice under
// the lock, so the present loop never observes a half-written frame and
// needs no intermediate 565 copy.
func (f *HostFramebuffer) snapshotRGBA(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := 0; i+1 < len(f.buf) && (i/2)*4+3 < len(dst); i += 2 {
		r, g, b := rgb888From565(uint16(f.buf[i]) | uint16(f.buf[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = g
		dst[j+2] = b
		dst[j+3] = 0xFF
	}
}

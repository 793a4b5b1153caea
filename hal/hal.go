// Package hal abstracts the pixel-output device and host-side diagnostics.
//
// The core rasterizer never touches this package directly; it draws through
// the femtogl.Target capability. hal provides concrete framebuffers behind
// that capability plus a desktop window backend for development.
package hal

import "errors"

// Logger writes newline-delimited diagnostic lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNoFramebuffer = errors.New("hal: framebuffer unavailable")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// femtoview is the desktop demo for the femtogl rasterizer: it spins a cube
// in a host window, rendering through the same RGB565 path an embedded
// display would use.
package main

import (
	"flag"
	"fmt"
	"os"

	"femtogl"
	"femtogl/hal"
	"femtogl/internal/buildinfo"
)

func main() {
	var (
		width   int
		height  int
		mode    string
		fpsOnly bool
		version bool
	)
	flag.IntVar(&width, "width", 320, "Framebuffer width in pixels.")
	flag.IntVar(&height, "height", 240, "Framebuffer height in pixels.")
	flag.StringVar(&mode, "mode", "lines", "Render mode: points, lines, solid, lit.")
	flag.BoolVar(&fpsOnly, "fps-only", false, "Overlay only the frame rate, not per-stage timings.")
	flag.BoolVar(&version, "version", false, "Print version and exit.")
	flag.Parse()

	if version {
		fmt.Println("femtoview", buildinfo.Short())
		return
	}

	renderMode, err := parseMode(mode)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if width <= 0 || height <= 0 {
		fmt.Fprintln(os.Stderr, "femtoview: width and height must be positive")
		os.Exit(2)
	}

	log := hal.NewStderrLogger()
	log.WriteLineString(fmt.Sprintf("femtoview %s: %dx%d rgb565, mode %s", buildinfo.Short(), width, height, mode))

	fb := hal.NewHostFramebuffer(width, height)
	v, err := newViewer(fb, renderMode, fpsOnly)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := hal.RunWindow("femtoview", fb, v.frame); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseMode(s string) (femtogl.RenderMode, error) {
	switch s {
	case "points":
		return femtogl.ModePoints, nil
	case "lines":
		return femtogl.ModeLines, nil
	case "solid":
		return femtogl.ModeSolid, nil
	case "lit":
		return femtogl.ModeSolidLightDir, nil
	}
	return 0, fmt.Errorf("femtoview: unknown mode %q", s)
}

package femtogl

import (
	"image/color"
	"strings"

	"tinygo.org/x/tinyfont"
)

// Overlay draws small diagnostic text (typically PerfCounter output) on top
// of a rendered frame.
type Overlay struct {
	Font       tinyfont.Fonter
	LineHeight int
	Color      Color
}

// NewOverlay returns an overlay with the compact TomThumb font.
func NewOverlay() *Overlay {
	return &Overlay{
		Font:       &tinyfont.TomThumb,
		LineHeight: 6,
		Color:      ColorWhite,
	}
}

// DrawText writes multi-line text with its top-left corner at (x, y).
// Device errors from the target abort the remaining lines.
func (o *Overlay) DrawText(t Target, x, y int, text string) error {
	d := &overlayDisplayer{t: t}
	r, g, b := o.Color.RGBA()
	c := color.RGBA{R: r, G: g, B: b, A: 0xFF}

	line := y
	for _, s := range strings.Split(text, "\n") {
		if s != "" {
			tinyfont.WriteLine(d, o.Font, int16(x), int16(line+o.LineHeight), s, c)
			if d.err != nil {
				return d.err
			}
		}
		line += o.LineHeight
	}
	return nil
}

// overlayDisplayer adapts a Target to the displayer interface tinyfont
// renders through, remembering the first device error.
type overlayDisplayer struct {
	t   Target
	err error
}

func (d *overlayDisplayer) Size() (x, y int16) {
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d *overlayDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.err != nil {
		return
	}
	px := [1]Pixel{{P: Point{X: int(x), Y: int(y)}, C: RGB565(c.R, c.G, c.B)}}
	d.err = d.t.DrawPixels(px[:])
}

func (d *overlayDisplayer) Display() error { return d.err }

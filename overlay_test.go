package femtogl

import (
	"errors"
	"testing"
)

func TestOverlayDrawsPixels(t *testing.T) {
	rt := &recordTarget{t: t, w: 64, h: 32}
	o := NewOverlay()
	if err := o.DrawText(rt, 2, 2, "fps: 60\ntotal: 16ms"); err != nil {
		t.Fatalf("DrawText: %v", err)
	}
	if len(rt.px) == 0 {
		t.Fatalf("overlay drew nothing")
	}
	for _, p := range rt.px {
		if p.C != ColorWhite {
			t.Fatalf("overlay pixel color %04x, want white", p.C)
		}
	}
}

func TestOverlayPropagatesTargetError(t *testing.T) {
	devErr := errors.New("device gone")
	rt := &recordTarget{t: t, w: 64, h: 32, err: devErr}
	o := NewOverlay()
	if err := o.DrawText(rt, 0, 0, "x"); !errors.Is(err, devErr) {
		t.Fatalf("got %v, want device error", err)
	}
}

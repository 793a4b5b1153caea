package femtogl

// Target is the framebuffer sink a Draw call renders into.
//
// The target owns the clipping policy for individual pixels: DrawPixels must
// ignore coordinates outside its rectangle rather than fail. A returned error
// means the device rejected the batch (for example the display is gone); the
// in-progress primitive is abandoned and the error propagates to the caller,
// which owns any retry policy.
//
// A target is exclusively borrowed for the duration of one Draw call; no two
// draws may run against the same target concurrently.
type Target interface {
	Size() (w, h int)
	DrawPixels(px []Pixel) error
}

package femtogl

import (
	"fmt"
	"time"
)

// PerfCounter records per-frame timing text for diagnostics. It is not
// required for rendering; the scene loop calls StartFrame once per frame,
// Checkpoint after each stage, and EndFrame to finalize the summary. Text
// always returns the previous completed frame so a half-built frame is
// never shown.
type PerfCounter struct {
	// Clock returns monotonic microseconds. Overridable in tests.
	Clock func() uint64

	frameCount uint64
	onlyFPS    bool

	startUS uint64
	lastUS  uint64

	text []byte
	last []byte
}

func NewPerfCounter() *PerfCounter {
	start := time.Now()
	p := &PerfCounter{
		Clock: func() uint64 { return uint64(time.Since(start).Microseconds()) },
	}
	now := p.Clock()
	p.startUS = now
	p.lastUS = now
	return p
}

// SetOnlyFPS drops per-checkpoint lines and reports just the frame rate.
func (p *PerfCounter) SetOnlyFPS(on bool) { p.onlyFPS = on }

// FrameTime returns microseconds elapsed since StartFrame.
func (p *PerfCounter) FrameTime() uint64 {
	now := p.Clock()
	if now < p.startUS {
		return 0
	}
	return now - p.startUS
}

// StartFrame marks the beginning of a frame and resets the working text.
func (p *PerfCounter) StartFrame() {
	p.frameCount++
	p.text = p.text[:0]
	p.startUS = p.Clock()
	p.lastUS = p.startUS
}

// Checkpoint records the time since the previous checkpoint (or frame start)
// under the given label.
func (p *PerfCounter) Checkpoint(label string) {
	if p.onlyFPS {
		return
	}
	now := p.Clock()
	var d uint64
	if now > p.lastUS {
		d = now - p.lastUS
	}
	p.text = fmt.Appendf(p.text, "%s: %dus\n", label, d)
	p.lastUS = now
}

// EndFrame appends the frame total and fps and publishes the summary.
func (p *PerfCounter) EndFrame() {
	total := p.FrameTime()
	var fps uint64
	if total > 0 {
		fps = 1_000_000 / total
	}
	if p.onlyFPS {
		p.text = fmt.Appendf(p.text[:0], "fps: %d\n", fps)
	} else {
		p.text = fmt.Appendf(p.text, "total: %dus\nfps: %d\n", total, fps)
	}
	p.last = append(p.last[:0], p.text...)
}

// Discard throws away the current frame's measurements without publishing.
func (p *PerfCounter) Discard() {
	p.text = p.text[:0]
}

// Text returns the last completed frame's summary.
func (p *PerfCounter) Text() string { return string(p.last) }

// Frames returns the number of frames started.
func (p *PerfCounter) Frames() uint64 { return p.frameCount }

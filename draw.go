package femtogl

import "fmt"

// MaxRowWidth bounds one scanline's pixel batch. It is sized for the widest
// display class this library targets (320px panels); narrower targets simply
// never fill it. A triangle span wider than this is ErrRowCapacity.
const MaxRowWidth = 320

// Draw rasterizes one primitive into the target.
//
// Points and lines are written through the target's own clipping; triangles
// are culled and clamped here before any pixel is emitted. The first device
// error aborts the primitive.
func Draw(t Target, p Primitive) error {
	switch p := p.(type) {
	case ColoredPoint:
		px := [1]Pixel{{P: p.P, C: p.Color}}
		return t.DrawPixels(px[:])
	case Line:
		return drawLine(t, p.A, p.B, p.Color)
	case ColoredTriangle:
		return fillTriangle(t, p.V, p.Color)
	}
	return nil
}

// drawLine walks the Bresenham line from a to b, both ends inclusive, and
// flushes pixels in bounded batches so arbitrarily long lines stay within
// the fixed buffer.
func drawLine(t Target, a, b Point, c Color) error {
	var buf [MaxRowWidth]Pixel
	n := 0

	dx := absInt(b.X - a.X)
	sx := -1
	if a.X < b.X {
		sx = 1
	}
	dy := -absInt(b.Y - a.Y)
	sy := -1
	if a.Y < b.Y {
		sy = 1
	}
	err := dx + dy

	x, y := a.X, a.Y
	for {
		buf[n] = Pixel{P: Point{X: x, Y: y}, C: c}
		n++
		if n == len(buf) {
			if werr := t.DrawPixels(buf[:n]); werr != nil {
				return werr
			}
			n = 0
		}
		if x == b.X && y == b.Y {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
	if n > 0 {
		return t.DrawPixels(buf[:n])
	}
	return nil
}

// edgeInterp walks one triangle edge a scanline at a time: an integer step
// of dx/dy per row plus an accumulated remainder, so no per-pixel division.
// x holds the boundary coordinate for the current row.
type edgeInterp struct {
	x   int
	dx  int
	dy  int
	err int
}

func newEdgeInterp(from, to Point) edgeInterp {
	return edgeInterp{x: from.X, dx: to.X - from.X, dy: to.Y - from.Y}
}

func (e *edgeInterp) step() {
	e.x += e.dx / e.dy
	e.err += e.dx % e.dy
	if e.err >= e.dy {
		e.x++
		e.err -= e.dy
	}
}

// fillTriangle scan-converts a triangle: sort by y, cull back faces and
// offscreen bounds, then fill the two halves split at the middle vertex.
// The split row y = p2.Y belongs to the bottom half only.
func fillTriangle(t Target, v [3]Point, c Color) error {
	p1, p2, p3 := sortByY(v)

	// Winding convention: y-sorted front faces have positive signed area.
	// Zero area is degenerate; both are discarded.
	area := (p2.X-p1.X)*(p3.Y-p1.Y) - (p2.Y-p1.Y)*(p3.X-p1.X)
	if area <= 0 {
		return nil
	}

	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return nil
	}

	minX := min3(p1.X, p2.X, p3.X)
	maxX := max3(p1.X, p2.X, p3.X)
	if maxX < 0 || minX >= w || p3.Y < 0 || p1.Y >= h {
		return nil
	}

	var row [MaxRowWidth]Pixel

	// Top half: rows [p1.Y, p2.Y) against the long edge p1→p3.
	if p2.Y-p1.Y > 0 {
		a := newEdgeInterp(p1, p2)
		b := newEdgeInterp(p1, p3)
		for y := p1.Y; y < p2.Y; y++ {
			ax, bx := a.x, b.x
			a.step()
			b.step()
			if err := emitSpan(t, row[:], ax, bx, y, w, h, c); err != nil {
				return err
			}
		}
	}

	// Bottom half: rows [p2.Y, p3.Y]. The long-edge interpolator is advanced
	// to the split row first so the two halves meet without gap or overlap.
	if p3.Y-p2.Y > 0 {
		a := newEdgeInterp(p2, p3)
		b := newEdgeInterp(p1, p3)
		for i := p1.Y; i < p2.Y; i++ {
			b.step()
		}
		for y := p2.Y; y <= p3.Y; y++ {
			ax, bx := a.x, b.x
			a.step()
			b.step()
			if err := emitSpan(t, row[:], ax, bx, y, w, h, c); err != nil {
				return err
			}
		}
	}
	return nil
}

// emitSpan writes one horizontal run [min(ax,bx), max(ax,bx)] at row y,
// clamped to the target width, as a single batch.
func emitSpan(t Target, row []Pixel, ax, bx, y, w, h int, c Color) error {
	if y < 0 || y >= h {
		return nil
	}
	start, end := ax, bx
	if start > end {
		start, end = end, start
	}
	if end < 0 || start >= w {
		return nil
	}
	if start < 0 {
		start = 0
	}
	if end > w-1 {
		end = w - 1
	}

	n := end - start + 1
	if n > len(row) {
		return fmt.Errorf("%w: span of %d pixels at row %d", ErrRowCapacity, n, y)
	}
	for i := 0; i < n; i++ {
		row[i] = Pixel{P: Point{X: start + i, Y: y}, C: c}
	}
	return t.DrawPixels(row[:n])
}

// sortByY orders three points by ascending y, preserving input order on ties.
func sortByY(v [3]Point) (Point, Point, Point) {
	a, b, c := v[0], v[1], v[2]
	if b.Y < a.Y {
		a, b = b, a
	}
	if c.Y < b.Y {
		b, c = c, b
		if b.Y < a.Y {
			a, b = b, a
		}
	}
	return a, b, c
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min3(a, b, c int) int {
	if a > b {
		a = b
	}
	if a > c {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if a < b {
		a = b
	}
	if a < c {
		a = c
	}
	return a
}

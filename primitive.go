package femtogl

// Point is an integer screen coordinate. The origin is the top-left corner
// of the target; y grows downward.
type Point struct {
	X, Y int
}

// Pixel is one colored pixel write.
type Pixel struct {
	P Point
	C Color
}

// Primitive is the closed set of shapes the rasterizer understands. A scene
// loop projects mesh geometry into primitives each frame; primitives have no
// identity beyond one Draw call.
//
// The set is sealed: ColoredPoint, Line, and ColoredTriangle.
type Primitive interface {
	primitive()
}

// ColoredPoint is a single pixel.
type ColoredPoint struct {
	P     Point
	Color Color
}

// Line is a straight 2-point segment, both endpoints inclusive.
type Line struct {
	A, B  Point
	Color Color
}

// ColoredTriangle is a filled flat-colored triangle. Front faces must wind
// so that the signed area of the y-sorted vertices is positive; the mirrored
// winding is culled.
type ColoredTriangle struct {
	V     [3]Point
	Color Color
}

func (ColoredPoint) primitive()    {}
func (Line) primitive()            {}
func (ColoredTriangle) primitive() {}

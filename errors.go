package femtogl

import "errors"

// Structural errors. These indicate programmer mistakes discoverable during
// development and fail the operation outright; they are never degraded into
// partial output.
var (
	// ErrInvalidGeometry reports a geometry invariant violation: empty
	// vertices, an out-of-range face or line index, or a color table whose
	// length does not match the vertex count.
	ErrInvalidGeometry = errors.New("femtogl: invalid geometry")

	// ErrEdgeCapacity reports that wireframe edge extraction produced more
	// unique edges than MaxEdges.
	ErrEdgeCapacity = errors.New("femtogl: edge capacity exceeded")

	// ErrRowCapacity reports a triangle scanline span wider than MaxRowWidth.
	ErrRowCapacity = errors.New("femtogl: row capacity exceeded")
)

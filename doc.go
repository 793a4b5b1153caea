// Package femtogl is a minimal software 3D rasterizer for memory-constrained
// RGB565 displays.
//
// The pipeline is deliberately small and allocation-free in the draw path:
//
//	Geometry → Mesh transform → (caller-side projection) → Primitive → Target.
//
// The core rasterizes three primitives (colored points, lines, and filled
// triangles) in already-projected integer screen coordinates. Projection,
// depth sorting, and anti-aliasing are out of scope; callers project 3D
// vertices to 2D before building primitives.
//
// Working buffers are fixed-capacity (MaxRowWidth, MaxEdges) so a draw call
// has a hard memory ceiling regardless of input. Exceeding a ceiling is a
// reported error, never silent truncation.
//
// Output goes through the Target interface: a bounding-size query plus a
// batched pixel write. RGB565Target renders into a raw framebuffer slice;
// DisplayerTarget adapts any tinygo.org/x/drivers display.
package femtogl

package main

import (
	"math"

	"femtogl"
	"femtogl/hal"
)

// spinRate is the per-tick Euler delta applied to the demo mesh. The three
// axes use different rates so the silhouette never settles into a cycle.
var spinRate = [3]float32{0.004, 0.011, 0.019}

// viewer owns the demo scene: one mesh orbited by nothing, a fixed camera at
// the origin looking down -Z, and the perf overlay.
type viewer struct {
	target  *femtogl.RGB565Target
	mesh    *femtogl.Mesh
	perf    *femtogl.PerfCounter
	overlay *femtogl.Overlay

	edges [][2]int
	proj  []femtogl.Point
	focal float32
	cx    int
	cy    int
}

func newViewer(fb *hal.HostFramebuffer, mode femtogl.RenderMode, fpsOnly bool) (*viewer, error) {
	mesh, err := femtogl.NewMesh(cubeGeometry())
	if err != nil {
		return nil, err
	}
	mesh.Mode = mode
	mesh.LightDir = femtogl.Normalize(femtogl.V3(0.3, 0.5, 0.8))
	mesh.SetPosition(0, 0, -5)

	edges := mesh.Geometry.Lines
	if len(edges) == 0 {
		if edges, err = femtogl.EdgesFromFaces(mesh.Geometry.Faces); err != nil {
			return nil, err
		}
	}

	perf := femtogl.NewPerfCounter()
	perf.SetOnlyFPS(fpsOnly)

	w, h := fb.Width(), fb.Height()
	focal := float32(w)
	if h < w {
		focal = float32(h)
	}

	return &viewer{
		target: &femtogl.RGB565Target{
			Buf:    fb.Buffer(),
			Stride: fb.StrideBytes(),
			W:      w,
			H:      h,
		},
		mesh:    mesh,
		perf:    perf,
		overlay: femtogl.NewOverlay(),
		edges:   edges,
		proj:    make([]femtogl.Point, len(mesh.Geometry.Vertices)),
		focal:   focal * 0.8,
		cx:      w / 2,
		cy:      h / 2,
	}, nil
}

// frame renders one tick: spin, project, clear, draw, overlay.
func (v *viewer) frame() error {
	v.perf.StartFrame()

	v.mesh.Rotate(spinRate[0], spinRate[1], spinRate[2])
	model := v.mesh.ModelMatrix()

	for i, vert := range v.mesh.Geometry.Vertices {
		p := model.MulPoint(femtogl.V3(vert[0], vert[1], vert[2]))
		v.proj[i] = v.project(p)
	}
	v.perf.Checkpoint("xform")

	if err := v.target.Clear(femtogl.ColorBlack); err != nil {
		return err
	}
	if err := v.emit(model); err != nil {
		return err
	}
	v.perf.Checkpoint("draw")

	if err := v.overlay.DrawText(v.target, 2, 2, v.perf.Text()); err != nil {
		return err
	}
	v.perf.EndFrame()
	return nil
}

func (v *viewer) emit(model femtogl.Mat4) error {
	g := &v.mesh.Geometry
	switch v.mesh.Mode {
	case femtogl.ModePoints:
		for _, p := range v.proj {
			if err := femtogl.Draw(v.target, femtogl.ColoredPoint{P: p, Color: v.mesh.Color}); err != nil {
				return err
			}
		}
	case femtogl.ModeLines:
		for _, e := range v.edges {
			l := femtogl.Line{A: v.proj[e[0]], B: v.proj[e[1]], Color: v.mesh.Color}
			if err := femtogl.Draw(v.target, l); err != nil {
				return err
			}
		}
	case femtogl.ModeSolid, femtogl.ModeSolidLightDir:
		for i, f := range g.Faces {
			// Flat shading takes the face's first vertex color.
			c := v.mesh.Color
			if len(g.Colors) > 0 {
				c = g.Colors[f[0]]
			}
			if v.mesh.Mode == femtogl.ModeSolidLightDir && i < len(g.Normals) {
				c = c.Scale(v.shade(model, g.Normals[i]))
			}
			tri := femtogl.ColoredTriangle{
				V:     [3]femtogl.Point{v.proj[f[0]], v.proj[f[1]], v.proj[f[2]]},
				Color: c,
			}
			if err := femtogl.Draw(v.target, tri); err != nil {
				return err
			}
		}
	}
	return nil
}

// shade returns the flat light intensity for a face normal under the mesh's
// directional light, with a small ambient floor so back faces stay visible.
func (v *viewer) shade(model femtogl.Mat4, n [3]float32) float32 {
	world := femtogl.Normalize(mulDir(model, femtogl.V3(n[0], n[1], n[2])))
	d := femtogl.Dot(world, v.mesh.LightDir)
	if d < 0 {
		d = 0
	}
	return 0.15 + 0.85*d
}

// mulDir applies only the linear part of m, ignoring translation.
func mulDir(m femtogl.Mat4, d femtogl.Vec3) femtogl.Vec3 {
	return femtogl.Vec3{
		X: m[0]*d.X + m[4]*d.Y + m[8]*d.Z,
		Y: m[1]*d.X + m[5]*d.Y + m[9]*d.Z,
		Z: m[2]*d.X + m[6]*d.Y + m[10]*d.Z,
	}
}

// project maps a world-space point to screen pixels with a simple pinhole
// camera at the origin looking down -Z. Points at or behind the camera plane
// are pushed far off-screen, where the rasterizer's culling discards them.
func (v *viewer) project(p femtogl.Vec3) femtogl.Point {
	if p.Z >= -0.01 {
		return femtogl.Point{X: -1 << 20, Y: -1 << 20}
	}
	inv := 1 / -p.Z
	return femtogl.Point{
		X: v.cx + round(v.focal*p.X*inv),
		Y: v.cy - round(v.focal*p.Y*inv),
	}
}

func round(f float32) int {
	return int(math.Floor(float64(f) + 0.5))
}

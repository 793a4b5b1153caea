package main

import (
	"fmt"
	"io"
	"strconv"

	"femtogl"
	"femtogl/stl"
)

// generate writes a Go source file holding the model as a static
// femtogl.Geometry. The output is validated against the geometry invariants
// before a single byte is written, so a generated file can always back a
// mesh.
func generate(w io.Writer, m *stl.Model, source, pkg, name string) error {
	vertices, faces, normals := m.Indexed()
	lines := wireframeEdges(faces)

	g := femtogl.Geometry{
		Vertices: vertices,
		Faces:    faces,
		Lines:    lines,
		Normals:  normals,
	}
	if err := g.Validate(); err != nil {
		return fmt.Errorf("generated geometry would be invalid: %w", err)
	}

	var ew errWriter
	ew.w = w

	ew.printf("// Code generated by femtogen from %s. DO NOT EDIT.\n\n", source)
	ew.printf("package %s\n\n", pkg)
	ew.printf("import \"femtogl\"\n\n")
	ew.printf("// %s: %d vertices, %d faces, %d edges.\n", name, len(vertices), len(faces), len(lines))
	ew.printf("var %s = femtogl.Geometry{\n", name)

	ew.printf("\tVertices: [][3]float32{\n")
	for _, v := range vertices {
		ew.printf("\t\t{%s, %s, %s},\n", f32(v[0]), f32(v[1]), f32(v[2]))
	}
	ew.printf("\t},\n")

	ew.printf("\tFaces: [][3]int{\n")
	for _, f := range faces {
		ew.printf("\t\t{%d, %d, %d},\n", f[0], f[1], f[2])
	}
	ew.printf("\t},\n")

	ew.printf("\tLines: [][2]int{\n")
	for _, l := range lines {
		ew.printf("\t\t{%d, %d},\n", l[0], l[1])
	}
	ew.printf("\t},\n")

	ew.printf("\tNormals: [][3]float32{\n")
	for _, n := range normals {
		ew.printf("\t\t{%s, %s, %s},\n", f32(n[0]), f32(n[1]), f32(n[2]))
	}
	ew.printf("\t},\n")

	ew.printf("}\n")
	return ew.err
}

// wireframeEdges deduplicates the undirected edges of the face list in
// insertion order. Unlike femtogl.EdgesFromFaces this is unbounded: the
// generator runs on the host, and the capacity ceiling belongs to the
// runtime side.
func wireframeEdges(faces [][3]int) [][2]int {
	seen := make(map[[2]int]bool, len(faces)*3)
	var out [][2]int
	for _, f := range faces {
		for _, e := range [3][2]int{{f[0], f[1]}, {f[1], f[2]}, {f[2], f[0]}} {
			a, b := e[0], e[1]
			if a > b {
				a, b = b, a
			}
			if seen[[2]int{a, b}] {
				continue
			}
			seen[[2]int{a, b}] = true
			out = append(out, [2]int{a, b})
		}
	}
	return out
}

func f32(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

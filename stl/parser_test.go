package stl

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"
	"testing"
)

const asciiSquare = `solid square
facet normal 0 0 1
  outer loop
    vertex 0 0 0
    vertex 1 0 0
    vertex 1 1 0
  endloop
endfacet
facet normal 0 0 1
  outer loop
    vertex 0 0 0
    vertex 1 1 0
    vertex 0 1 0
  endloop
endfacet
endsolid square
`

func TestParseASCII(t *testing.T) {
	m, err := Parse(strings.NewReader(asciiSquare))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.Name != "square" {
		t.Fatalf("name %q", m.Name)
	}
	if len(m.Triangles) != 2 {
		t.Fatalf("got %d triangles, want 2", len(m.Triangles))
	}
	if m.Triangles[0].Normal != [3]float32{0, 0, 1} {
		t.Fatalf("normal %v", m.Triangles[0].Normal)
	}
	if m.Triangles[1].V[2] != [3]float32{0, 1, 0} {
		t.Fatalf("last vertex %v", m.Triangles[1].V[2])
	}
}

func binarySquare() []byte {
	var buf bytes.Buffer
	header := make([]byte, 80)
	copy(header, "binary square")
	buf.Write(header)

	tris := []Triangle{
		{Normal: [3]float32{0, 0, 1}, V: [3][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}},
		{Normal: [3]float32{0, 0, 1}, V: [3][3]float32{{0, 0, 0}, {1, 1, 0}, {0, 1, 0}}},
	}
	var n [4]byte
	binary.LittleEndian.PutUint32(n[:], uint32(len(tris)))
	buf.Write(n[:])

	putF32 := func(v float32) {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
		buf.Write(b[:])
	}
	for _, tr := range tris {
		putF32(tr.Normal[0])
		putF32(tr.Normal[1])
		putF32(tr.Normal[2])
		for _, v := range tr.V {
			putF32(v[0])
			putF32(v[1])
			putF32(v[2])
		}
		buf.Write([]byte{0, 0}) // attribute bytes
	}
	return buf.Bytes()
}

func TestParseBinary(t *testing.T) {
	m, err := Parse(bytes.NewReader(binarySquare()))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(m.Triangles) != 2 {
		t.Fatalf("got %d triangles, want 2", len(m.Triangles))
	}
	if m.Name != "binary square" {
		t.Fatalf("name %q", m.Name)
	}
	if m.Triangles[0].V[1] != [3]float32{1, 0, 0} {
		t.Fatalf("vertex %v", m.Triangles[0].V[1])
	}
}

func TestParseBinaryTruncated(t *testing.T) {
	data := binarySquare()
	if _, err := Parse(bytes.NewReader(data[:len(data)-10])); err == nil {
		t.Fatalf("truncated file parsed without error")
	}
}

func TestIndexedDedupsVertices(t *testing.T) {
	m, err := Parse(strings.NewReader(asciiSquare))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	vertices, faces, normals := m.Indexed()

	// The square has 4 unique corners across 6 triangle vertices.
	if len(vertices) != 4 {
		t.Fatalf("got %d vertices, want 4", len(vertices))
	}
	if len(faces) != 2 || len(normals) != 2 {
		t.Fatalf("faces=%d normals=%d, want 2 each", len(faces), len(normals))
	}
	for _, f := range faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(vertices) {
				t.Fatalf("face index %d out of range", idx)
			}
		}
	}
	// Shared corner (0,0,0) referenced by both faces under one index.
	if faces[0][0] != faces[1][0] {
		t.Fatalf("shared vertex not deduplicated: %v vs %v", faces[0], faces[1])
	}
}

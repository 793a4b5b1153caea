// Package stl reads STL mesh files and converts their triangle soup into
// the indexed vertex/face/normal tables the renderer's geometry expects.
// It is a build-time import collaborator: the femtogen command uses it to
// bake models into static Go geometry literals.
package stl

// Triangle is one facet: a normal and three vertices, as stored in the file.
type Triangle struct {
	Normal [3]float32
	V      [3][3]float32
}

// Model is a parsed STL file.
type Model struct {
	Name      string
	Triangles []Triangle
}

// Indexed converts the triangle soup into an indexed mesh: deduplicated
// vertices, one index triple per facet, and one normal per facet. Vertex
// order follows first appearance, so output is deterministic for a given
// file.
func (m *Model) Indexed() (vertices [][3]float32, faces [][3]int, normals [][3]float32) {
	index := make(map[[3]float32]int, len(m.Triangles))

	lookup := func(v [3]float32) int {
		if i, ok := index[v]; ok {
			return i
		}
		i := len(vertices)
		index[v] = i
		vertices = append(vertices, v)
		return i
	}

	for _, t := range m.Triangles {
		faces = append(faces, [3]int{lookup(t.V[0]), lookup(t.V[1]), lookup(t.V[2])})
		normals = append(normals, t.Normal)
	}
	return vertices, faces, normals
}

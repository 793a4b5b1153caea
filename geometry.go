package femtogl

import "fmt"

// MaxEdges bounds the number of unique wireframe edges derivable from one
// mesh. The dedup set is a fixed array sized for the embedded target.
const MaxEdges = 512

// Geometry is an immutable view over static vertex and index tables.
//
// The slice fields typically alias package-level arrays (for example output
// of the femtogen importer) and are shared, never copied. Multiple Mesh
// instances may read the same Geometry concurrently.
type Geometry struct {
	Vertices [][3]float32
	Faces    [][3]int
	Lines    [][2]int
	Normals  [][3]float32 // conventionally one per face; not index-checked
	Colors   []Color      // empty, or exactly one per vertex
}

// Validate checks the cross-reference invariants: vertices non-empty, every
// face and line index in bounds, and the color table either empty or exactly
// len(Vertices) long. The first violation found is returned; there is no
// partial-acceptance mode.
func (g Geometry) Validate() error {
	if len(g.Vertices) == 0 {
		return fmt.Errorf("%w: vertices are empty", ErrInvalidGeometry)
	}
	n := len(g.Vertices)
	for i, f := range g.Faces {
		if f[0] >= n || f[1] >= n || f[2] >= n || f[0] < 0 || f[1] < 0 || f[2] < 0 {
			return fmt.Errorf("%w: face %d references vertex out of bounds", ErrInvalidGeometry, i)
		}
	}
	for i, l := range g.Lines {
		if l[0] >= n || l[1] >= n || l[0] < 0 || l[1] < 0 {
			return fmt.Errorf("%w: line %d references vertex out of bounds", ErrInvalidGeometry, i)
		}
	}
	if len(g.Colors) != 0 && len(g.Colors) != n {
		return fmt.Errorf("%w: %d colors for %d vertices", ErrInvalidGeometry, len(g.Colors), n)
	}
	return nil
}

// edgeSet is a fixed-capacity hash set of undirected edges. Buckets are open
// addressed; 2*MaxEdges slots keep probe chains short near capacity.
type edgeSet struct {
	slots [2 * MaxEdges][2]int
	used  [2 * MaxEdges]bool

	edges [MaxEdges][2]int // insertion order, for deterministic output
	n     int
}

func edgeHash(a, b int) uint32 {
	// FNV-1a over both indices.
	h := uint32(2166136261)
	for _, v := range [2]int{a, b} {
		for i := 0; i < 4; i++ {
			h ^= uint32(v >> (8 * i) & 0xFF)
			h *= 16777619
		}
	}
	return h
}

func (s *edgeSet) insert(a, b int) error {
	if a > b {
		a, b = b, a
	}
	i := edgeHash(a, b) % uint32(len(s.slots))
	for s.used[i] {
		if s.slots[i] == [2]int{a, b} {
			return nil
		}
		i = (i + 1) % uint32(len(s.slots))
	}
	if s.n >= MaxEdges {
		return fmt.Errorf("%w: more than %d unique edges", ErrEdgeCapacity, MaxEdges)
	}
	s.used[i] = true
	s.slots[i] = [2]int{a, b}
	s.edges[s.n] = [2]int{a, b}
	s.n++
	return nil
}

// EdgesFromFaces derives the unique undirected edge set of a triangle list,
// for line-mode rendering of solid geometry. Each edge is normalized so the
// smaller index comes first; an edge shared by two faces appears once.
//
// The result is bounded by MaxEdges; exceeding the capacity returns
// ErrEdgeCapacity rather than dropping edges.
func EdgesFromFaces(faces [][3]int) ([][2]int, error) {
	var set edgeSet
	for _, f := range faces {
		for _, e := range [3][2]int{{f[0], f[1]}, {f[1], f[2]}, {f[2], f[0]}} {
			if err := set.insert(e[0], e[1]); err != nil {
				return nil, err
			}
		}
	}
	out := make([][2]int, set.n)
	copy(out, set.edges[:set.n])
	return out, nil
}

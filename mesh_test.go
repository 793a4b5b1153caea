package femtogl

import (
	"errors"
	"testing"
)

func newTestMesh(t *testing.T) *Mesh {
	t.Helper()
	m, err := NewMesh(validGeometry())
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	return m
}

func TestNewMeshRejectsInvalidGeometry(t *testing.T) {
	g := validGeometry()
	g.Faces = [][3]int{{0, 1, 99}}
	if _, err := NewMesh(g); !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("got %v, want ErrInvalidGeometry", err)
	}
}

func TestNewMeshDefaults(t *testing.T) {
	m := newTestMesh(t)
	if m.dirty {
		t.Fatalf("fresh mesh is dirty")
	}
	if m.ModelMatrix() != Mat4Identity() {
		t.Fatalf("fresh mesh matrix is not identity")
	}
	if m.Scale() != 1 {
		t.Fatalf("fresh mesh scale = %v, want 1", m.Scale())
	}
}

func TestSettersDirtyOnlyOnChange(t *testing.T) {
	m := newTestMesh(t)

	m.SetPosition(1, 2, 3)
	if !m.dirty {
		t.Fatalf("SetPosition to new value did not mark dirty")
	}
	m.ModelMatrix()
	if m.dirty {
		t.Fatalf("ModelMatrix did not clear dirty")
	}

	m.SetPosition(1, 2, 3)
	if m.dirty {
		t.Fatalf("SetPosition to current value marked dirty")
	}

	m.SetAttitude(0.1, 0.2, 0.3)
	if !m.dirty {
		t.Fatalf("SetAttitude to new value did not mark dirty")
	}
	m.ModelMatrix()
	m.SetAttitude(0.1, 0.2, 0.3)
	if m.dirty {
		t.Fatalf("SetAttitude to current value marked dirty")
	}

	m.SetScale(2)
	if !m.dirty {
		t.Fatalf("SetScale to new value did not mark dirty")
	}
	m.ModelMatrix()
	m.SetScale(2)
	if m.dirty {
		t.Fatalf("SetScale to current value marked dirty")
	}
}

func TestSetScaleRejectsZero(t *testing.T) {
	m := newTestMesh(t)
	m.SetScale(0)
	if m.dirty || m.Scale() != 1 {
		t.Fatalf("SetScale(0) changed state: scale=%v dirty=%v", m.Scale(), m.dirty)
	}
}

func TestTranslateAccumulates(t *testing.T) {
	m := newTestMesh(t)
	m.Translate(1, 0, 0)
	m.Translate(1, 2, 0)
	if got := m.Position(); got != V3(2, 2, 0) {
		t.Fatalf("position = %+v, want (2,2,0)", got)
	}
	m.ModelMatrix()

	m.Translate(0, 0, 0)
	if m.dirty {
		t.Fatalf("zero translate marked dirty")
	}
}

func TestRotateAccumulates(t *testing.T) {
	m := newTestMesh(t)
	m.Rotate(0, 0, 0)
	if m.dirty {
		t.Fatalf("zero rotate marked dirty")
	}

	m.Rotate(0, 0, 0.5)
	if !m.dirty {
		t.Fatalf("rotate did not mark dirty")
	}
	first := m.rotation
	m.ModelMatrix()
	m.Rotate(0, 0, 0.5)
	if m.rotation == first {
		t.Fatalf("second rotate did not accumulate")
	}
}

func TestModelMatrixRecomputesOnce(t *testing.T) {
	m := newTestMesh(t)
	m.SetPosition(3, 0, 0)
	m.Translate(0, 1, 0)

	a := m.ModelMatrix()
	b := m.ModelMatrix()
	if a != b {
		t.Fatalf("back-to-back ModelMatrix calls differ")
	}
	if m.dirty {
		t.Fatalf("dirty after ModelMatrix")
	}
	if a[12] != 3 || a[13] != 1 || a[14] != 0 {
		t.Fatalf("translation column = (%v,%v,%v), want (3,1,0)", a[12], a[13], a[14])
	}
}

func TestModelMatrixComposesScale(t *testing.T) {
	m := newTestMesh(t)
	m.SetScale(2)
	got := m.ModelMatrix()
	if got[0] != 2 || got[5] != 2 || got[10] != 2 {
		t.Fatalf("scale diagonal = (%v,%v,%v), want 2s", got[0], got[5], got[10])
	}
}

func TestSetTargetResetsScaleAndDirties(t *testing.T) {
	m := newTestMesh(t)
	m.SetPosition(0, 0, 3)
	m.SetScale(5)
	m.ModelMatrix()

	m.SetTarget(V3(0, 0, 0))
	if !m.dirty {
		t.Fatalf("SetTarget did not mark dirty")
	}
	if m.Scale() != 1 {
		t.Fatalf("SetTarget kept scale %v, want reset to 1", m.Scale())
	}

	// The resulting similarity is a view transform: it takes the old eye
	// position to the origin.
	view := m.ModelMatrix()
	p := view.MulPoint(V3(0, 0, 3))
	if !almostEq(p.X, 0) || !almostEq(p.Y, 0) || !almostEq(p.Z, 0) {
		t.Fatalf("view(eye) = %+v, want origin", p)
	}
}

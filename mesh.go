package femtogl

// RenderMode selects how a mesh is turned into primitives by the scene loop.
type RenderMode uint8

const (
	ModePoints RenderMode = iota
	ModeLines
	ModeSolid
	ModeSolidLightDir
)

// Mesh pairs a Geometry view with a similarity transform (translation,
// rotation, uniform scale) and a lazily-recomputed model matrix.
//
// The matrix cache is pull-based: setters only mark it dirty, and only when
// the value actually changed, so a mesh moved many times per frame still pays
// for exactly one matrix composition when ModelMatrix is read.
type Mesh struct {
	Geometry Geometry

	// Color is the fallback tint used when Geometry.Colors is empty.
	Color Color

	Mode RenderMode

	// LightDir is the light direction used by ModeSolidLightDir.
	LightDir Vec3

	position Vec3
	rotation Quat
	scale    float32

	model Mat4
	dirty bool
}

// NewMesh validates the geometry and wraps it in a mesh at the origin with
// identity rotation and scale 1. Invalid geometry is rejected here so a mesh
// can never exist in a state that fails deep inside rendering.
func NewMesh(g Geometry) (*Mesh, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &Mesh{
		Geometry: g,
		Color:    ColorWhite,
		Mode:     ModePoints,
		rotation: QuatIdentity(),
		scale:    1,
		model:    Mat4Identity(),
	}, nil
}

// SetPosition replaces the translation. The matrix is marked stale only if
// the position actually changed (exact comparison).
func (m *Mesh) SetPosition(x, y, z float32) {
	p := Vec3{X: x, Y: y, Z: z}
	if m.position != p {
		m.position = p
		m.dirty = true
	}
}

func (m *Mesh) Position() Vec3 { return m.position }

// SetAttitude replaces the rotation with one built from Euler angles.
func (m *Mesh) SetAttitude(roll, pitch, yaw float32) {
	q := QuatFromEuler(roll, pitch, yaw)
	if m.rotation != q {
		m.rotation = q
		m.dirty = true
	}
}

// SetScale replaces the uniform scale. A zero scale is rejected as a no-op:
// it would collapse the geometry irrecoverably for later transforms.
func (m *Mesh) SetScale(s float32) {
	if s != 0 && m.scale != s {
		m.scale = s
		m.dirty = true
	}
}

func (m *Mesh) Scale() float32 { return m.scale }

// Translate adds a delta to the translation.
func (m *Mesh) Translate(dx, dy, dz float32) {
	if dx != 0 || dy != 0 || dz != 0 {
		m.position.X += dx
		m.position.Y += dy
		m.position.Z += dz
		m.dirty = true
	}
}

// Rotate composes an additional Euler rotation onto the current one.
func (m *Mesh) Rotate(roll, pitch, yaw float32) {
	if roll == 0 && pitch == 0 && yaw == 0 {
		return
	}
	m.rotation = m.rotation.Mul(QuatFromEuler(roll, pitch, yaw))
	m.dirty = true
}

// SetTarget rebuilds the whole similarity as a look-at: eye at the current
// position, looking toward target, up = world Y. The scale is reset to 1 and
// the previous value discarded; callers that need a scaled look-at must call
// SetScale afterwards. Always marks the matrix stale.
func (m *Mesh) SetTarget(target Vec3) {
	rot, trans := lookAt(m.position, target, V3(0, 1, 0))
	m.rotation = rot
	m.position = trans
	m.scale = 1
	m.dirty = true
}

// ModelMatrix returns the similarity composed into a homogeneous matrix,
// recomputing it only if a mutation occurred since the last call.
func (m *Mesh) ModelMatrix() Mat4 {
	if m.dirty {
		m.model = Mat4Mul(Mat4Translate(m.position), Mat4Mul(m.rotation.Mat4(), Mat4UniformScale(m.scale)))
		m.dirty = false
	}
	return m.model
}

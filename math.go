package femtogl

import "math"

// Vec3 is a 3D vector with float32 components.
type Vec3 struct {
	X, Y, Z float32
}

// Mat4 is a column-major 4x4 matrix, m[col*4+row].
type Mat4 [16]float32

func V3(x, y, z float32) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3    { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3    { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func Dot(a, b Vec3) float32 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func Cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func Len(v Vec3) float32 {
	return float32(math.Sqrt(float64(Dot(v, v))))
}

func Normalize(v Vec3) Vec3 {
	l := Len(v)
	if l == 0 {
		return Vec3{}
	}
	return v.Mul(1 / l)
}

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func Mat4Mul(a, b Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[col*4+row] =
				a[0*4+row]*b[col*4+0] +
					a[1*4+row]*b[col*4+1] +
					a[2*4+row]*b[col*4+2] +
					a[3*4+row]*b[col*4+3]
		}
	}
	return out
}

func Mat4Translate(v Vec3) Mat4 {
	m := Mat4Identity()
	m[12] = v.X
	m[13] = v.Y
	m[14] = v.Z
	return m
}

func Mat4UniformScale(s float32) Mat4 {
	m := Mat4Identity()
	m[0] = s
	m[5] = s
	m[10] = s
	return m
}

// MulPoint applies m to a point (w=1) and returns the transformed point
// without perspective division.
func (m Mat4) MulPoint(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12],
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13],
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14],
	}
}

// Quat is a rotation quaternion. Identity is {W: 1}.
type Quat struct {
	W, X, Y, Z float32
}

func QuatIdentity() Quat { return Quat{W: 1} }

// QuatFromEuler builds a rotation from roll (about X), pitch (about Y) and
// yaw (about Z), applied roll first: R = Rz(yaw)·Ry(pitch)·Rx(roll).
func QuatFromEuler(roll, pitch, yaw float32) Quat {
	cr := float32(math.Cos(float64(roll) / 2))
	sr := float32(math.Sin(float64(roll) / 2))
	cp := float32(math.Cos(float64(pitch) / 2))
	sp := float32(math.Sin(float64(pitch) / 2))
	cy := float32(math.Cos(float64(yaw) / 2))
	sy := float32(math.Sin(float64(yaw) / 2))

	return Quat{
		W: cr*cp*cy + sr*sp*sy,
		X: sr*cp*cy - cr*sp*sy,
		Y: cr*sp*cy + sr*cp*sy,
		Z: cr*cp*sy - sr*sp*cy,
	}
}

// Mul returns the Hamilton product q·o (o applied first).
func (q Quat) Mul(o Quat) Quat {
	return Quat{
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
	}
}

// Mat4 expands the rotation to a homogeneous matrix.
func (q Quat) Mat4() Mat4 {
	xx := q.X * q.X
	yy := q.Y * q.Y
	zz := q.Z * q.Z
	xy := q.X * q.Y
	xz := q.X * q.Z
	yz := q.Y * q.Z
	wx := q.W * q.X
	wy := q.W * q.Y
	wz := q.W * q.Z

	return Mat4{
		1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy), 0,
		2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx), 0,
		2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy), 0,
		0, 0, 0, 1,
	}
}

// quatFromBasis converts an orthonormal rotation whose ROWS are r0, r1, r2
// into a quaternion (Shepperd's method).
func quatFromBasis(r0, r1, r2 Vec3) Quat {
	trace := r0.X + r1.Y + r2.Z
	var q Quat
	switch {
	case trace > 0:
		s := float32(math.Sqrt(float64(trace+1))) * 2
		q.W = s / 4
		q.X = (r2.Y - r1.Z) / s
		q.Y = (r0.Z - r2.X) / s
		q.Z = (r1.X - r0.Y) / s
	case r0.X > r1.Y && r0.X > r2.Z:
		s := float32(math.Sqrt(float64(1+r0.X-r1.Y-r2.Z))) * 2
		q.W = (r2.Y - r1.Z) / s
		q.X = s / 4
		q.Y = (r0.Y + r1.X) / s
		q.Z = (r0.Z + r2.X) / s
	case r1.Y > r2.Z:
		s := float32(math.Sqrt(float64(1+r1.Y-r0.X-r2.Z))) * 2
		q.W = (r0.Z - r2.X) / s
		q.X = (r0.Y + r1.X) / s
		q.Y = s / 4
		q.Z = (r1.Z + r2.Y) / s
	default:
		s := float32(math.Sqrt(float64(1+r2.Z-r0.X-r1.Y))) * 2
		q.W = (r1.X - r0.Y) / s
		q.X = (r0.Z + r2.X) / s
		q.Y = (r1.Z + r2.Y) / s
		q.Z = s / 4
	}
	return q
}

// lookAt returns the view rotation and translation for an eye looking toward
// target with the given up vector. The rotation rows are the camera right,
// up, and negated forward axes.
func lookAt(eye, target, up Vec3) (Quat, Vec3) {
	f := Normalize(target.Sub(eye))
	s := Normalize(Cross(f, up))
	u := Cross(s, f)

	rot := quatFromBasis(s, u, f.Mul(-1))
	trans := Vec3{X: -Dot(s, eye), Y: -Dot(u, eye), Z: Dot(f, eye)}
	return rot, trans
}

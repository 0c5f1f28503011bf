package mathutil

import "github.com/go-gl/mathgl/mgl32"

// Matrices are mgl32 column-major, column-vector convention: M · p.
// "a then b" therefore multiplies as b · a.

// Then returns the transform that applies a first and b second.
func Then(a, b mgl32.Mat4) mgl32.Mat4 {
	return b.Mul4(a)
}

// TRS builds the affine matrix that scales, then rotates (EulerXYZ), then
// translates a point: T · R · S.
func TRS(scale, rotation, translation mgl32.Vec3) mgl32.Mat4 {
	s := mgl32.Scale3D(scale[0], scale[1], scale[2])
	r := EulerXYZ(rotation)
	t := mgl32.Translate3D(translation[0], translation[1], translation[2])
	return t.Mul4(r.Mul4(s))
}

// IsIdentity checks if the matrix is approximately identity.
func IsIdentity(m mgl32.Mat4) bool {
	return m.ApproxEqualThreshold(mgl32.Ident4(), 1e-6)
}

// MulPoint transforms a 3D point (w=1) by the 4×4 matrix.
func MulPoint(m mgl32.Mat4, v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformCoordinate(v, m)
}

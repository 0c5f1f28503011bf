package mathutil

import "github.com/go-gl/mathgl/mgl32"

// RotX returns a homogeneous rotation of deg degrees around the X axis.
func RotX(deg float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DX(mgl32.DegToRad(deg))
}

// RotY returns a homogeneous rotation of deg degrees around the Y axis.
func RotY(deg float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DY(mgl32.DegToRad(deg))
}

// RotZ returns a homogeneous rotation of deg degrees around the Z axis.
func RotZ(deg float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DZ(mgl32.DegToRad(deg))
}

// EulerXYZ builds a rotation from radian angles. A point is rotated about X
// first, then Y, then Z: Rz · Ry · Rx.
func EulerXYZ(r mgl32.Vec3) mgl32.Mat4 {
	rx := mgl32.HomogRotate3DX(r[0])
	ry := mgl32.HomogRotate3DY(r[1])
	rz := mgl32.HomogRotate3DZ(r[2])
	return rz.Mul4(ry.Mul4(rx))
}

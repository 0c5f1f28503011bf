// Package scene holds the placed instances of a shared group and the
// flattened lookup table the animator queries by instance id.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"sgb-animator/internal/mathutil"
)

// Transform is the static placement of an instance.
type Transform struct {
	Scale       mgl32.Vec3
	Rotation    mgl32.Vec3 // Euler radians, X applied first
	Translation mgl32.Vec3
}

// IdentityTransform returns a unit-scale transform with no rotation or offset.
func IdentityTransform() Transform {
	return Transform{Scale: mgl32.Vec3{1, 1, 1}}
}

// Matrix returns the base model matrix: scale, then rotate, then translate.
func (t Transform) Matrix() mgl32.Mat4 {
	return mathutil.TRS(t.Scale, t.Rotation, t.Translation)
}

// Instance is one placed object. ID is unique within its section.
type Instance struct {
	ID        uint32
	Name      string
	AssetPath string
	Transform Transform
}

// Section holds the instances of one shared-group section.
type Section struct {
	Instances []Instance
}

// Scene is the instance data of a whole asset. Sections line up with
// timeline.Graph.Sections by position.
type Scene struct {
	Sections []Section
}

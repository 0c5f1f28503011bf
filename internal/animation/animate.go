package animation

import (
	"github.com/go-gl/mathgl/mgl32"

	"sgb-animator/internal/curve"
	"sgb-animator/internal/scene"
)

// Instances resolves instance ids to placed instances. *scene.Table
// implements it.
type Instances interface {
	Lookup(id uint32) (scene.Instance, bool)
}

// AnimateMatrix returns the model matrix of instance id at time at.
// Every curve of every bound curve set is evaluated with the animation's
// Duration as loop period and folded in curve order; the instance's base
// transform is applied last. An instance without animations gets its base
// transform. ok is false only when instances does not know id.
func (ix *Index) AnimateMatrix(instances Instances, id uint32, at float32) (m mgl32.Mat4, ok bool) {
	inst, ok := instances.Lookup(id)
	if !ok {
		return mgl32.Mat4{}, false
	}
	bindings, _ := ix.Lookup(id)

	c := NewComposer()
	for i := range bindings {
		cs := bindings[i].Curves
		if cs == nil {
			continue
		}
		period := float32(bindings[i].Animation.Duration)
		for _, cv := range cs.Curves {
			c.Then(curve.Evaluate(cv, at, period))
		}
	}
	return c.Finish(inst.Transform), true
}

// Animate writes the model matrix of instance id at time at into out as 16
// column-major floats and reports whether the instance exists. out must hold
// at least 16 elements; it is left untouched when the instance is unknown.
func (ix *Index) Animate(instances Instances, id uint32, at float32, out []float32) bool {
	m, ok := ix.AnimateMatrix(instances, id, at)
	if !ok {
		return false
	}
	copy(out[:16], m[:])
	return true
}

package animation

import (
	"github.com/go-gl/mathgl/mgl32"

	"sgb-animator/internal/mathutil"
	"sgb-animator/internal/scene"
)

// Composer folds elementary transforms in application order. The zero value
// is not usable; start from NewComposer.
type Composer struct {
	acc mgl32.Mat4
}

// NewComposer returns a composer holding the identity transform.
func NewComposer() Composer {
	return Composer{acc: mgl32.Ident4()}
}

// Then appends m: the accumulated transform is applied first, m second.
func (c *Composer) Then(m mgl32.Mat4) {
	c.acc = mathutil.Then(c.acc, m)
}

// Matrix returns the accumulated transform.
func (c *Composer) Matrix() mgl32.Mat4 {
	return c.acc
}

// Finish applies the instance's base transform after everything accumulated.
func (c *Composer) Finish(base scene.Transform) mgl32.Mat4 {
	return mathutil.Then(c.acc, base.Matrix())
}

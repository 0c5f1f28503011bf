package preview

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"sgb-animator/internal/mathutil"
	"sgb-animator/internal/scene"
)

// Camera is an orthographic view fitted around a set of instances.
type Camera struct {
	viewProj mgl32.Mat4
	size     float32
}

// viewDir points from the scene toward the eye: above and to the front-right.
var viewDir = mgl32.Vec3{1, 0.8, 1}.Normalize()

// FitCamera frames the unit cubes of the given instances at their base
// placement. An empty set frames the origin.
func FitCamera(instances []scene.Instance, size int) Camera {
	lo := mgl32.Vec3{-1, -1, -1}
	hi := mgl32.Vec3{1, 1, 1}
	if len(instances) > 0 {
		inf := math32.Inf(1)
		lo = mgl32.Vec3{inf, inf, inf}
		hi = lo.Mul(-1)
		for _, inst := range instances {
			m := inst.Transform.Matrix()
			for _, c := range cubeCorners {
				p := mathutil.MulPoint(m, c)
				for k := 0; k < 3; k++ {
					lo[k] = math32.Min(lo[k], p[k])
					hi[k] = math32.Max(hi[k], p[k])
				}
			}
		}
	}

	center := lo.Add(hi).Mul(0.5)
	// Animated parts swing around their placement, leave room for them.
	radius := math32.Max(hi.Sub(lo).Len()*0.5, 1) * 1.5

	eye := center.Add(viewDir.Mul(radius * 3))
	view := mgl32.LookAtV(eye, center, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Ortho(-radius, radius, -radius, radius, radius, radius*5)
	return Camera{viewProj: proj.Mul4(view), size: float32(size)}
}

// Project maps a world point to (pixel x, pixel y, NDC depth).
func (c Camera) Project(p mgl32.Vec3) [3]float32 {
	ndc := mgl32.TransformCoordinate(p, c.viewProj)
	return [3]float32{
		(ndc[0] + 1) * 0.5 * c.size,
		(1 - ndc[1]) * 0.5 * c.size,
		ndc[2],
	}
}

// Unit cube centred on the model origin.
var cubeCorners = [8]mgl32.Vec3{
	{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5},
	{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5},
}

var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

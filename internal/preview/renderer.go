// Package preview draws animated instances as depth-tested unit-cube
// wireframes so timeline animation can be checked without a model loader.
package preview

import (
	"image"
	"image/color"

	"sgb-animator/internal/animation"
	"sgb-animator/internal/mathutil"
	"sgb-animator/internal/scene"
)

var (
	Background    = color.NRGBA{R: 24, G: 26, B: 32, A: 255}
	StaticColor   = color.NRGBA{R: 140, G: 140, B: 150, A: 255}
	AnimatedColor = color.NRGBA{R: 255, G: 160, B: 40, A: 255}
)

// Options configures a Renderer.
type Options struct {
	Size        int // output edge in pixels
	Supersample int
	Backdrop    image.Image // optional, stretched to the frame
}

// Renderer draws frames of one asset. It only reads the index and table,
// so a single Renderer may serve several goroutines.
type Renderer struct {
	index    *animation.Index
	table    *scene.Table
	ids      []uint32
	camera   Camera
	size     int
	ss       int
	backdrop *image.NRGBA
}

// NewRenderer fits a camera to every instance in table.
func NewRenderer(ix *animation.Index, table *scene.Table, opts Options) *Renderer {
	if opts.Size <= 0 {
		opts.Size = 256
	}
	if opts.Supersample <= 0 {
		opts.Supersample = 1
	}
	hi := opts.Size * opts.Supersample

	ids := table.IDs()
	placed := make([]scene.Instance, 0, len(ids))
	for _, id := range ids {
		inst, _ := table.Lookup(id)
		placed = append(placed, inst)
	}

	r := &Renderer{
		index:  ix,
		table:  table,
		ids:    ids,
		camera: FitCamera(placed, hi),
		size:   opts.Size,
		ss:     opts.Supersample,
	}
	if opts.Backdrop != nil {
		r.backdrop = fitBackdrop(opts.Backdrop, hi)
	}
	return r
}

// Render draws the scene at timeline time at.
func (r *Renderer) Render(at float32) *image.NRGBA {
	hi := r.size * r.ss
	fb := NewFrameBuffer(hi, hi)
	if r.backdrop != nil {
		fb.Fill(r.backdrop)
	} else {
		fb.Clear(Background)
	}

	var pts [len(cubeCorners)][3]float32
	for _, id := range r.ids {
		m, ok := r.index.AnimateMatrix(r.table, id, at)
		if !ok {
			continue
		}
		c := StaticColor
		if _, animated := r.index.Lookup(id); animated {
			c = AnimatedColor
		}
		for i, corner := range cubeCorners {
			pts[i] = r.camera.Project(mathutil.MulPoint(m, corner))
		}
		for _, e := range cubeEdges {
			fb.Line(pts[e[0]], pts[e[1]], c, r.ss)
		}
	}

	return Downsample(fb.Image(), r.size)
}

package preview

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Line draws a depth-tested segment between two projected points
// (pixel x, pixel y, NDC z) with a square brush of the given width.
func (fb *FrameBuffer) Line(a, b [3]float32, c color.NRGBA, width int) {
	if width < 1 {
		width = 1
	}
	dx, dy := b[0]-a[0], b[1]-a[1]
	steps := int(math32.Ceil(math32.Max(math32.Abs(dx), math32.Abs(dy))))
	if steps == 0 {
		steps = 1
	}
	lo := -(width - 1) / 2
	hi := lo + width
	for s := 0; s <= steps; s++ {
		t := float32(s) / float32(steps)
		x := int(math32.Round(a[0] + dx*t))
		y := int(math32.Round(a[1] + dy*t))
		z := a[2] + (b[2]-a[2])*t
		for oy := lo; oy < hi; oy++ {
			for ox := lo; ox < hi; ox++ {
				fb.Plot(x+ox, y+oy, z, c)
			}
		}
	}
}

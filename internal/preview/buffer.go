package preview

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
)

// FrameBuffer holds the render target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	ZBuf   []float32 // NDC depth per pixel, len = W*H, initialized to +inf
}

// NewFrameBuffer allocates a transparent color buffer and a cleared z-buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, w*h*4),
		ZBuf:   make([]float32, w*h),
	}
	fb.clearDepth()
	return fb
}

func (fb *FrameBuffer) clearDepth() {
	inf := math32.Inf(1)
	for i := range fb.ZBuf {
		fb.ZBuf[i] = inf
	}
}

// Clear fills every pixel with c.
func (fb *FrameBuffer) Clear(c color.NRGBA) {
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i] = c.R
		fb.Color[i+1] = c.G
		fb.Color[i+2] = c.B
		fb.Color[i+3] = c.A
	}
}

// Fill copies a backdrop of exactly the buffer's size.
func (fb *FrameBuffer) Fill(img *image.NRGBA) {
	b := img.Bounds()
	if b.Dx() != fb.Width || b.Dy() != fb.Height {
		return
	}
	row := fb.Width * 4
	for y := 0; y < fb.Height; y++ {
		off := img.PixOffset(b.Min.X, b.Min.Y+y)
		copy(fb.Color[y*row:(y+1)*row], img.Pix[off:off+row])
	}
}

// Plot writes c at (x, y) if z is not behind what is already there.
func (fb *FrameBuffer) Plot(x, y int, z float32, c color.NRGBA) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	i := y*fb.Width + x
	if z > fb.ZBuf[i] {
		return
	}
	fb.ZBuf[i] = z
	fb.Color[i*4] = c.R
	fb.Color[i*4+1] = c.G
	fb.Color[i*4+2] = c.B
	fb.Color[i*4+3] = c.A
}

// Image copies the color buffer into a new image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}

package preview

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample shrinks a square supersampled frame to size x size. Alpha is
// premultiplied around the CatmullRom pass so transparent edges do not
// darken.
func Downsample(img *image.NRGBA, size int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= size && b.Dy() <= size {
		return img
	}

	src := image.NewRGBA(b)
	for i := 0; i < len(img.Pix); i += 4 {
		a := uint32(img.Pix[i+3])
		src.Pix[i] = uint8((uint32(img.Pix[i])*a + 127) / 255)
		src.Pix[i+1] = uint8((uint32(img.Pix[i+1])*a + 127) / 255)
		src.Pix[i+2] = uint8((uint32(img.Pix[i+2])*a + 127) / 255)
		src.Pix[i+3] = uint8(a)
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)

	out := image.NewNRGBA(dst.Bounds())
	for i := 0; i < len(dst.Pix); i += 4 {
		a := uint32(dst.Pix[i+3])
		out.Pix[i+3] = uint8(a)
		if a == 0 {
			continue
		}
		for k := 0; k < 3; k++ {
			out.Pix[i+k] = uint8(min((uint32(dst.Pix[i+k])*255+a/2)/a, 255))
		}
	}
	return out
}

package imaging

import (
	"image"

	"golang.org/x/image/draw"
)

// BytesPerPixel is the channel width of all buffers produced here (NRGBA).
const BytesPerPixel = 4

// ToNRGBA converts the given image to non-premultiplied RGBA with its
// bounds moved to the origin. NRGBA images at the origin are returned as is.
func ToNRGBA(i image.Image) *image.NRGBA {
	b := i.Bounds()
	if n, ok := i.(*image.NRGBA); ok && b.Min == image.ZP {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), i, b.Min, draw.Src)
	return dst
}

// Pixels returns the pixels of the image as tightly packed NRGBA rows,
// along with width and height.
func Pixels(i image.Image) ([]byte, int, int) {
	n := ToNRGBA(i)
	w, h := n.Bounds().Dx(), n.Bounds().Dy()
	row := w * BytesPerPixel
	buf := make([]byte, row*h)
	for y := 0; y < h; y++ {
		copy(buf[y*row:(y+1)*row], n.Pix[y*n.Stride:y*n.Stride+row])
	}
	return buf, w, h
}

// Scale enlarges the image by an integer factor.
// Nearest neighbour keeps the pixel structure of small sprites.
func Scale(i image.Image, factor int) image.Image {
	if factor <= 1 {
		return i
	}
	b := i.Bounds()
	size := image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor)
	dst := image.NewNRGBA(size)
	draw.NearestNeighbor.Scale(dst, size, i, b, draw.Src, nil)
	return dst
}

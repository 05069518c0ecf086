package renderer

import (
	"image"
	"image/color"

	"github.com/EpikSushi21/go-phong-raytracer/pkg/core"
)

// Framebuffer is the output target for rendered pixels. It is the sole
// sink of computed colors and the sole source of the pixel-grid
// dimensions used for the viewing parameters. Pixel (0,0) is the
// bottom-left corner of the image plane.
type Framebuffer interface {
	Width() int
	Height() int
	SetPixel(x, y int, color core.Vec3)
}

// ImageBuffer is a Framebuffer backed by an RGBA image
type ImageBuffer struct {
	img *image.RGBA
}

// NewImageBuffer creates an image-backed framebuffer of the given size
func NewImageBuffer(width, height int) *ImageBuffer {
	return &ImageBuffer{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Width returns the pixel width of the buffer
func (b *ImageBuffer) Width() int {
	return b.img.Rect.Dx()
}

// Height returns the pixel height of the buffer
func (b *ImageBuffer) Height() int {
	return b.img.Rect.Dy()
}

// SetPixel writes a color to the buffer, clamping it to [0,1]. The
// vertical axis is flipped so that y=0 lands on the bottom row of the
// image. Writes to distinct pixels are safe from concurrent goroutines.
func (b *ImageBuffer) SetPixel(x, y int, c core.Vec3) {
	c = c.Clamp(0.0, 1.0)
	b.img.SetRGBA(x, b.Height()-1-y, color.RGBA{
		R: uint8(255 * c.X),
		G: uint8(255 * c.Y),
		B: uint8(255 * c.Z),
		A: 255,
	})
}

// Image returns the underlying image for encoding
func (b *ImageBuffer) Image() *image.RGBA {
	return b.img
}

package dither

import (
	"fmt"
	"image"
	"image/color"
)

// Pixel is one 8-bit RGB sample. Index 0 is red, 1 green, 2 blue.
type Pixel [3]uint8

// RGBA implements color.Color. Pixels are always opaque.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	r = uint32(p[0])
	r |= r << 8
	g = uint32(p[1])
	g |= g << 8
	b = uint32(p[2])
	b |= b << 8
	return r, g, b, 0xffff
}

// PixelModel converts any color to a Pixel by dropping its alpha channel.
// Channels are taken non-premultiplied.
var PixelModel = color.ModelFunc(pixelModel)

func pixelModel(c color.Color) color.Color {
	if p, ok := c.(Pixel); ok {
		return p
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{n.R, n.G, n.B}
}

// Buffer is a mutable RGB raster with 3 bytes per pixel, stored row-major.
// The origin is always (0, 0).
type Buffer struct {
	// Width and Height are the raster dimensions in pixels.
	Width, Height int

	// Pix holds the samples, R, G, B per pixel.
	Pix []uint8

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

// NewBuffer allocates a black w×h buffer.
func NewBuffer(w, h int) *Buffer {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("dither: negative buffer size %dx%d", w, h))
	}
	return &Buffer{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, 3*w*h),
		Stride: 3 * w,
	}
}

// Empty reports whether the buffer has no pixels.
func (b *Buffer) Empty() bool {
	return b.Width == 0 || b.Height == 0
}

// Contains reports whether (x, y) addresses a pixel of the buffer.
func (b *Buffer) Contains(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

func (b *Buffer) PixOffset(x, y int) int {
	return y*b.Stride + x*3
}

// PixelAt returns the pixel at (x, y). It panics if the coordinate is outside
// the buffer.
func (b *Buffer) PixelAt(x, y int) Pixel {
	b.mustContain(x, y)
	i := b.PixOffset(x, y)
	return Pixel{b.Pix[i], b.Pix[i+1], b.Pix[i+2]}
}

// SetPixel overwrites the pixel at (x, y). It panics if the coordinate is
// outside the buffer.
func (b *Buffer) SetPixel(x, y int, p Pixel) {
	b.mustContain(x, y)
	i := b.PixOffset(x, y)
	b.Pix[i] = p[0]
	b.Pix[i+1] = p[1]
	b.Pix[i+2] = p[2]
}

func (b *Buffer) mustContain(x, y int) {
	if !b.Contains(x, y) {
		panic(fmt.Sprintf("dither: pixel (%d,%d) out of range %dx%d", x, y, b.Width, b.Height))
	}
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	c := *b
	c.Pix = append([]uint8(nil), b.Pix...)
	return &c
}

func (b *Buffer) ColorModel() color.Model {
	return PixelModel
}

func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// At implements image.Image. Coordinates outside the buffer yield black.
func (b *Buffer) At(x, y int) color.Color {
	if !b.Contains(x, y) {
		return Pixel{}
	}
	return b.PixelAt(x, y)
}

// ToNRGBA copies the buffer into an opaque *image.NRGBA, the layout the
// standard encoders handle at 8 bits per channel.
func (b *Buffer) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(b.Bounds())
	for y := 0; y < b.Height; y++ {
		src := b.Pix[y*b.Stride : y*b.Stride+3*b.Width]
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < b.Width; x++ {
			dst[x*4] = src[x*3]
			dst[x*4+1] = src[x*3+1]
			dst[x*4+2] = src[x*3+2]
			dst[x*4+3] = 0xff
		}
	}
	return img
}

// Set implements draw.Image. Coordinates outside the buffer are ignored.
func (b *Buffer) Set(x, y int, c color.Color) {
	if !b.Contains(x, y) {
		return
	}
	b.SetPixel(x, y, pixelModel(c).(Pixel))
}

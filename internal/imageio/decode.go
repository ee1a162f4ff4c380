// Package imageio moves images between files and dither buffers.
package imageio

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/AnyUserName/fsdither/internal/dither"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Source describes a decoded input file.
type Source struct {
	Path     string
	Format   string // as registered with the image package, e.g. "png"
	Size     int64  // bytes on disk
	HasAlpha bool   // input had non-opaque pixels; alpha was dropped
}

// Decode reads the image at path into a new RGB buffer.
func Decode(path string) (*dither.Buffer, Source, error) {
	src := Source{Path: path}

	f, err := os.Open(path)
	if err != nil {
		return nil, src, &Error{Kind: KindDecode, Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil {
		src.Size = info.Size()
	}

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, src, &Error{Kind: KindDecode, Op: "decode", Path: path, Err: err}
	}
	src.Format = format
	src.HasAlpha = HasAlpha(img)

	return ToBuffer(img), src, nil
}

// ToBuffer copies img into a new buffer with its origin moved to (0, 0).
// Alpha is ignored; color channels are taken non-premultiplied.
func ToBuffer(img image.Image) *dither.Buffer {
	b := img.Bounds()
	buf := dither.NewBuffer(b.Dx(), b.Dy())

	switch src := img.(type) {
	case *image.NRGBA:
		for y := 0; y < buf.Height; y++ {
			row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			dst := buf.Pix[y*buf.Stride:]
			for x := 0; x < buf.Width; x++ {
				dst[x*3] = row[x*4]
				dst[x*3+1] = row[x*4+1]
				dst[x*3+2] = row[x*4+2]
			}
		}
	default:
		for y := 0; y < buf.Height; y++ {
			for x := 0; x < buf.Width; x++ {
				buf.Set(x, y, img.At(b.Min.X+x, b.Min.Y+y))
			}
		}
	}
	return buf
}

// HasAlpha reports whether any pixel of img is not fully opaque.
func HasAlpha(img image.Image) bool {
	switch src := img.(type) {
	case *image.NRGBA:
		return anyBelowOpaque(src.Pix)
	case *image.RGBA:
		return anyBelowOpaque(src.Pix)
	case *image.YCbCr, *image.Gray, *image.Gray16, *image.CMYK:
		return false
	default:
		if o, ok := img.(interface{ Opaque() bool }); ok {
			return !o.Opaque()
		}
		bounds := img.Bounds()
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				if _, _, _, a := img.At(x, y).RGBA(); a < 0xffff {
					return true
				}
			}
		}
		return false
	}
}

func anyBelowOpaque(pix []uint8) bool {
	for i := 3; i < len(pix); i += 4 {
		if pix[i] < 255 {
			return true
		}
	}
	return false
}

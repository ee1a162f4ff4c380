package encoder

import (
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// BMPEncoder writes uncompressed BMP via golang.org/x/image/bmp.
type BMPEncoder struct{}

func (e *BMPEncoder) Format() string       { return "bmp" }
func (e *BMPEncoder) Extensions() []string { return []string{".bmp"} }
func (e *BMPEncoder) Available() bool      { return true }

func (e *BMPEncoder) Encode(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.BMP)
}

// TIFFEncoder writes Deflate-compressed TIFF via golang.org/x/image/tiff.
type TIFFEncoder struct{}

func (e *TIFFEncoder) Format() string       { return "tiff" }
func (e *TIFFEncoder) Extensions() []string { return []string{".tif", ".tiff"} }
func (e *TIFFEncoder) Available() bool      { return true }

func (e *TIFFEncoder) Encode(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.TIFF)
}

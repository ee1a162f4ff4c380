package encoder

import (
	"image"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
)

// PNGEncoder writes lossless 8-bit PNG at best compression.
type PNGEncoder struct{}

func (e *PNGEncoder) Format() string       { return "png" }
func (e *PNGEncoder) Extensions() []string { return []string{".png"} }
func (e *PNGEncoder) Available() bool      { return true }

func (e *PNGEncoder) Encode(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
}

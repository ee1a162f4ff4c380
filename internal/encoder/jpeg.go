package encoder

import (
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// JPEGQuality is the fixed quality used for JPEG output.
const JPEGQuality = 95

// JPEGEncoder writes JPEG. The format is lossy, so output samples will not
// stay exactly 0 or 255.
type JPEGEncoder struct{}

func (e *JPEGEncoder) Format() string       { return "jpeg" }
func (e *JPEGEncoder) Extensions() []string { return []string{".jpg", ".jpeg"} }
func (e *JPEGEncoder) Available() bool      { return true }

func (e *JPEGEncoder) Encode(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(JPEGQuality))
}

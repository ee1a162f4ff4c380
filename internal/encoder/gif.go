package encoder

import (
	"image"
	"image/draw"
	"io"

	"github.com/disintegration/imaging"
)

// GIFEncoder writes a single-frame GIF. Colors are mapped to the palette
// without a second dithering pass.
type GIFEncoder struct{}

func (e *GIFEncoder) Format() string       { return "gif" }
func (e *GIFEncoder) Extensions() []string { return []string{".gif"} }
func (e *GIFEncoder) Available() bool      { return true }

func (e *GIFEncoder) Encode(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.GIF, imaging.GIFDrawer(draw.Src))
}

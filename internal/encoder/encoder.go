package encoder

import (
	"image"
	"io"
)

// Encoder writes an image in one container format.
type Encoder interface {
	// Format returns the format name (e.g. "png", "jpeg", "webp").
	Format() string

	// Extensions lists the lowercase file extensions, with dot, that select
	// this encoder. The first one is canonical.
	Extensions() []string

	// Available returns true if the encoder is ready to use.
	// External encoders (cwebp, avifenc) may not be installed.
	Available() bool

	// Encode writes img to w.
	Encode(w io.Writer, img image.Image) error
}

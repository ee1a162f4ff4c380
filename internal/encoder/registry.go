package encoder

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned when no encoder handles an extension.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Registry maps output file extensions to available encoders.
type Registry struct {
	byExt   map[string]Encoder
	formats []string // registration order
}

// NewRegistry creates a registry, probing all encoders for availability.
func NewRegistry() *Registry {
	return newRegistry(
		&PNGEncoder{},
		&JPEGEncoder{},
		&GIFEncoder{},
		&BMPEncoder{},
		&TIFFEncoder{},
		NewWebPEncoder(),
		NewAVIFEncoder(),
	)
}

func newRegistry(all ...Encoder) *Registry {
	r := &Registry{byExt: make(map[string]Encoder)}
	for _, enc := range all {
		if !enc.Available() {
			continue
		}
		r.formats = append(r.formats, enc.Format())
		for _, ext := range enc.Extensions() {
			r.byExt[ext] = enc
		}
	}
	return r
}

// ForPath returns the encoder selected by the extension of path.
func (r *Registry) ForPath(path string) (Encoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return nil, fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, filepath.Base(path))
	}
	enc, ok := r.byExt[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnsupportedFormat, ext, strings.Join(r.formats, ", "))
	}
	return enc, nil
}

// Available returns all available format names in registration order.
func (r *Registry) Available() []string {
	return append([]string(nil), r.formats...)
}

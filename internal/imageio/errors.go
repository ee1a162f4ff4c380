package imageio

import (
	"errors"
	"fmt"
)

// Kind classifies an I/O adapter failure.
type Kind int

const (
	// KindDecode means the input could not be read or is not a supported image.
	KindDecode Kind = iota + 1
	// KindEncode means the output format is unsupported or its encoder failed.
	KindEncode
	// KindIO means a filesystem operation on the output failed.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindDecode:
		return "decode"
	case KindEncode:
		return "encode"
	case KindIO:
		return "io"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is returned by every function in this package.
type Error struct {
	Kind Kind
	Op   string // failing step, e.g. "open", "rename"
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", e.Kind, e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err wraps an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

package dither

import "fmt"

// QuantError is the per-channel difference original − quantized.
// Each component lies in [-255, 255].
type QuantError [3]float32

// Error returns orig − quant for every channel.
func Error(orig, quant Pixel) QuantError {
	return QuantError{
		float32(orig[0]) - float32(quant[0]),
		float32(orig[1]) - float32(quant[1]),
		float32(orig[2]) - float32(quant[2]),
	}
}

// Overflow selects how a diffused channel value outside [0,255] is stored.
type Overflow int

const (
	// Saturate clamps the truncated value to [0,255].
	Saturate Overflow = iota
	// Wrap keeps the low 8 bits of the truncated value, so 256 becomes 0
	// and -1 becomes 255.
	Wrap
)

func (o Overflow) String() string {
	switch o {
	case Saturate:
		return "saturate"
	case Wrap:
		return "wrap"
	default:
		return fmt.Sprintf("Overflow(%d)", int(o))
	}
}

// Diffuse adds e scaled by ratio to every channel of p. The sum is computed in
// float32 and truncated toward zero; values that leave [0,255] are stored
// according to mode. The second result reports whether any channel left the
// range.
func Diffuse(p Pixel, e QuantError, ratio float32, mode Overflow) (Pixel, bool) {
	var out Pixel
	overflow := false
	for c := range p {
		// The explicit conversion rounds the product and keeps the compiler
		// from fusing it into the add, so output does not depend on GOARCH.
		v := int32(float32(p[c]) + float32(e[c]*ratio))
		if v < 0 || v > 255 {
			overflow = true
			if mode == Saturate {
				if v < 0 {
					v = 0
				} else {
					v = 255
				}
			}
		}
		out[c] = uint8(v)
	}
	return out, overflow
}

// Tap is one neighbor of the diffusion kernel, relative to the current pixel.
type Tap struct {
	DX, DY int
	Weight float32
}

// The 3/16 tap lands on the left neighbor in the same row, which the scan
// has already quantized. That pixel can leave {0, 255} again.
var floydSteinberg = [4]Tap{
	{DX: 1, DY: 0, Weight: 7.0 / 16},
	{DX: -1, DY: 0, Weight: 3.0 / 16},
	{DX: 0, DY: 1, Weight: 5.0 / 16},
	{DX: 1, DY: 1, Weight: 1.0 / 16},
}

// FloydSteinberg returns the four taps of the Floyd–Steinberg kernel.
func FloydSteinberg() [4]Tap {
	return floydSteinberg
}

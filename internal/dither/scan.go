// Package dither implements single-pass Floyd–Steinberg error diffusion
// onto a two-level per-channel palette {0, 255}.
//
// The scan is strictly sequential: each pixel's error feeds its right and
// lower neighbors plus the left neighbor in the same row, so rows cannot be
// processed independently. Only the last pixel of each row is guaranteed to
// hold 0 or 255 per channel once the scan finishes.
package dither

// Stats counts the work done by one scan.
type Stats struct {
	// Pixels is the number of pixels quantized.
	Pixels int
	// Diffusions is the number of neighbor updates.
	Diffusions int
	// Overflows is the number of neighbor updates in which at least one
	// channel left [0,255].
	Overflows int
}

// Ditherer runs the scan with a fixed overflow policy.
// The zero value saturates.
type Ditherer struct {
	Overflow Overflow
}

// Dither quantizes buf in place and diffuses each pixel's error into its
// in-bounds kernel neighbors. Empty buffers are left untouched.
func (d *Ditherer) Dither(buf *Buffer) Stats {
	var st Stats
	if buf.Empty() {
		return st
	}

	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			p := buf.PixelAt(x, y)
			q := Quantize(p)
			e := Error(p, q)
			buf.SetPixel(x, y, q)
			st.Pixels++

			for _, t := range floydSteinberg {
				nx, ny := x+t.DX, y+t.DY
				if !buf.Contains(nx, ny) {
					continue
				}
				n, overflow := Diffuse(buf.PixelAt(nx, ny), e, t.Weight, d.Overflow)
				buf.SetPixel(nx, ny, n)
				st.Diffusions++
				if overflow {
					st.Overflows++
				}
			}
		}
	}
	return st
}

// Dither runs a saturating Ditherer over buf.
func Dither(buf *Buffer) Stats {
	var d Ditherer
	return d.Dither(buf)
}

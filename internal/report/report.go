// Package report summarizes one dithering run.
package report

import (
	"fmt"
	"image"
	"io"
	"time"

	"github.com/AnyUserName/fsdither/internal/dither"
)

// Report is the outcome of a successful run.
type Report struct {
	Input    ImageInfo
	Output   ImageInfo
	Dither   dither.Stats
	Overflow dither.Overflow
	Digest   string // xxhash64 of the output bytes
	Elapsed  time.Duration
}

// ImageInfo holds metadata about one side of the run.
type ImageInfo struct {
	Path     string
	Format   string
	Width    int
	Height   int
	Size     int64    // bytes on disk
	HasAlpha bool     // input only
	AvgColor [3]uint8 // [R,G,B] 0–255
}

// AvgColor calculates the average RGB color of an image.
func AvgColor(img image.Image) [3]uint8 {
	bounds := img.Bounds()
	count := uint64(bounds.Dx()) * uint64(bounds.Dy())
	if count == 0 {
		return [3]uint8{0, 0, 0}
	}
	var sum [3]uint64
	if buf, ok := img.(*dither.Buffer); ok {
		for i := 0; i < len(buf.Pix); i += 3 {
			sum[0] += uint64(buf.Pix[i])
			sum[1] += uint64(buf.Pix[i+1])
			sum[2] += uint64(buf.Pix[i+2])
		}
	} else {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				r, g, b, _ := img.At(x, y).RGBA()
				sum[0] += uint64(r >> 8)
				sum[1] += uint64(g >> 8)
				sum[2] += uint64(b >> 8)
			}
		}
	}
	return [3]uint8{
		uint8(sum[0] / count),
		uint8(sum[1] / count),
		uint8(sum[2] / count),
	}
}

// Print writes a human-readable summary of r to w.
func (r *Report) Print(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  fsdither: done")
	fmt.Fprintln(w)

	in, out := r.Input, r.Output
	fmt.Fprintf(w, "  Input:       %s (%s, %dx%d, %s)\n",
		in.Path, in.Format, in.Width, in.Height, FormatBytes(in.Size))
	if in.HasAlpha {
		fmt.Fprintln(w, "               alpha channel dropped")
	}
	fmt.Fprintf(w, "  Output:      %s (%s, %s)\n", out.Path, out.Format, FormatBytes(out.Size))
	fmt.Fprintf(w, "  Avg color:   %s → %s\n", formatRGB(in.AvgColor), formatRGB(out.AvgColor))
	fmt.Fprintf(w, "  Pixels:      %d\n", r.Dither.Pixels)
	fmt.Fprintf(w, "  Diffusions:  %d\n", r.Dither.Diffusions)
	if r.Dither.Overflows > 0 {
		fmt.Fprintf(w, "  Overflows:   %d (%s)\n", r.Dither.Overflows, r.Overflow)
	}
	fmt.Fprintf(w, "  Digest:      %s\n", r.Digest)
	fmt.Fprintf(w, "  Time:        %s\n", r.Elapsed.Round(time.Millisecond))
	fmt.Fprintln(w)
}

func formatRGB(c [3]uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}

// FormatBytes renders a byte count with a binary unit.
func FormatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

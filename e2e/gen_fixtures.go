//go:build ignore

// gen_fixtures creates small test images for the E2E smoke test.
// Usage: go run gen_fixtures.go <output_dir>
//
// Then: for f in <output_dir>/*; do fsdither -v "$f" "${f%.*}.bw.png"; done
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: gen_fixtures <output_dir>")
		os.Exit(1)
	}
	dir := os.Args[1]
	os.MkdirAll(dir, 0o755)

	// Photo-like ramp (JPEG, 400x225)
	writeJPEG(filepath.Join(dir, "ramp.jpg"), gradient(400, 225))

	// Flat mid-gray: should dither to a ~50% checker pattern
	writeImage(filepath.Join(dir, "gray50.png"), solid(128, 128, color.NRGBA{R: 128, G: 128, B: 128, A: 255}))

	// Saturated primaries survive per-channel quantization
	writeImage(filepath.Join(dir, "primaries.png"), primaries(120, 40))

	// Edge shapes: single pixel, single row, single column
	writeImage(filepath.Join(dir, "pixel.png"), solid(1, 1, color.NRGBA{R: 200, G: 60, B: 30, A: 255}))
	writeImage(filepath.Join(dir, "row.png"), gradient(257, 1))
	writeImage(filepath.Join(dir, "column.png"), gradient(1, 257))

	// Alpha is dropped
	writeImage(filepath.Join(dir, "alpha.png"), alphaGradient(100, 100))

	fmt.Fprintf(os.Stderr, "[gen_fixtures] created 7 fixtures in %s\n", dir)
}

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: 128,
				A: 255,
			})
		}
	}
	return img
}

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func primaries(w, h int) *image.NRGBA {
	bands := []color.NRGBA{{R: 255, A: 255}, {G: 255, A: 255}, {B: 255, A: 255}}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, bands[x*len(bands)/w])
		}
	}
	return img
}

func alphaGradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: 220, G: 60, B: 30,
				A: uint8(x * 255 / w),
			})
		}
	}
	return img
}

func writeImage(path string, img *image.NRGBA) {
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		panic(err)
	}
}

func writeJPEG(path string, img *image.NRGBA) {
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 85}); err != nil {
		panic(err)
	}
}

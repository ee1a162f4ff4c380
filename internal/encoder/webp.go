package encoder

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
)

// Atomic counter for unique temp file names.
var tempCounter atomic.Int64

// tool locates an external encoder binary once.
type tool struct {
	name string

	once sync.Once
	path string
}

func (t *tool) lookup() string {
	t.once.Do(func() {
		if path, err := exec.LookPath(t.name); err == nil {
			t.path = path
		}
	})
	return t.path
}

// run writes img as a temporary PNG, invokes the tool with args built from
// the source and destination paths, and copies the result to w.
func (t *tool) run(w io.Writer, img image.Image, args func(src, dst string) []string) error {
	bin := t.lookup()
	if bin == "" {
		return fmt.Errorf("%s not found in PATH", t.name)
	}

	id := tempCounter.Add(1)
	srcFile, err := os.CreateTemp("", fmt.Sprintf("fsdither_%s_src_%d_*.png", t.name, id))
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	srcPath := srcFile.Name()
	defer os.Remove(srcPath)

	if err := png.Encode(srcFile, img); err != nil {
		srcFile.Close()
		return fmt.Errorf("encode temp png: %w", err)
	}
	if err := srcFile.Close(); err != nil {
		return fmt.Errorf("close temp png: %w", err)
	}

	dstFile, err := os.CreateTemp("", fmt.Sprintf("fsdither_%s_dst_%d_*", t.name, id))
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	dstPath := dstFile.Name()
	dstFile.Close()
	defer os.Remove(dstPath)

	cmd := exec.Command(bin, args(srcPath, dstPath)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", t.name, err, string(out))
	}

	f, err := os.Open(dstPath)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(w, f)
	return err
}

// WebPEncoder encodes lossless WebP by shelling out to cwebp.
// This approach avoids CGO; golang.org/x/image/webp only decodes.
// Install: brew install webp / apt install webp
type WebPEncoder struct {
	cwebp tool
}

func NewWebPEncoder() *WebPEncoder {
	return &WebPEncoder{cwebp: tool{name: "cwebp"}}
}

func (e *WebPEncoder) Format() string       { return "webp" }
func (e *WebPEncoder) Extensions() []string { return []string{".webp"} }
func (e *WebPEncoder) Available() bool      { return e.cwebp.lookup() != "" }

func (e *WebPEncoder) Encode(w io.Writer, img image.Image) error {
	return e.cwebp.run(w, img, func(src, dst string) []string {
		return []string{"-lossless", "-m", "6", "-quiet", src, "-o", dst}
	})
}

// AVIFEncoder encodes lossless AVIF by shelling out to avifenc.
// Install: brew install libavif / apt install libavif-bin
type AVIFEncoder struct {
	avifenc tool
}

func NewAVIFEncoder() *AVIFEncoder {
	return &AVIFEncoder{avifenc: tool{name: "avifenc"}}
}

func (e *AVIFEncoder) Format() string       { return "avif" }
func (e *AVIFEncoder) Extensions() []string { return []string{".avif"} }
func (e *AVIFEncoder) Available() bool      { return e.avifenc.lookup() != "" }

func (e *AVIFEncoder) Encode(w io.Writer, img image.Image) error {
	return e.avifenc.run(w, img, func(src, dst string) []string {
		return []string{"--lossless", "--speed", "6", "-j", "all", src, dst}
	})
}

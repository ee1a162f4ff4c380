package encoder

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

type fakeEncoder struct {
	format    string
	available bool
}

func (e *fakeEncoder) Format() string                       { return e.format }
func (e *fakeEncoder) Extensions() []string                 { return []string{"." + e.format} }
func (e *fakeEncoder) Available() bool                      { return e.available }
func (e *fakeEncoder) Encode(io.Writer, image.Image) error { return nil }

// checker returns a 4×4 black/white checkerboard with a red corner.
func checker() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c := color.NRGBA{A: 255}
			if (x+y)%2 == 0 {
				c = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	img.SetNRGBA(3, 3, color.NRGBA{R: 255, A: 255})
	return img
}

func TestRegistry_ForPath(t *testing.T) {
	r := NewRegistry()
	cases := map[string]string{
		"out.png":       "png",
		"OUT.PNG":       "png",
		"dir/photo.jpg": "jpeg",
		"photo.jpeg":    "jpeg",
		"anim.gif":      "gif",
		"scan.bmp":      "bmp",
		"scan.tif":      "tiff",
		"scan.tiff":     "tiff",
		"a.b.c/d.e.png": "png",
	}
	for path, want := range cases {
		enc, err := r.ForPath(path)
		if err != nil {
			t.Errorf("%s: %v", path, err)
			continue
		}
		if enc.Format() != want {
			t.Errorf("%s: got %q, want %q", path, enc.Format(), want)
		}
	}
}

func TestRegistry_Unsupported(t *testing.T) {
	r := NewRegistry()
	for _, path := range []string{"out.xyz", "noext", "dir.png/file"} {
		if _, err := r.ForPath(path); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("%s: got %v, want ErrUnsupportedFormat", path, err)
		}
	}
}

func TestRegistry_SkipsUnavailable(t *testing.T) {
	r := newRegistry(&fakeEncoder{"aaa", true}, &fakeEncoder{"bbb", false})
	if _, err := r.ForPath("x.aaa"); err != nil {
		t.Errorf("aaa: %v", err)
	}
	if _, err := r.ForPath("x.bbb"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("bbb: got %v", err)
	}
	if got := r.Available(); len(got) != 1 || got[0] != "aaa" {
		t.Errorf("available: got %v, want [aaa]", got)
	}
	if got := newRegistry().Available(); len(got) != 0 {
		t.Errorf("empty available: got %v", got)
	}
}

func TestRegistry_BuiltinsAlwaysAvailable(t *testing.T) {
	avail := NewRegistry().Available()
	for i, want := range []string{"png", "jpeg", "gif", "bmp", "tiff"} {
		if i >= len(avail) || avail[i] != want {
			t.Fatalf("available: got %v, want prefix png jpeg gif bmp tiff", avail)
		}
	}
}

func sameImage(t *testing.T, name string, want, got image.Image) {
	t.Helper()
	if got.Bounds() != want.Bounds() {
		t.Fatalf("%s bounds: got %v, want %v", name, got.Bounds(), want.Bounds())
	}
	b := want.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r1, g1, b1, _ := want.At(x, y).RGBA()
			r2, g2, b2, _ := got.At(x, y).RGBA()
			if r1 != r2 || g1 != g2 || b1 != b2 {
				t.Fatalf("%s pixel (%d,%d): got %x %x %x, want %x %x %x",
					name, x, y, r2, g2, b2, r1, g1, b1)
			}
		}
	}
}

func TestLosslessEncoders(t *testing.T) {
	src := checker()
	decoders := map[string]func(io.Reader) (image.Image, error){
		"png":  png.Decode,
		"bmp":  bmp.Decode,
		"tiff": tiff.Decode,
	}
	encoders := []Encoder{&PNGEncoder{}, &BMPEncoder{}, &TIFFEncoder{}}
	for _, enc := range encoders {
		var buf bytes.Buffer
		if err := enc.Encode(&buf, src); err != nil {
			t.Fatalf("%s encode: %v", enc.Format(), err)
		}
		got, err := decoders[enc.Format()](&buf)
		if err != nil {
			t.Fatalf("%s decode: %v", enc.Format(), err)
		}
		sameImage(t, enc.Format(), src, got)
	}
}

func TestGIFEncoder_BlackWhite(t *testing.T) {
	src := checker()
	src.SetNRGBA(3, 3, color.NRGBA{A: 255})

	var buf bytes.Buffer
	if err := (&GIFEncoder{}).Encode(&buf, src); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := gif.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	sameImage(t, "gif", src, got)
}

func TestJPEGEncoder_Decodes(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JPEGEncoder{}).Encode(&buf, checker()); err != nil {
		t.Fatalf("encode: %v", err)
	}
	cfg, format, err := image.DecodeConfig(&buf)
	if err != nil {
		t.Fatalf("decode config: %v", err)
	}
	if format != "jpeg" || cfg.Width != 4 || cfg.Height != 4 {
		t.Errorf("got %s %dx%d", format, cfg.Width, cfg.Height)
	}
}

func TestExternalEncoder_MissingTool(t *testing.T) {
	e := &WebPEncoder{cwebp: tool{name: "fsdither-no-such-tool"}}
	if e.Available() {
		t.Fatal("missing tool reported as available")
	}
	if err := e.Encode(io.Discard, checker()); err == nil {
		t.Error("expected error for missing tool")
	}
}

package imageio

import (
	"bytes"
	"errors"
	"image"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/AnyUserName/fsdither/internal/encoder"
)

// Select returns the encoder for the extension of path.
func Select(reg *encoder.Registry, path string) (encoder.Encoder, error) {
	enc, err := reg.ForPath(path)
	if err != nil {
		return nil, &Error{Kind: KindEncode, Op: "select encoder", Path: path, Err: err}
	}
	return enc, nil
}

// Encode encodes img in the format selected by the extension of path.
// Nothing is written to disk.
func Encode(reg *encoder.Registry, img image.Image, path string) ([]byte, string, error) {
	enc, err := Select(reg, path)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := enc.Encode(&buf, img); err != nil {
		return nil, "", &Error{Kind: KindEncode, Op: "encode " + enc.Format(), Path: path, Err: err}
	}
	return buf.Bytes(), enc.Format(), nil
}

// WriteFile replaces path with data atomically: the bytes go to a temporary
// file in the same directory which is renamed over path once complete. On
// failure the temporary file is removed and path is left as it was.
//
// An existing path keeps its permission bits. A new one is created 0666
// minus the umask, like os.Create.
func WriteFile(path string, data []byte) (err error) {
	perm, keep := fs.FileMode(0o666), false
	if info, err := os.Stat(path); err == nil {
		perm, keep = info.Mode().Perm(), true
	}

	f, err := createTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-", perm)
	if err != nil {
		return &Error{Kind: KindIO, Op: "create", Path: path, Err: err}
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return &Error{Kind: KindIO, Op: "write", Path: path, Err: err}
	}
	if err := f.Sync(); err != nil {
		return &Error{Kind: KindIO, Op: "sync", Path: path, Err: err}
	}
	if keep {
		if err := f.Chmod(perm); err != nil {
			return &Error{Kind: KindIO, Op: "chmod", Path: path, Err: err}
		}
	}
	if err := f.Close(); err != nil {
		return &Error{Kind: KindIO, Op: "close", Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		return &Error{Kind: KindIO, Op: "rename", Path: path, Err: err}
	}
	return nil
}

// createTemp is os.CreateTemp with a caller-chosen mode, subject to umask.
func createTemp(dir, prefix string, perm fs.FileMode) (*os.File, error) {
	for i := 0; i < 100; i++ {
		name := filepath.Join(dir, prefix+strconv.FormatUint(uint64(rand.Uint32()), 10))
		f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, perm)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		return f, err
	}
	return nil, &fs.PathError{Op: "createtemp", Path: filepath.Join(dir, prefix+"*"), Err: fs.ErrExist}
}

package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

type encodeFunc func(io.Writer, image.Image) error

func encoderFor(ext string) (encodeFunc, error) {
	switch strings.ToLower(ext) {
	case ".bmp":
		return bmp.Encode, nil
	case ".png":
		return png.Encode, nil
	default:
		return nil, fmt.Errorf("render: unsupported image format %q (use .bmp or .png)", ext)
	}
}

// Encode writes img in the format named by ext (".bmp" or ".png").
func Encode(w io.Writer, img image.Image, ext string) error {
	enc, err := encoderFor(ext)
	if err != nil {
		return err
	}
	return enc(w, img)
}

// WriteFile encodes img by the extension of path and returns the bytes written.
// The image is encoded to a temp file next to path and renamed into place, so a
// failed encode never leaves a partial image at path.
func WriteFile(path string, img image.Image) (int64, error) {
	enc, err := encoderFor(filepath.Ext(path))
	if err != nil {
		return 0, err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("render: create %s: %w", path, err)
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	cw := &countingWriter{w: f}
	if err := enc(cw, img); err != nil {
		_ = f.Close()
		return 0, fmt.Errorf("render: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("render: close %s: %w", path, err)
	}
	_ = os.Chmod(tmp, 0o644)
	if err := os.Rename(tmp, path); err != nil {
		return 0, fmt.Errorf("render: write %s: %w", path, err)
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

package encoder

import (
	"bytes"
	"image/jpeg"
)

// JPEGEncoder encodes frames to JPEG using Go's standard library. Alpha
// is dropped; the pipeline flattens onto a matte first.
type JPEGEncoder struct{}

func (e *JPEGEncoder) Format() string      { return "jpeg" }
func (e *JPEGEncoder) Extension() string   { return "jpg" }
func (e *JPEGEncoder) Available() bool     { return true }
func (e *JPEGEncoder) SupportsAlpha() bool { return false }

func (e *JPEGEncoder) Encode(f Frame) ([]byte, error) {
	quality := f.Quality
	if quality <= 0 || quality > 100 {
		quality = 90
	}

	var buf bytes.Buffer
	buf.Grow(128 * 1024)

	if err := jpeg.Encode(&buf, f.Image, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package encoder

import (
	"bytes"
	"image/png"
)

// PNGEncoder encodes frames to PNG using Go's standard library. Opaque
// quantized frames are written paletted.
type PNGEncoder struct{}

func (e *PNGEncoder) Format() string      { return "png" }
func (e *PNGEncoder) Extension() string   { return "png" }
func (e *PNGEncoder) Available() bool     { return true }
func (e *PNGEncoder) SupportsAlpha() bool { return true }

func (e *PNGEncoder) Encode(f Frame) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(64 * 1024)

	enc := &png.Encoder{CompressionLevel: png.BestCompression}
	var err error
	if pal := paletted(f, false); pal != nil {
		err = enc.Encode(&buf, pal)
	} else {
		err = enc.Encode(&buf, f.Image)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

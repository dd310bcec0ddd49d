package encoder

import (
	"bytes"
	"fmt"

	"github.com/HugoSmits86/nativewebp"
)

// WebPEncoder writes lossless WebP in pure Go.
type WebPEncoder struct{}

func (e *WebPEncoder) Format() string      { return "webp" }
func (e *WebPEncoder) Extension() string   { return "webp" }
func (e *WebPEncoder) Available() bool     { return true }
func (e *WebPEncoder) SupportsAlpha() bool { return true }

func (e *WebPEncoder) Encode(f Frame) ([]byte, error) {
	var buf bytes.Buffer
	if err := nativewebp.Encode(&buf, f.Image, nil); err != nil {
		return nil, fmt.Errorf("webp: %w", err)
	}
	return buf.Bytes(), nil
}

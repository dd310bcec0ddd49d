package encoder

import (
	"image"

	"github.com/DNS451/gray-level-cli/internal/posterize"
)

// Frame is one rendered image ready for encoding.
type Frame struct {
	Image *image.NRGBA
	// Table is the quantization table the image was built from, or nil
	// for passthrough output. Paletted encoders use it as their palette.
	Table   posterize.Table
	Quality int // 1-100, lossy formats only
}

// Encoder encodes a frame to a specific format.
type Encoder interface {
	// Format returns the output format name (e.g. "png", "webp", "raw").
	Format() string

	// Encode converts the frame to bytes.
	Encode(f Frame) ([]byte, error)

	// Available returns true if the encoder is ready to use.
	Available() bool

	// Extension returns the file extension without dot.
	Extension() string

	// SupportsAlpha reports whether transparency survives encoding.
	SupportsAlpha() bool
}

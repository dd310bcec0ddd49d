package posterize

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// Buffer is an owned, tightly packed RGBA8 pixel buffer (non-premultiplied,
// row-major, 4 bytes per pixel, no padding).
type Buffer struct {
	Width  int
	Height int
	Pix    []byte
}

// NewBuffer wraps pix after checking it holds exactly width*height*4 bytes.
// The slice is not copied.
func NewBuffer(width, height int, pix []byte) (*Buffer, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative dimensions %dx%d", ErrInvalidInput, width, height)
	}
	if width > 0 && height > math.MaxInt/4/width {
		return nil, fmt.Errorf("%w: %dx%d overflows the buffer size", ErrInvalidInput, width, height)
	}
	if want := width * height * 4; len(pix) != want {
		return nil, fmt.Errorf("%w: buffer is %d bytes, %dx%d needs %d",
			ErrInvalidInput, len(pix), width, height, want)
	}
	return &Buffer{Width: width, Height: height, Pix: pix}, nil
}

// FromImage copies any image into a Buffer.
func FromImage(img image.Image) *Buffer {
	n := imaging.Clone(img)
	b := n.Bounds()
	return &Buffer{Width: b.Dx(), Height: b.Dy(), Pix: n.Pix}
}

// Image returns an NRGBA view sharing the buffer's pixels.
func (b *Buffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Pix,
		Stride: b.Width * 4,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	pix := make([]byte, len(b.Pix))
	copy(pix, b.Pix)
	return &Buffer{Width: b.Width, Height: b.Height, Pix: pix}
}

func (b *Buffer) offset(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return 0, false
	}
	return (y*b.Width + x) * 4, true
}

// At returns the pixel at (x, y); ok is false outside the buffer.
func (b *Buffer) At(x, y int) (c color.NRGBA, ok bool) {
	i, ok := b.offset(x, y)
	if !ok {
		return color.NRGBA{}, false
	}
	p := b.Pix[i : i+4 : i+4]
	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}, true
}

// Set writes the pixel at (x, y) and reports whether it was in bounds.
func (b *Buffer) Set(x, y int, c color.NRGBA) bool {
	i, ok := b.offset(x, y)
	if !ok {
		return false
	}
	p := b.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
	return true
}

// HasAlpha reports whether any pixel is not fully opaque.
func (b *Buffer) HasAlpha() bool {
	for i := 3; i < len(b.Pix); i += 4 {
		if b.Pix[i] != 0xff {
			return true
		}
	}
	return false
}

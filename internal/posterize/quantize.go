package posterize

import (
	"fmt"
	"runtime"
	"sync"
)

// BT.601 luma weights scaled by 1000 so the bucket index can be computed
// in exact integer arithmetic; a white pixel always lands on the last
// level.
const (
	lumaR     = 299
	lumaG     = 587
	lumaB     = 114
	lumaScale = 255 * (lumaR + lumaG + lumaB)
)

// Quantizer applies a Table to pixel buffers. The zero value uses one
// worker per CPU.
type Quantizer struct {
	// Workers bounds the number of row bands processed in parallel.
	Workers int
}

// Quantize runs a default Quantizer.
func Quantize(src *Buffer, table Table) (*Buffer, error) {
	return Quantizer{}.Apply(src, table)
}

// QuantizeBytes is Quantize over a bare RGBA slice.
func QuantizeBytes(pix []byte, width, height int, table Table) ([]byte, error) {
	src, err := NewBuffer(width, height, pix)
	if err != nil {
		return nil, err
	}
	out, err := Quantize(src, table)
	if err != nil {
		return nil, err
	}
	return out.Pix, nil
}

// Index returns the table index for an RGB triple:
// floor(luma/255 * (levelCount-1)), clamped.
func Index(r, g, b uint8, levelCount int) int {
	if levelCount < 2 {
		return 0
	}
	luma := lumaR*int(r) + lumaG*int(g) + lumaB*int(b)
	idx := luma * (levelCount - 1) / lumaScale
	if idx < 0 {
		return 0
	}
	if idx > levelCount-1 {
		return levelCount - 1
	}
	return idx
}

// Apply returns a new buffer with every pixel's RGB replaced by the table
// entry for its luminance. Alpha is copied through. src is not modified.
func (q Quantizer) Apply(src *Buffer, table Table) (*Buffer, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil buffer", ErrInvalidInput)
	}
	if _, err := NewBuffer(src.Width, src.Height, src.Pix); err != nil {
		return nil, err
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrInvalidParameter)
	}

	dst := &Buffer{Width: src.Width, Height: src.Height, Pix: make([]byte, len(src.Pix))}
	if src.Height == 0 || src.Width == 0 {
		return dst, nil
	}

	// Precompute per-level RGB once; the inner loop is pure indexing.
	n := len(table)
	lut := make([][3]byte, n)
	for i, c := range table {
		lut[i] = [3]byte{c.R, c.G, c.B}
	}

	workers := q.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > src.Height {
		workers = src.Height
	}

	rowBytes := src.Width * 4
	rowsPer := (src.Height + workers - 1) / workers

	var wg sync.WaitGroup
	for y0 := 0; y0 < src.Height; y0 += rowsPer {
		y1 := min(y0+rowsPer, src.Height)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			s := src.Pix[lo:hi]
			d := dst.Pix[lo:hi]
			for i := 0; i+3 < len(s); i += 4 {
				e := lut[Index(s[i], s[i+1], s[i+2], n)]
				d[i] = e[0]
				d[i+1] = e[1]
				d[i+2] = e[2]
				d[i+3] = s[i+3]
			}
		}(y0*rowBytes, y1*rowBytes)
	}
	wg.Wait()

	return dst, nil
}

package encoder

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"

	"github.com/soniakeys/quant/median"
)

// GIFEncoder writes a single-frame GIF whose palette is the quantization
// table, so quantized frames convert without loss. Other frames are
// reduced by median cut.
type GIFEncoder struct{}

func (e *GIFEncoder) Format() string      { return "gif" }
func (e *GIFEncoder) Extension() string   { return "gif" }
func (e *GIFEncoder) Available() bool     { return true }
func (e *GIFEncoder) SupportsAlpha() bool { return true }

func (e *GIFEncoder) Encode(f Frame) ([]byte, error) {
	var buf bytes.Buffer

	pal := paletted(f, true)
	if pal == nil {
		pal = medianPaletted(f.Image)
	}
	if err := gif.Encode(&buf, pal, &gif.Options{NumColors: len(pal.Palette)}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// medianPaletted reduces a frame without a usable table to at most
// 256 colors by median cut.
func medianPaletted(img *image.NRGBA) *image.Paletted {
	b := img.Bounds()
	if b.Empty() {
		return image.NewPaletted(b, color.Palette{color.Black})
	}
	return median.Quantizer(gifColors).Paletted(img)
}

const gifColors = 256

// paletted converts a quantized frame to a paletted image indexed by its
// table. It returns nil when the frame has no table, when a pixel's
// color is not in the table, or when the frame has transparency and
// withAlpha is false. With withAlpha, pixels below half opacity map to
// an extra transparent entry.
func paletted(f Frame, withAlpha bool) *image.Paletted {
	if len(f.Table) == 0 || len(f.Table) > 255 || f.Image == nil {
		return nil
	}
	tp := f.Table.Palette()
	cp := append(color.Palette(nil), tp.ColorPalette()...)
	transparent := -1
	if hasAlpha(f.Image) {
		if !withAlpha {
			return nil
		}
		transparent = len(cp)
		cp = append(cp, color.RGBA{})
	}

	// Exact matches only; the lookup is memoized per RGB triple.
	index := make(map[[3]uint8]uint8, tp.Len())
	lookup := func(r, g, b uint8) (uint8, bool) {
		k := [3]uint8{r, g, b}
		if i, ok := index[k]; ok {
			return i, true
		}
		i := tp.IndexNear(color.RGBA{R: r, G: g, B: b, A: 0xff})
		e := f.Table[i]
		if e.R != r || e.G != g || e.B != b {
			return 0, false
		}
		index[k] = uint8(i)
		return uint8(i), true
	}

	src := f.Image
	b := src.Bounds()
	out := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), cp)
	for y := 0; y < b.Dy(); y++ {
		si := src.PixOffset(b.Min.X, b.Min.Y+y)
		di := out.PixOffset(0, y)
		for x := 0; x < b.Dx(); x++ {
			p := src.Pix[si : si+4 : si+4]
			if transparent >= 0 && p[3] < 0x80 {
				out.Pix[di] = uint8(transparent)
			} else {
				i, ok := lookup(p[0], p[1], p[2])
				if !ok {
					return nil
				}
				out.Pix[di] = i
			}
			si += 4
			di++
		}
	}
	return out
}

func hasAlpha(img *image.NRGBA) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := img.PixOffset(b.Min.X, y)
		for x := 0; x < b.Dx(); x++ {
			if img.Pix[i+3] != 0xff {
				return true
			}
			i += 4
		}
	}
	return false
}

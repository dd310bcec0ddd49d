package posterize

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/soniakeys/quant"
)

// Table is the ordered list of output colors, one per level. Entry i
// corresponds to position i/(len-1) on the curve.
type Table []color.RGBA

// BuildTable computes a fresh table for the given parameters.
func BuildTable(levelCount int, distribution float64, mode ChannelMode) (Table, error) {
	if levelCount < 2 {
		_, err := Intensity(0, levelCount, distribution)
		return nil, err
	}
	t := make(Table, levelCount)
	for i := range t {
		v, err := Intensity(i, levelCount, distribution)
		if err != nil {
			return nil, err
		}
		t[i] = ColorFor(v, mode)
	}
	return t, nil
}

// Len returns the level count the table was built for.
func (t Table) Len() int { return len(t) }

// Intensities returns the curve value behind each entry.
func (t Table) Intensities() []uint8 {
	out := make([]uint8, len(t))
	for i, c := range t {
		out[i] = max(c.R, c.G, c.B)
	}
	return out
}

// Equal reports whether two tables hold the same colors in the same order.
func (t Table) Equal(o Table) bool {
	if len(t) != len(o) {
		return false
	}
	for i := range t {
		if t[i] != o[i] {
			return false
		}
	}
	return true
}

// Hex renders every entry as #rrggbb.
func (t Table) Hex() []string {
	out := make([]string, len(t))
	for i, c := range t {
		cf, _ := colorful.MakeColor(c)
		out[i] = cf.Hex()
	}
	return out
}

// ColorPalette returns the entries as a standard palette.
func (t Table) ColorPalette() color.Palette {
	p := make(color.Palette, len(t))
	for i, c := range t {
		p[i] = c
	}
	return p
}

// Palette exposes the table as a quant.Palette for paletted encoders.
func (t Table) Palette() quant.Palette {
	return quant.LinearPalette{Palette: t.ColorPalette()}
}

// ParseHexTable is the inverse of Hex.
func ParseHexTable(entries []string) (Table, error) {
	t := make(Table, len(entries))
	for i, s := range entries {
		cf, err := colorful.Hex(s)
		if err != nil {
			return nil, err
		}
		r, g, b := cf.RGB255()
		t[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return t, nil
}

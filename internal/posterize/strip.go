package posterize

import (
	"image"

	"github.com/disintegration/imaging"
)

// Strip renders the table as a horizontal row of equal swatches, the
// preview shown next to a level count. Swatch widths absorb the
// remainder from left to right so the strip is exactly width wide.
func (t Table) Strip(width, height int) *image.NRGBA {
	if len(t) == 0 || width <= 0 || height <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}
	out := imaging.New(width, height, t[0])
	x := 0
	for i, c := range t {
		w := width / len(t)
		if i < width%len(t) {
			w++
		}
		if w == 0 {
			continue
		}
		out = imaging.Paste(out, imaging.New(w, height, c), image.Pt(x, 0))
		x += w
	}
	return out
}

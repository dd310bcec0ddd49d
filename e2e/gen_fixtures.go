//go:build ignore

// gen_fixtures writes the sample inputs used by smoke.sh.
// Usage: go run gen_fixtures.go <output_dir>
package main

import (
	"fmt"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/DNS451/gray-level-cli/internal/posterize"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: gen_fixtures <output_dir>")
		os.Exit(1)
	}
	dir := os.Args[1]
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Horizontal gray ramp: every level boundary shows up as a band edge.
	ramp := grayRamp(512, 64)
	if c, _ := ramp.At(0, 0); c.R != 0 {
		panic("ramp must start black")
	}
	if c, _ := ramp.At(511, 63); c.R != 255 {
		panic("ramp must end white")
	}
	writePNG(filepath.Join(dir, "ramp.png"), ramp)

	// Colored radial falloff, JPEG like a typical photo upload.
	writeJPEG(filepath.Join(dir, "sphere.jpg"), sphere(320, 240))

	// Logo with a transparent border, exercises matte flattening.
	writePNG(filepath.Join(dir, "logo.png"), framedLogo(120, 120))

	fmt.Fprintf(os.Stderr, "[gen_fixtures] created 3 fixtures in %s\n", dir)
}

func newBuffer(w, h int) *posterize.Buffer {
	b, err := posterize.NewBuffer(w, h, make([]byte, w*h*4))
	if err != nil {
		panic(err)
	}
	return b
}

func grayRamp(w, h int) *posterize.Buffer {
	img := newBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(x * 255 / (w - 1))
			img.Set(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

func sphere(w, h int) *posterize.Buffer {
	img := newBuffer(w, h)
	cx, cy := float64(w)/2, float64(h)/2
	r := math.Min(cx, cy)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := math.Hypot(float64(x)-cx, float64(y)-cy) / r
			l := math.Max(0, 1-d)
			img.Set(x, y, color.NRGBA{
				R: uint8(255 * l),
				G: uint8(180 * l * l),
				B: uint8(90 + 100*l),
				A: 255,
			})
		}
	}
	return img
}

func framedLogo(w, h int) *posterize.Buffer {
	img := newBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < 10 || x >= w-10 || y < 10 || y >= h-10 {
				continue // transparent
			}
			img.Set(x, y, color.NRGBA{R: 220, G: uint8(y * 2), B: 30, A: 255})
		}
	}
	return img
}

func writePNG(path string, b *posterize.Buffer) {
	img := b.Image()
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		panic(err)
	}
}

func writeJPEG(path string, b *posterize.Buffer) {
	img := b.Image()
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		panic(err)
	}
}

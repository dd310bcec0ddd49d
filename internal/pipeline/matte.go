package pipeline

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
)

// Mattes are the backgrounds a transparent frame can be flattened onto.
var mattes = map[string]color.NRGBA{
	"white": {0xff, 0xff, 0xff, 0xff},
	"gray":  {0x80, 0x80, 0x80, 0xff},
	"black": {0x00, 0x00, 0x00, 0xff},
}

// DefaultMatte is used when no matte is configured.
const DefaultMatte = "white"

// ParseMatte resolves a matte name. Empty selects DefaultMatte.
func ParseMatte(name string) (string, color.NRGBA, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultMatte
	}
	if name == "grey" {
		name = "gray"
	}
	c, ok := mattes[name]
	if !ok {
		return "", color.NRGBA{}, fmt.Errorf("unknown matte %q (want white, gray or black)", name)
	}
	return name, c, nil
}

// flatten composites img over an opaque matte.
func flatten(img *image.NRGBA, matte color.NRGBA) *image.NRGBA {
	b := img.Bounds()
	bg := imaging.New(b.Dx(), b.Dy(), matte)
	return imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)
}

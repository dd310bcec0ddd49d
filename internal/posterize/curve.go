// Package posterize maps luminance onto a small number of output levels
// spaced along a power curve, optionally isolated to one color channel.
//
// The table builder and the quantizer are pure: identical parameters
// always yield identical tables, and quantizing never touches the source.
package posterize

import (
	"fmt"
	"math"
)

// MinDistribution and MaxDistribution bound the user-facing distribution
// control. Exponent(0) is 1, the linear curve.
const (
	MinDistribution = -3.0
	MaxDistribution = 3.0
)

// Exponent converts a distribution value into the curve power 2^d.
func Exponent(distribution float64) float64 {
	return math.Pow(2, distribution)
}

// Intensity returns round((index/(levelCount-1))^(2^distribution) * 255).
//
// index is clamped into [0, levelCount-1]. Positive distributions push
// the lower levels toward black, negative ones toward white.
func Intensity(index, levelCount int, distribution float64) (uint8, error) {
	if levelCount < 2 {
		return 0, fmt.Errorf("%w: level count %d (min 2)", ErrInvalidParameter, levelCount)
	}
	if math.IsNaN(distribution) || math.IsInf(distribution, 0) {
		return 0, fmt.Errorf("%w: distribution %v", ErrInvalidParameter, distribution)
	}
	if index < 0 {
		index = 0
	}
	if index > levelCount-1 {
		index = levelCount - 1
	}

	x := float64(index) / float64(levelCount-1)
	v := math.Round(math.Pow(x, Exponent(distribution)) * 255)
	return clampUint8(v), nil
}

func clampUint8(v float64) uint8 {
	switch {
	case v <= 0 || math.IsNaN(v):
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}

package posterize

import (
	"image/color"
	"strings"
)

// ChannelMode selects how an intensity is written into an output color.
type ChannelMode uint8

const (
	Luminance ChannelMode = iota
	Red
	Green
	Blue
)

// Modes lists every channel mode in display order.
var Modes = []ChannelMode{Luminance, Red, Green, Blue}

func (m ChannelMode) String() string {
	switch m {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "gray"
	}
}

// ParseChannel maps a user-supplied name onto a mode. The second result
// reports whether the name was recognized; unknown names yield Luminance.
func ParseChannel(name string) (ChannelMode, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gray", "grey", "luminance", "l", "":
		return Luminance, true
	case "red", "r":
		return Red, true
	case "green", "g":
		return Green, true
	case "blue", "b":
		return Blue, true
	default:
		return Luminance, false
	}
}

// ColorFor writes intensity v into the channel(s) selected by mode.
// Unknown modes replicate v like Luminance.
func ColorFor(v uint8, mode ChannelMode) color.RGBA {
	switch mode {
	case Red:
		return color.RGBA{R: v, A: 0xff}
	case Green:
		return color.RGBA{G: v, A: 0xff}
	case Blue:
		return color.RGBA{B: v, A: 0xff}
	default:
		return color.RGBA{R: v, G: v, B: v, A: 0xff}
	}
}

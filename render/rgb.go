package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB is an opaque 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the default background
var RGBBlack = RGB{0, 0, 0}

// FromRGBA drops the alpha channel
func FromRGBA(c [4]uint8) RGB {
	return RGB{c[0], c[1], c[2]}
}

// Color converts to a tcell true color
func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Over composites a straight-alpha RGBA source onto an opaque background
// Terminal cells have no alpha, so translucent pens are flattened against the canvas color
func Over(src [4]uint8, bg RGB) RGB {
	a := float64(src[3]) / 255.0
	mix := func(s, d uint8) uint8 {
		return clamp(float64(s)*a + float64(d)*(1-a) + 0.5)
	}
	return RGB{
		R: mix(src[0], bg.R),
		G: mix(src[1], bg.G),
		B: mix(src[2], bg.B),
	}
}

// Package imop implements the composition operations used for
// mixing the icon artwork layers with their backdrop.
// The image/draw core package operates on 8 bit channels and quantizes
// every drawing operation separately, which accumulates rounding errors
// when a dozen translucent layers are stacked on top of each other.
// This package is aimed to overcome this limitation.

// It keeps each color channel as a floating point value across the whole
// composition pipeline and converts the final result to the 8 bit color
// space a single time, after the last layer has been applied.
package imop

import (
	"image/color"
	"math"

	"github.com/esimov/hunkicon/utils"
)

// Color is a non premultiplied RGB color with floating point channels,
// expressed in the 0-255 range.
type Color struct {
	R, G, B float64
}

// NewColor initializes a new Color.
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// FromRGBA converts an 8 bit RGBA color to its floating point representation,
// discarding the alpha component.
func FromRGBA(c color.NRGBA) Color {
	return Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

// Mix interpolates linearly between two colors,
// t=0 returning the first and t=1 the second one.
func Mix(c1, c2 Color, t float64) Color {
	return Color{
		R: c1.R + (c2.R-c1.R)*t,
		G: c1.G + (c2.G-c1.G)*t,
		B: c1.B + (c2.B-c1.B)*t,
	}
}

// Over composites src over the backdrop color with the given coverage,
// a=0 leaving the backdrop untouched and a=1 replacing it entirely.
func (c Color) Over(src Color, a float64) Color {
	return Mix(c, src, a)
}

// NRGBA quantizes the composited color to the 8 bit color space,
// applying the given alpha to the output pixel. Each channel is rounded
// to the nearest integer and clamped to the valid range.
func (c Color) NRGBA(a float64) color.NRGBA {
	return color.NRGBA{
		R: quantize(c.R),
		G: quantize(c.G),
		B: quantize(c.B),
		A: quantize(a * 255),
	}
}

// quantize converts a floating point channel to a byte value.
func quantize(v float64) uint8 {
	return uint8(utils.Clamp(math.Round(v), 0, 255))
}

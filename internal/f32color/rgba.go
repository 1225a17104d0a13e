// SPDX-License-Identifier: Unlicense OR MIT

// Package f32color implements color manipulation for the picker
// styles.
package f32color

import "image/color"

// MulAlpha applies the alpha to the color.
func MulAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = uint8(uint32(c.A) * uint32(alpha) / 0xFF)
	return c
}

// Disabled blends the color towards its luminance and makes it
// translucent, for widgets that do not accept input.
func Disabled(c color.NRGBA) color.NRGBA {
	const ratio = 80
	lum := approxLuminance(c)
	d := mix(c, color.NRGBA{R: lum, G: lum, B: lum, A: c.A}, ratio)
	return MulAlpha(d, 128+32)
}

// mix blends c2 into c1 by ratio percent.
func mix(c1, c2 color.NRGBA, ratio uint32) color.NRGBA {
	blend := func(a, b uint8) uint8 {
		return uint8((uint32(a)*(100-ratio) + uint32(b)*ratio) / 100)
	}
	return color.NRGBA{
		R: blend(c1.R, c2.R),
		G: blend(c1.G, c2.G),
		B: blend(c1.B, c2.B),
		A: blend(c1.A, c2.A),
	}
}

// approxLuminance is a fast approximate version of the relative
// luminance of an sRGB color.
func approxLuminance(c color.NRGBA) byte {
	const (
		r = 13933 // 0.2126 * 256 * 256
		g = 46871 // 0.7152 * 256 * 256
		b = 4732  // 0.0722 * 256 * 256
		t = r + g + b
	)
	return byte((r*int(c.R) + g*int(c.G) + b*int(c.B)) / t)
}

// SPDX-License-Identifier: Unlicense OR MIT

package f32color

import (
	"image/color"
	"testing"
)

func TestMulAlpha(t *testing.T) {
	c := color.NRGBA{R: 10, G: 20, B: 30, A: 0xFF}
	if got := MulAlpha(c, 0xFF); got != c {
		t.Errorf("opaque: got %v, want %v", got, c)
	}
	if got := MulAlpha(c, 0); got.A != 0 || got.R != c.R {
		t.Errorf("transparent: got %v", got)
	}
	if got := MulAlpha(color.NRGBA{A: 0x80}, 0x80).A; got != 0x40 {
		t.Errorf("half of half: got %#x, want 0x40", got)
	}
}

func TestDisabled(t *testing.T) {
	for _, c := range []color.NRGBA{
		{R: 0x3F, G: 0x51, B: 0xB5, A: 0xFF},
		{R: 0xFF, A: 0xFF},
		{A: 0x80},
	} {
		d := Disabled(c)
		if d.A >= c.A && c.A != 0 {
			t.Errorf("Disabled(%v) = %v is not more transparent", c, d)
		}
		lum := approxLuminance(c)
		for _, ch := range []uint8{d.R, d.G, d.B} {
			if diff(ch, lum) > diff(c.R, lum)+diff(c.G, lum)+diff(c.B, lum) {
				t.Errorf("Disabled(%v) = %v moved away from gray", c, d)
			}
		}
	}
	gray := color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
	if d := Disabled(gray); d.R != d.G || d.G != d.B {
		t.Errorf("gray stays gray: got %v", d)
	}
}

func diff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// SPDX-License-Identifier: Unlicense OR MIT

// Package density converts device independent sizes to pixels for
// displays of a given pixel density.
package density

import "gioui.org/unit"

// dpPrInch is the density of a medium density Android display, where
// a dp equals a pixel.
const dpPrInch = 160

// DpToPx converts v to pixels on a display of dpi dots per inch.
func DpToPx(dpi int, v unit.Dp) float32 {
	return float32(v) * float32(dpi) / dpPrInch
}

// Metric returns the Gio metric of a display with dpi dots per inch
// and sdpi dots per inch for scaled (text) sizes.
func Metric(dpi, sdpi int) unit.Metric {
	return unit.Metric{
		PxPerDp: float32(dpi) / dpPrInch,
		PxPerSp: float32(sdpi) / dpPrInch,
	}
}

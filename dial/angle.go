// SPDX-License-Identifier: Unlicense OR MIT

package dial

import (
	"math"

	"gioui.org/f32"
	"golang.org/x/exp/constraints"
)

const (
	// Turn is a full revolution in degrees.
	Turn = 360
	// AlmostTurn is the sweep of a filled dial. A sweep of exactly
	// Turn would collapse the arc to nothing.
	AlmostTurn = 359.99

	half = 180
	// jumpThreshold is the largest change of angle a single pointer
	// move may produce. Larger jumps are taken as crossing the seam.
	jumpThreshold = 270
	// filledClear is the lower bound of the band that clears the
	// filled flag.
	filledClear = 300
	// emptyClear is the upper bound of the band that clears the empty
	// flag.
	emptyClear = 60
	// remainder nudges drag sweeps so that AlmostTurn maps to the
	// maximum value.
	remainder = 0.01
)

// AngleFromPoint returns the bearing of target seen from origin, in
// degrees in the range [0, 360). 0 points up and angles increase
// clockwise.
func AngleFromPoint(target, origin f32.Point) float32 {
	dx := float64(target.X - origin.X)
	dy := float64(target.Y - origin.Y)
	angle := math.Atan2(dx, dy)*half/math.Pi + half
	if angle < 0 {
		angle += Turn
	}
	angle = Turn - angle
	if angle >= Turn {
		angle -= Turn
	}
	return float32(angle)
}

// Quantize truncates v to the nearest lower multiple of step. A
// non-positive step leaves v unchanged.
func Quantize[F constraints.Float](v, step F) F {
	if step <= 0 {
		return v
	}
	return v - F(math.Mod(float64(v), float64(step)))
}

// SweepFor returns the sweep angle displaying value on a dial with the
// given maximum.
func SweepFor(value, max float32) float32 {
	if max <= 0 {
		return 0
	}
	return value * Turn / max
}

// ValueFor returns the unquantized value displayed by sweep on a dial
// with the given maximum.
func ValueFor(sweep, max float32) float32 {
	if max <= 0 {
		return 0
	}
	return sweep * max / Turn
}

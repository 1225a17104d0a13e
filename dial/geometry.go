// SPDX-License-Identifier: Unlicense OR MIT

package dial

import (
	"image"
	"math"

	"gioui.org/f32"
)

// ShadowStart is the bearing where the shadow ring begins.
const ShadowStart = 90

// autoTextScale relates the radius to the label size when no text size
// is configured.
const autoTextScale = .3

// Geometry describes the rings of a dial laid out in a rectangle.
type Geometry struct {
	Center f32.Point
	// Radius and InnerRadius bound the progress ring.
	Radius, InnerRadius float32
	// ShadowOuter and ShadowInner bound the shadow ring.
	ShadowOuter, ShadowInner float32
}

// Measure lays out a dial of the given size. The progress ring is
// thickness wide; the shadow ring is inset from both its edges by
// innerThickness.
func Measure(size image.Point, thickness, innerThickness float32) Geometry {
	mid := f32.Pt(float32(size.X/2), float32(size.Y/2))
	r := mid.X
	if mid.Y < r {
		r = mid.Y
	}
	inner := r - thickness
	inset := thickness - innerThickness
	so, si := r-inset, inner+inset
	if so < si {
		so, si = si, so
	}
	return Geometry{
		Center:      mid,
		Radius:      r,
		InnerRadius: inner,
		ShadowOuter: so,
		ShadowInner: si,
	}
}

// TextSize returns the label size in pixels used when none is
// configured.
func (g Geometry) TextSize() float32 {
	return g.Radius * autoTextScale
}

// Pather receives path segments. *clip.Path from gioui.org/op/clip
// implements it.
type Pather interface {
	MoveTo(to f32.Point)
	LineTo(to f32.Point)
	CubeTo(ctrl0, ctrl1, to f32.Point)
	Close()
}

// Ring appends a closed ring segment around center to p. The segment
// lies between the radii outer and inner and spans sweep degrees
// clockwise from the bearing start. A zero sweep appends nothing.
func Ring(p Pather, center f32.Point, outer, inner, start, sweep float32) {
	if sweep == 0 {
		return
	}
	p.MoveTo(pointAt(center, outer, start))
	arc(p, center, outer, start, sweep)
	p.LineTo(pointAt(center, inner, start+sweep))
	arc(p, center, inner, start+sweep, -sweep)
	p.Close()
}

// arc appends cubic segments approximating a circular arc, starting at
// the current point.
func arc(p Pather, center f32.Point, r, start, sweep float32) {
	n := int(math.Ceil(math.Abs(float64(sweep)) / 90))
	if n < 1 {
		n = 1
	}
	step := float64(sweep) / float64(n) * math.Pi / half
	a := float64(start) * math.Pi / half
	k := 4.0 / 3.0 * math.Tan(step/4) * float64(r)
	for i := 0; i < n; i++ {
		b := a + step
		sa, ca := math.Sincos(a)
		sb, cb := math.Sincos(b)
		from := polar(center, r, sa, ca)
		to := polar(center, r, sb, cb)
		ctrl0 := f32.Pt(from.X+float32(k*ca), from.Y+float32(k*sa))
		ctrl1 := f32.Pt(to.X-float32(k*cb), to.Y-float32(k*sb))
		p.CubeTo(ctrl0, ctrl1, to)
		a = b
	}
}

// pointAt returns the point at bearing deg and distance r from center.
func pointAt(center f32.Point, r, deg float32) f32.Point {
	s, c := math.Sincos(float64(deg) * math.Pi / half)
	return polar(center, r, s, c)
}

func polar(center f32.Point, r float32, sin, cos float64) f32.Point {
	return f32.Pt(center.X+r*float32(sin), center.Y-r*float32(cos))
}

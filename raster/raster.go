// SPDX-License-Identifier: Unlicense OR MIT

/*
Package raster draws circular pickers into images, for previews and
platforms without a GPU.
*/
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"gioui.org/f32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/circled-gio/circled/dial"
)

// Style describes the appearance of a picker in pixels.
type Style struct {
	Color, SubColor, TextColor color.NRGBA
	// Thickness is the width of the progress ring.
	Thickness float32
	// InnerThickness is the margin between the progress ring and
	// the shadow ring.
	InnerThickness float32
	// TextSize is the label size. Zero scales the label with the
	// dial.
	TextSize float32
}

// Render returns a new image of the given size with d drawn into it.
func Render(size image.Point, d *dial.Dial, s Style) (*image.NRGBA, error) {
	img := image.NewNRGBA(image.Rectangle{Max: size})
	if err := Draw(img, d, s); err != nil {
		return nil, err
	}
	return img, nil
}

// Draw clears dst and draws d filling its bounds: the shadow ring, the
// progress ring and the centered label.
func Draw(dst draw.Image, d *dial.Dial, s Style) error {
	b := dst.Bounds()
	draw.Draw(dst, b, image.Transparent, image.Point{}, draw.Src)
	if b.Empty() {
		return nil
	}
	g := dial.Measure(b.Size(), s.Thickness, s.InnerThickness)
	fillRing(dst, s.SubColor, g.Center, g.ShadowOuter, g.ShadowInner, dial.ShadowStart, dial.AlmostTurn)
	fillRing(dst, s.Color, g.Center, g.Radius, g.InnerRadius, 0, d.Sweep())

	size := s.TextSize
	if size == 0 {
		size = g.TextSize()
	}
	if size < 1 {
		return nil
	}
	face, err := newFace(size)
	if err != nil {
		return err
	}
	defer face.Close()
	drawCentered(dst, face, s.TextColor, g.Center, d.Label())
	return nil
}

// rasterizer adapts a vector.Rasterizer to dial.Pather.
type rasterizer struct {
	*vector.Rasterizer
}

func (r rasterizer) MoveTo(to f32.Point) {
	r.Rasterizer.MoveTo(to.X, to.Y)
}

func (r rasterizer) LineTo(to f32.Point) {
	r.Rasterizer.LineTo(to.X, to.Y)
}

func (r rasterizer) CubeTo(ctrl0, ctrl1, to f32.Point) {
	r.Rasterizer.CubeTo(ctrl0.X, ctrl0.Y, ctrl1.X, ctrl1.Y, to.X, to.Y)
}

func (r rasterizer) Close() {
	r.Rasterizer.ClosePath()
}

// fillRing paints a ring segment, see dial.Ring. Center is relative to
// the bounds of dst.
func fillRing(dst draw.Image, c color.NRGBA, center f32.Point, outer, inner, start, sweep float32) {
	if sweep == 0 {
		return
	}
	b := dst.Bounds()
	vr := vector.NewRasterizer(b.Dx(), b.Dy())
	vr.DrawOp = draw.Over
	dial.Ring(rasterizer{Rasterizer: vr}, center, outer, inner, start, sweep)
	vr.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// drawCentered draws label with its bounding box centered on center.
func drawCentered(dst draw.Image, face font.Face, c color.NRGBA, center f32.Point, label string) {
	bounds, _ := font.BoundString(face, label)
	w := bounds.Max.X - bounds.Min.X
	h := bounds.Max.Y - bounds.Min.Y
	o := dst.Bounds().Min
	dot := fixed.Point26_6{
		X: fixed.I(o.X) + floatToFixed(center.X) - w/2 - bounds.Min.X,
		Y: fixed.I(o.Y) + floatToFixed(center.Y) + h/2,
	}
	dr := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  dot,
	}
	dr.DrawString(label)
}

func floatToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

var regular struct {
	once sync.Once
	font *opentype.Font
	err  error
}

// newFace returns a Go Regular face of size pixels.
func newFace(size float32) (font.Face, error) {
	regular.once.Do(func() {
		regular.font, regular.err = opentype.Parse(goregular.TTF)
	})
	if regular.err != nil {
		return nil, fmt.Errorf("raster: %w", regular.err)
	}
	face, err := opentype.NewFace(regular.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("raster: %w", err)
	}
	return face, nil
}

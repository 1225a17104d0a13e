// SPDX-License-Identifier: Unlicense OR MIT

package picker

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/circled-gio/circled/dial"
	"github.com/circled-gio/circled/internal/f32color"
)

// Style paints a Picker as a ring with a progress arc and a centered
// label.
type Style struct {
	// Color is the color of the progress ring.
	Color color.NRGBA
	// SubColor is the color of the shadow ring behind the progress.
	SubColor color.NRGBA
	// TextColor is the color of the label.
	TextColor color.NRGBA
	// Thickness is the width of the progress ring.
	Thickness unit.Dp
	// InnerThickness is the margin between the edges of the progress
	// ring and the shadow ring.
	InnerThickness unit.Dp
	// TextSize of the label. Zero scales the label with the dial.
	TextSize unit.Sp
	Font     font.Font
	Shaper   *text.Shaper
	Picker   *Picker
}

// Circled returns the default style of a picker.
func Circled(th *material.Theme, p *Picker) Style {
	return Style{
		Color:          th.Palette.ContrastBg,
		SubColor:       f32color.MulAlpha(th.Palette.ContrastBg, 96),
		TextColor:      th.Palette.ContrastBg,
		Thickness:      5,
		InnerThickness: 1,
		Shaper:         th.Shaper,
		Picker:         p,
	}
}

// ThicknessPx returns the width in pixels of the progress ring.
func (s Style) ThicknessPx(gtx layout.Context) int {
	return gtx.Dp(s.Thickness)
}

func (s Style) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Min
	if size.X == 0 || size.Y == 0 {
		d := gtx.Dp(unit.Dp(120))
		size = gtx.Constraints.Constrain(image.Pt(d, d))
	}
	gtx.Constraints = layout.Exact(size)
	s.Picker.Layout(gtx)

	col, sub, txt := s.Color, s.SubColor, s.TextColor
	if !gtx.Source.Enabled() {
		col, sub, txt = f32color.Disabled(col), f32color.Disabled(sub), f32color.Disabled(txt)
	}

	g := dial.Measure(size, float32(gtx.Dp(s.Thickness)), float32(gtx.Dp(s.InnerThickness)))
	fillRing(gtx.Ops, sub, g.Center, g.ShadowOuter, g.ShadowInner, dial.ShadowStart, dial.AlmostTurn)
	fillRing(gtx.Ops, col, g.Center, g.Radius, g.InnerRadius, 0, s.Picker.Sweep())

	if s.Shaper != nil {
		textSize := s.TextSize
		if textSize == 0 {
			textSize = gtx.Metric.PxToSp(int(g.TextSize()))
		}
		m := op.Record(gtx.Ops)
		paint.ColorOp{Color: txt}.Add(gtx.Ops)
		textMaterial := m.Stop()
		layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			l := widget.Label{Alignment: text.Middle, MaxLines: 1}
			return l.Layout(gtx, s.Shaper, s.Font, textSize, s.Picker.Label(), textMaterial)
		})
	}
	return layout.Dimensions{Size: size}
}

// fillRing paints a ring segment, see dial.Ring.
func fillRing(ops *op.Ops, c color.NRGBA, center f32.Point, outer, inner, start, sweep float32) {
	if sweep == 0 {
		return
	}
	var p clip.Path
	p.Begin(ops)
	dial.Ring(&p, center, outer, inner, start, sweep)
	paint.FillShape(ops, c, clip.Outline{Path: p.End()}.Op())
}

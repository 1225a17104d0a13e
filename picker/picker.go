// SPDX-License-Identifier: Unlicense OR MIT

package picker

import (
	"image"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"

	"github.com/circled-gio/circled/dial"
)

// touchSlop is the distance a pointer must travel horizontally before
// a gesture counts as a drag rather than a tap.
const touchSlop = unit.Dp(3)

// Picker is the state of a circular picker.
type Picker struct {
	dial    *dial.Dial
	center  f32.Point
	pressed bool
	// pending is set when the value was changed by the program
	// between frames.
	pending bool
	// animateTo holds a program requested animation until the next
	// frame supplies the time.
	animateTo *float32
}

// New returns a picker for the configuration.
func New(cfg dial.Config) *Picker {
	return &Picker{dial: dial.New(cfg)}
}

// Config returns the configuration of p.
func (p *Picker) Config() dial.Config {
	return p.dial.Config()
}

// Value returns the current value.
func (p *Picker) Value() float32 {
	return p.dial.Value()
}

// Sweep returns the angle in degrees of the progress arc.
func (p *Picker) Sweep() float32 {
	return p.dial.Sweep()
}

// Label returns the text shown in the center of the picker.
func (p *Picker) Label() string {
	return p.dial.Label()
}

// SetValue sets the value without animation.
func (p *Picker) SetValue(v float32) {
	p.animateTo = nil
	p.dial.SetValue(v)
	p.pending = true
}

// AnimateTo animates the picker to v, starting at the next frame.
// Callers outside a frame, or after the picker's Layout within a
// frame, must invalidate the window for the animation to start.
func (p *Picker) AnimateTo(v float32) {
	p.animateTo = &v
}

// Pressed reports whether a pointer is pressed on the picker.
func (p *Picker) Pressed() bool {
	return p.pressed
}

// Animating reports whether a tap animation is in flight.
func (p *Picker) Animating() bool {
	return p.dial.Animating() || p.animateTo != nil
}

// Update processes pointer events and advances the animation. It
// reports whether the value changed.
func (p *Picker) Update(gtx layout.Context) bool {
	old := p.dial.Value()
	changed := p.pending
	p.pending = false
	if v := p.animateTo; v != nil {
		p.animateTo = nil
		p.dial.AnimateTo(*v, gtx.Now)
	}
	slop := float32(gtx.Dp(touchSlop))
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: p,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Kind {
		case pointer.Press:
			if !(e.Buttons == pointer.ButtonPrimary || e.Source == pointer.Touch) {
				continue
			}
			p.pressed = true
			p.dial.Press(e.Position)
		case pointer.Drag:
			if !p.pressed {
				continue
			}
			p.dial.Move(e.Position, p.center, slop)
		case pointer.Release:
			if !p.pressed {
				continue
			}
			p.pressed = false
			p.dial.Release(e.Position, p.center, slop, gtx.Now)
		case pointer.Cancel:
			p.pressed = false
			p.dial.Cancel()
		}
	}
	if p.dial.Animating() {
		if p.dial.Tick(gtx.Now) {
			gtx.Execute(op.InvalidateCmd{})
		}
	}
	return changed || p.dial.Value() != old
}

// Layout updates p and declares its input area, the disc inscribed in
// the minimum constraints.
func (p *Picker) Layout(gtx layout.Context) layout.Dimensions {
	p.Update(gtx)
	size := gtx.Constraints.Min
	p.center = f32.Pt(float32(size.X/2), float32(size.Y/2))
	r := size.X / 2
	if size.Y/2 < r {
		r = size.Y / 2
	}
	c := image.Pt(size.X/2, size.Y/2)
	area := clip.Ellipse{Min: c.Sub(image.Pt(r, r)), Max: c.Add(image.Pt(r, r))}
	defer area.Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, p)
	return layout.Dimensions{Size: size}
}

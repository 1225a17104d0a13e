// SPDX-License-Identifier: Unlicense OR MIT

package picker_test

import (
	"image"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/font/gofont"
	"gioui.org/io/input"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/widget/material"

	"github.com/circled-gio/circled/dial"
	"github.com/circled-gio/circled/picker"
)

type harness struct {
	r   input.Router
	gtx layout.Context
	p   *picker.Picker
}

func newHarness(cfg dial.Config) *harness {
	h := &harness{p: picker.New(cfg)}
	h.gtx = layout.Context{
		Ops:         new(op.Ops),
		Source:      h.r.Source(),
		Constraints: layout.Exact(image.Pt(200, 200)),
		Now:         time.Unix(0, 0),
	}
	return h
}

// frame lays out the picker and reports whether its value changed.
func (h *harness) frame() bool {
	h.gtx.Ops.Reset()
	changed := h.p.Update(h.gtx)
	h.p.Layout(h.gtx)
	h.r.Frame(h.gtx.Ops)
	return changed
}

func touch(kind pointer.Kind, x, y float32) pointer.Event {
	return pointer.Event{
		Source:   pointer.Touch,
		Kind:     kind,
		Position: f32.Pt(x, y),
	}
}

func TestPickerTap(t *testing.T) {
	h := newHarness(dial.DefaultConfig())
	h.frame()
	h.r.Queue(
		touch(pointer.Press, 190, 100),
		touch(pointer.Release, 190, 100),
	)
	h.frame()
	if !h.p.Animating() {
		t.Fatal("tap did not start an animation")
	}
	h.gtx.Now = h.gtx.Now.Add(dial.TapDuration)
	if !h.frame() {
		t.Error("animation frame did not report a change")
	}
	if h.p.Animating() {
		t.Error("animation still running")
	}
	if got, want := h.p.Value(), float32(25); got != want {
		t.Errorf("value: got %v, want %v", got, want)
	}
	if got, want := h.p.Label(), "25"; got != want {
		t.Errorf("label: got %q, want %q", got, want)
	}
}

func TestPickerDrag(t *testing.T) {
	h := newHarness(dial.DefaultConfig())
	h.frame()
	h.r.Queue(
		touch(pointer.Press, 100, 10),
		touch(pointer.Move, 160, 40),
		touch(pointer.Move, 190, 100),
	)
	if h.frame(); h.p.Value() != 25 {
		t.Errorf("value after drag: got %v, want 25", h.p.Value())
	}
	if !h.p.Pressed() {
		t.Error("picker not pressed during drag")
	}
	h.r.Queue(touch(pointer.Release, 190, 100))
	h.frame()
	if h.p.Pressed() || h.p.Animating() {
		t.Errorf("got pressed=%v animating=%v after drag release", h.p.Pressed(), h.p.Animating())
	}
	if got := h.p.Value(); got != 25 {
		t.Errorf("value after release: got %v, want 25", got)
	}
}

func TestPickerDragAcrossSeam(t *testing.T) {
	h := newHarness(dial.DefaultConfig())
	h.frame()
	h.r.Queue(touch(pointer.Press, 100, 15))
	// Clockwise around the center, crossing 12 o'clock at the end.
	for _, pt := range []f32.Point{
		{X: 120, Y: 16},
		{X: 185, Y: 100},
		{X: 95, Y: 185},
		{X: 15, Y: 100},
		{X: 40, Y: 40},
		{X: 90, Y: 16},
		{X: 130, Y: 20},
	} {
		h.r.Queue(touch(pointer.Move, pt.X, pt.Y))
	}
	h.frame()
	if got, want := h.p.Value(), h.p.Config().Max; got != want {
		t.Errorf("value after crossing the seam: got %v, want %v", got, want)
	}
	if got := h.p.Sweep(); got != dial.AlmostTurn {
		t.Errorf("sweep: got %v, want %v", got, dial.AlmostTurn)
	}
}

func TestPickerCancel(t *testing.T) {
	h := newHarness(dial.DefaultConfig())
	h.frame()
	h.r.Queue(touch(pointer.Press, 190, 100))
	h.frame()
	if !h.p.Pressed() {
		t.Fatal("press not registered")
	}
	h.r.Queue(pointer.Event{Kind: pointer.Cancel})
	h.frame()
	if h.p.Pressed() {
		t.Error("picker still pressed after cancel")
	}
	if h.p.Animating() {
		t.Error("cancel started an animation")
	}
	if got := h.p.Value(); got != 0 {
		t.Errorf("value after cancel: got %v, want 0", got)
	}
}

func TestPickerProgrammatic(t *testing.T) {
	h := newHarness(dial.Config{Max: 24 * 60, Step: 5, Mode: dial.TimeOfDay})
	h.p.SetValue(127)
	if !h.frame() {
		t.Error("SetValue not reported as a change")
	}
	if got, want := h.p.Label(), "02:05"; got != want {
		t.Errorf("label: got %q, want %q", got, want)
	}
	if h.frame() {
		t.Error("idle frame reported a change")
	}
	h.p.AnimateTo(720)
	h.frame()
	h.gtx.Now = h.gtx.Now.Add(time.Second)
	h.frame()
	if got, want := h.p.Label(), "12:00"; got != want {
		t.Errorf("label after animation: got %q, want %q", got, want)
	}
}

func TestStyleLayout(t *testing.T) {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	p := picker.New(dial.DefaultConfig())
	p.SetValue(40)
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(image.Pt(300, 200)),
	}
	s := picker.Circled(th, p)
	if got := s.Layout(gtx).Size; got != image.Pt(300, 200) {
		t.Errorf("size: got %v, want (300,200)", got)
	}
	if got, want := s.ThicknessPx(gtx), 5; got != want {
		t.Errorf("thickness: got %d, want %d", got, want)
	}
	gtx.Constraints = layout.Constraints{Max: image.Pt(1000, 1000)}
	if got := s.Layout(gtx).Size; got != image.Pt(120, 120) {
		t.Errorf("unconstrained size: got %v, want (120,120)", got)
	}
}

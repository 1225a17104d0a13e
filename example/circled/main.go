// SPDX-License-Identifier: Unlicense OR MIT

package main

// A window with circular pickers in each label mode. Pass -attrs to
// configure the first picker from a TOML file.

import (
	"flag"
	"image"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/circled-gio/circled/attr"
	"github.com/circled-gio/circled/dial"
	"github.com/circled-gio/circled/picker"
)

var attrs = flag.String("attrs", "", "TOML file with attributes of the first picker")

type entry struct {
	style picker.Style
	reset widget.Clickable
}

func main() {
	flag.Parse()
	go func() {
		w := new(app.Window)
		w.Option(app.Title("Circled"), app.Size(unit.Dp(480), unit.Dp(720)))
		if err := loop(w); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loop(w *app.Window) error {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

	first, err := configured(th)
	if err != nil {
		return err
	}
	entries := []*entry{first}
	for _, cfg := range []dial.Config{
		{Max: 1440, Step: 5, Mode: dial.TimeOfDay},
		{Max: 600, Step: 15, Mode: dial.HoursMinutes},
		{Max: 100, Step: 1, Mode: dial.Percent},
	} {
		entries = append(entries, &entry{style: picker.Circled(th, picker.New(cfg))})
	}
	list := &widget.List{List: layout.List{Axis: layout.Vertical}}

	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			for _, en := range entries {
				if en.reset.Clicked(gtx) {
					en.style.Picker.AnimateTo(0)
				}
			}
			material.List(th, list).Layout(gtx, len(entries), func(gtx layout.Context, i int) layout.Dimensions {
				return layoutEntry(gtx, th, entries[i])
			})
			e.Frame(gtx.Ops)
		}
	}
}

// configured returns the first entry, styled by the -attrs file if
// given.
func configured(th *material.Theme) (*entry, error) {
	a := attr.Default()
	if *attrs != "" {
		var err error
		if a, err = attr.Load(*attrs); err != nil {
			return nil, err
		}
	}
	v, err := a.Resolve()
	if err != nil {
		return nil, err
	}
	s := picker.Circled(th, picker.New(v.Config))
	v.Apply(&s)
	return &entry{style: s}, nil
}

func layoutEntry(gtx layout.Context, th *material.Theme, en *entry) layout.Dimensions {
	return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				sz := gtx.Dp(unit.Dp(160))
				gtx.Constraints = layout.Exact(image.Pt(sz, sz))
				return en.style.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(24)}.Layout),
			layout.Rigid(material.Button(th, &en.reset, "Reset").Layout),
		)
	})
}

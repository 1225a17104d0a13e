// SPDX-License-Identifier: Unlicense OR MIT

/*
Package attr reads the construction attributes of a circular picker
from TOML documents:

	line_color = "#3F51B5"
	sub_line_color = "#C5CAE9"
	text_color = "#3F51B5"
	step = 5
	max_value = 1440
	text_size = 0       # sp, 0 scales the label with the dial
	outer_thickness = 5 # dp
	inner_thickness = 1 # dp
	picker_mode = "minutes"

Keys missing from a document keep their defaults.
*/
package attr

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gioui.org/unit"
	"github.com/pelletier/go-toml/v2"

	"github.com/circled-gio/circled/dial"
	"github.com/circled-gio/circled/picker"
	"github.com/circled-gio/circled/raster"
)

// Attrs are the raw attributes of a picker.
type Attrs struct {
	LineColor      string `toml:"line_color"`
	SubLineColor   string `toml:"sub_line_color"`
	TextColor      string `toml:"text_color"`
	Step           int    `toml:"step"`
	MaxValue       int    `toml:"max_value"`
	TextSize       int    `toml:"text_size"`
	OuterThickness int    `toml:"outer_thickness"`
	InnerThickness int    `toml:"inner_thickness"`
	PickerMode     string `toml:"picker_mode"`
}

// Values are resolved attributes.
type Values struct {
	Config         dial.Config
	LineColor      color.NRGBA
	SubLineColor   color.NRGBA
	TextColor      color.NRGBA
	TextSize       unit.Sp
	OuterThickness unit.Dp
	InnerThickness unit.Dp
}

const (
	defaultLineColor    = "#3F51B5"
	defaultSubLineColor = "#C5CAE9"
)

// Default returns the attributes of a picker without configuration.
// An empty TextColor follows LineColor.
func Default() Attrs {
	return Attrs{
		LineColor:      defaultLineColor,
		SubLineColor:   defaultSubLineColor,
		Step:           1,
		MaxValue:       100,
		OuterThickness: 5,
		InnerThickness: 1,
	}
}

// Parse decodes a TOML document over the defaults.
func Parse(data []byte) (Attrs, error) {
	a := Default()
	if err := toml.Unmarshal(data, &a); err != nil {
		return Attrs{}, fmt.Errorf("attr: %w", err)
	}
	return a, nil
}

// Load reads and parses the TOML file at path.
func Load(path string) (Attrs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Attrs{}, fmt.Errorf("attr: %w", err)
	}
	return Parse(data)
}

// Resolve validates the attributes and converts them to typed values.
func (a Attrs) Resolve() (Values, error) {
	line, err := ParseColor(a.LineColor)
	if err != nil {
		return Values{}, fmt.Errorf("attr: line_color: %w", err)
	}
	sub, err := ParseColor(a.SubLineColor)
	if err != nil {
		return Values{}, fmt.Errorf("attr: sub_line_color: %w", err)
	}
	txt := line
	if a.TextColor != "" {
		txt, err = ParseColor(a.TextColor)
		if err != nil {
			return Values{}, fmt.Errorf("attr: text_color: %w", err)
		}
	}
	if a.TextSize < 0 || a.OuterThickness < 0 || a.InnerThickness < 0 {
		return Values{}, errors.New("attr: negative size")
	}
	return Values{
		Config: dial.Config{
			Max:  float32(a.MaxValue),
			Step: float32(a.Step),
			Mode: dial.ParseMode(a.PickerMode),
		},
		LineColor:      line,
		SubLineColor:   sub,
		TextColor:      txt,
		TextSize:       unit.Sp(a.TextSize),
		OuterThickness: unit.Dp(a.OuterThickness),
		InnerThickness: unit.Dp(a.InnerThickness),
	}, nil
}

// Apply sets the visual attributes of s.
func (v Values) Apply(s *picker.Style) {
	s.Color = v.LineColor
	s.SubColor = v.SubLineColor
	s.TextColor = v.TextColor
	s.TextSize = v.TextSize
	s.Thickness = v.OuterThickness
	s.InnerThickness = v.InnerThickness
}

// Raster returns the style for drawing into images at the given
// metric.
func (v Values) Raster(m unit.Metric) raster.Style {
	return raster.Style{
		Color:          v.LineColor,
		SubColor:       v.SubLineColor,
		TextColor:      v.TextColor,
		Thickness:      float32(m.Dp(v.OuterThickness)),
		InnerThickness: float32(m.Dp(v.InnerThickness)),
		TextSize:       float32(m.Sp(v.TextSize)),
	}
}

// ParseColor parses a color in the forms #RGB, #ARGB, #RRGGBB or
// #AARRGGBB.
func ParseColor(s string) (color.NRGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	switch len(hex) {
	case 3, 4:
		var b strings.Builder
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		hex = b.String()
	case 6, 8:
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		hex = "ff" + hex
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return color.NRGBA{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

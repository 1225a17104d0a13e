// SPDX-License-Identifier: Unlicense OR MIT

package attr

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"gioui.org/unit"

	"github.com/circled-gio/circled/dial"
	"github.com/circled-gio/circled/picker"
)

func TestDefaults(t *testing.T) {
	a, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	v, err := a.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if v.Config != dial.DefaultConfig() {
		t.Errorf("config: got %+v, want %+v", v.Config, dial.DefaultConfig())
	}
	indigo := color.NRGBA{R: 0x3F, G: 0x51, B: 0xB5, A: 0xFF}
	if v.LineColor != indigo || v.TextColor != indigo {
		t.Errorf("colors: got line %v text %v, want %v", v.LineColor, v.TextColor, indigo)
	}
	if v.OuterThickness != 5 || v.InnerThickness != 1 || v.TextSize != 0 {
		t.Errorf("sizes: got %v %v %v", v.OuterThickness, v.InnerThickness, v.TextSize)
	}
}

func TestParse(t *testing.T) {
	doc := `
line_color = "#80ff0000"
text_color = "#0f0"
step = 5
max_value = 1440
text_size = 18
picker_mode = "MINUTES"
`
	a, err := Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	v, err := a.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	want := dial.Config{Max: 1440, Step: 5, Mode: dial.TimeOfDay}
	if v.Config != want {
		t.Errorf("config: got %+v, want %+v", v.Config, want)
	}
	if got, want := v.LineColor, (color.NRGBA{R: 0xFF, A: 0x80}); got != want {
		t.Errorf("line color: got %v, want %v", got, want)
	}
	if got, want := v.TextColor, (color.NRGBA{G: 0xFF, A: 0xFF}); got != want {
		t.Errorf("text color: got %v, want %v", got, want)
	}
	// Unset keys keep their defaults.
	if v.OuterThickness != 5 {
		t.Errorf("outer thickness: got %v, want 5", v.OuterThickness)
	}

	var s picker.Style
	v.Apply(&s)
	if s.TextSize != 18 || s.Color != v.LineColor || s.Thickness != 5 {
		t.Errorf("applied style: %+v", s)
	}
	r := v.Raster(unit.Metric{PxPerDp: 2, PxPerSp: 2})
	if r.Thickness != 10 || r.InnerThickness != 2 || r.TextSize != 36 {
		t.Errorf("raster style: %+v", r)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "picker.toml")
	if err := os.WriteFile(path, []byte(`picker_mode = "hours"`), 0o644); err != nil {
		t.Fatal(err)
	}
	a, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := dial.ParseMode(a.PickerMode); got != dial.HoursMinutes {
		t.Errorf("mode: got %v, want hours", got)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file: expected error")
	}
}

func TestInvalid(t *testing.T) {
	for _, doc := range []string{
		`line_color = "red"`,
		`sub_line_color = "#12345"`,
		`text_color = "#gggggg"`,
		`outer_thickness = -1`,
	} {
		a, err := Parse([]byte(doc))
		if err != nil {
			t.Errorf("%s: unexpected parse error: %v", doc, err)
			continue
		}
		if _, err := a.Resolve(); err == nil {
			t.Errorf("%s: expected error", doc)
		}
	}
	if _, err := Parse([]byte(`step = "five"`)); err == nil {
		t.Error("mistyped step: expected error")
	}
}

func TestParseColor(t *testing.T) {
	for in, want := range map[string]color.NRGBA{
		"#fff":      {R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		"#8f00":     {R: 0xFF, A: 0x88},
		"#3F51B5":   {R: 0x3F, G: 0x51, B: 0xB5, A: 0xFF},
		"#00000000": {},
	} {
		got, err := ParseColor(in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseColor(%q): got %v, want %v", in, got, want)
		}
	}
}

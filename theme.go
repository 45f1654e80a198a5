package hunkicon

import (
	"fmt"
	"math"

	"github.com/esimov/hunkicon/imop"
)

// Theme holds the complete color palette of a rendered icon.
// All the variants share the same geometry, a theme only decides which
// colors the layers are composited with. The alpha fields control the
// coverage of their paired layer and must stay inside the 0-1 range.
type Theme struct {
	BgTop    imop.Color
	BgBottom imop.Color
	BgGlow   imop.Color

	Panel      imop.Color
	PanelAlpha float64

	Divider      imop.Color
	DividerAlpha float64

	MinusMain imop.Color
	PlusMain  imop.Color
	MinusSoft imop.Color
	PlusSoft  imop.Color

	Branch     imop.Color
	BranchGlow imop.Color

	Border      imop.Color
	BorderAlpha float64
}

// DefaultTheme is the vivid blue palette used as the primary app icon.
var DefaultTheme = &Theme{
	BgTop:    imop.Color{R: 35, G: 92, B: 224},
	BgBottom: imop.Color{R: 19, G: 42, B: 114},
	BgGlow:   imop.Color{R: 120, G: 188, B: 255},

	Panel:      imop.Color{R: 8, G: 16, B: 34},
	PanelAlpha: 0.66,

	Divider:      imop.Color{R: 168, G: 192, B: 245},
	DividerAlpha: 0.34,

	MinusMain: imop.Color{R: 255, G: 96, B: 116},
	PlusMain:  imop.Color{R: 86, G: 230, B: 148},
	MinusSoft: imop.Color{R: 255, G: 145, B: 162},
	PlusSoft:  imop.Color{R: 132, G: 243, B: 180},

	Branch:     imop.Color{R: 242, G: 248, B: 255},
	BranchGlow: imop.Color{R: 150, G: 216, B: 255},

	Border:      imop.Color{R: 198, G: 222, B: 255},
	BorderAlpha: 0.35,
}

// DarkTheme is a desaturated palette for dark dock and taskbar backgrounds.
var DarkTheme = &Theme{
	BgTop:    imop.Color{R: 18, G: 22, B: 32},
	BgBottom: imop.Color{R: 7, G: 9, B: 14},
	BgGlow:   imop.Color{R: 52, G: 84, B: 150},

	Panel:      imop.Color{R: 22, G: 27, B: 42},
	PanelAlpha: 0.82,

	Divider:      imop.Color{R: 141, G: 161, B: 207},
	DividerAlpha: 0.28,

	MinusMain: imop.Color{R: 255, G: 114, B: 138},
	PlusMain:  imop.Color{R: 101, G: 235, B: 162},
	MinusSoft: imop.Color{R: 255, G: 153, B: 172},
	PlusSoft:  imop.Color{R: 144, G: 244, B: 188},

	Branch:     imop.Color{R: 230, G: 238, B: 255},
	BranchGlow: imop.Color{R: 96, G: 132, B: 208},

	Border:      imop.Color{R: 120, G: 146, B: 195},
	BorderAlpha: 0.42,
}

// MonoTheme is a grayscale palette used for template style icons.
var MonoTheme = &Theme{
	BgTop:    imop.Color{R: 28, G: 28, B: 31},
	BgBottom: imop.Color{R: 14, G: 14, B: 16},
	BgGlow:   imop.Color{R: 86, G: 86, B: 90},

	Panel:      imop.Color{R: 0, G: 0, B: 0},
	PanelAlpha: 0.44,

	Divider:      imop.Color{R: 205, G: 205, B: 212},
	DividerAlpha: 0.3,

	MinusMain: imop.Color{R: 235, G: 235, B: 235},
	PlusMain:  imop.Color{R: 235, G: 235, B: 235},
	MinusSoft: imop.Color{R: 188, G: 188, B: 196},
	PlusSoft:  imop.Color{R: 188, G: 188, B: 196},

	Branch:     imop.Color{R: 255, G: 255, B: 255},
	BranchGlow: imop.Color{R: 190, G: 190, B: 190},

	Border:      imop.Color{R: 224, G: 224, B: 228},
	BorderAlpha: 0.34,
}

// Variant pairs a theme with the name it is rendered under.
// The name ends up in the output file name of the generated icon.
type Variant struct {
	Name  string
	Theme *Theme
}

// Variants returns the built-in themes in their rendering order.
func Variants() []Variant {
	return []Variant{
		{Name: "default", Theme: DefaultTheme},
		{Name: "dark", Theme: DarkTheme},
		{Name: "mono", Theme: MonoTheme},
	}
}

// Validate checks that every color channel of the theme holds a finite
// value and that the layer alphas stay inside the 0-1 range.
func (t *Theme) Validate() error {
	colors := []struct {
		name  string
		color imop.Color
	}{
		{"bg_top", t.BgTop},
		{"bg_bottom", t.BgBottom},
		{"bg_glow", t.BgGlow},
		{"panel", t.Panel},
		{"divider", t.Divider},
		{"minus_main", t.MinusMain},
		{"plus_main", t.PlusMain},
		{"minus_soft", t.MinusSoft},
		{"plus_soft", t.PlusSoft},
		{"branch", t.Branch},
		{"branch_glow", t.BranchGlow},
		{"border", t.Border},
	}
	for _, c := range colors {
		for _, v := range []float64{c.color.R, c.color.G, c.color.B} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("the %s theme color holds a non finite channel", c.name)
			}
		}
	}

	alphas := []struct {
		name  string
		value float64
	}{
		{"panel", t.PanelAlpha},
		{"divider", t.DividerAlpha},
		{"border", t.BorderAlpha},
	}
	for _, a := range alphas {
		if math.IsNaN(a.value) || a.value < 0 || a.value > 1 {
			return fmt.Errorf("the %s alpha should be defined in the 0-1 range", a.name)
		}
	}

	return nil
}

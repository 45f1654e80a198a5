package hunkicon

import (
	"fmt"
	"log"
	"os"

	"github.com/BurntSushi/toml"
	"golang.org/x/exp/slices"

	"github.com/esimov/hunkicon/imop"
	"github.com/esimov/hunkicon/utils"
)

// themeConfig mirrors a single theme table of the configuration file.
// Colors are expressed in hexadecimal notation and every field is optional,
// an omitted one inheriting its value from the default theme.
type themeConfig struct {
	BgTop    string `toml:"bg_top"`
	BgBottom string `toml:"bg_bottom"`
	BgGlow   string `toml:"bg_glow"`

	Panel      string   `toml:"panel"`
	PanelAlpha *float64 `toml:"panel_alpha"`

	Divider      string   `toml:"divider"`
	DividerAlpha *float64 `toml:"divider_alpha"`

	MinusMain string `toml:"minus_main"`
	PlusMain  string `toml:"plus_main"`
	MinusSoft string `toml:"minus_soft"`
	PlusSoft  string `toml:"plus_soft"`

	Branch     string `toml:"branch"`
	BranchGlow string `toml:"branch_glow"`

	Border      string   `toml:"border"`
	BorderAlpha *float64 `toml:"border_alpha"`
}

type config struct {
	Themes map[string]themeConfig `toml:"themes"`
}

// LoadConfig reads the TOML theme configuration from a local path or URL
// and returns the custom variants defined in it, sorted by their name.
func LoadConfig(path string) ([]Variant, error) {
	if utils.IsValidUrl(path) {
		f, err := utils.DownloadFile(path)
		if f != nil {
			defer os.Remove(f.Name())
		}
		if err != nil {
			return nil, fmt.Errorf("could not retrieve the configuration file: %w", err)
		}
		if err := f.Close(); err != nil {
			log.Printf("could not close the downloaded file: %v", err)
		}
		path = f.Name()
	}

	var cfg config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("could not decode the configuration file: %w", err)
	}

	names := make([]string, 0, len(cfg.Themes))
	for name := range cfg.Themes {
		names = append(names, name)
	}
	slices.Sort(names)

	variants := make([]Variant, 0, len(names))
	for _, name := range names {
		t, err := cfg.Themes[name].toTheme()
		if err != nil {
			return nil, fmt.Errorf("invalid %q theme: %w", name, err)
		}
		variants = append(variants, Variant{Name: name, Theme: t})
	}
	return variants, nil
}

// toTheme overlays the configured fields on top of the default palette.
func (tc themeConfig) toTheme() (*Theme, error) {
	t := *DefaultTheme

	colors := []struct {
		hex string
		dst *imop.Color
	}{
		{tc.BgTop, &t.BgTop},
		{tc.BgBottom, &t.BgBottom},
		{tc.BgGlow, &t.BgGlow},
		{tc.Panel, &t.Panel},
		{tc.Divider, &t.Divider},
		{tc.MinusMain, &t.MinusMain},
		{tc.PlusMain, &t.PlusMain},
		{tc.MinusSoft, &t.MinusSoft},
		{tc.PlusSoft, &t.PlusSoft},
		{tc.Branch, &t.Branch},
		{tc.BranchGlow, &t.BranchGlow},
		{tc.Border, &t.Border},
	}
	for _, c := range colors {
		if c.hex == "" {
			continue
		}
		rgba, err := utils.HexToRGBA(c.hex)
		if err != nil {
			return nil, err
		}
		*c.dst = imop.FromRGBA(rgba)
	}

	if tc.PanelAlpha != nil {
		t.PanelAlpha = *tc.PanelAlpha
	}
	if tc.DividerAlpha != nil {
		t.DividerAlpha = *tc.DividerAlpha
	}
	if tc.BorderAlpha != nil {
		t.BorderAlpha = *tc.BorderAlpha
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// mergeVariants overlays the custom variants on top of the built-in ones.
// A custom variant sharing its name with a built-in theme replaces it, the
// remaining ones are appended after the built-ins in their sorted order.
func mergeVariants(builtin, custom []Variant) []Variant {
	merged := slices.Clone(builtin)

	for _, c := range custom {
		idx := slices.IndexFunc(merged, func(v Variant) bool {
			return v.Name == c.Name
		})
		if idx >= 0 {
			merged[idx] = c
		} else {
			merged = append(merged, c)
		}
	}
	return merged
}

// Package config holds the command line options and the color palettes.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// A Palette is the set of colors one theme renders with. Values are any
// color string lipgloss understands (ANSI index or hex).
type Palette struct {
	Accent    string `yaml:"accent,omitempty"`
	Secondary string `yaml:"secondary,omitempty"`
	Positive  string `yaml:"positive,omitempty"`
	Negative  string `yaml:"negative,omitempty"`
	Text      string `yaml:"text,omitempty"`
	Muted     string `yaml:"muted,omitempty"`
	Border    string `yaml:"border,omitempty"`
	Highlight string `yaml:"highlight,omitempty"`
}

// Palettes is the layout of a palette file.
type Palettes struct {
	Dark  Palette `yaml:"dark"`
	Light Palette `yaml:"light"`
}

type paletteFile struct {
	Palettes Palettes `yaml:"palettes"`
}

func DefaultPalettes() Palettes {
	return Palettes{
		Dark: Palette{
			Accent:    "#d97706",
			Secondary: "#3b82f6",
			Positive:  "#10b981",
			Negative:  "#ef4444",
			Text:      "#f3f4f6",
			Muted:     "#9ca3af",
			Border:    "#374151",
			Highlight: "#374151",
		},
		Light: Palette{
			Accent:    "#d97706",
			Secondary: "#3b82f6",
			Positive:  "#059669",
			Negative:  "#dc2626",
			Text:      "#1f2937",
			Muted:     "#6b7280",
			Border:    "#fcd34d",
			Highlight: "#fef3c7",
		},
	}
}

// ParsePalettesAugmentDefaults reads a palette file and fills every color
// it leaves out from the defaults.
func ParsePalettesAugmentDefaults(yamlData []byte) (Palettes, error) {
	defaults := DefaultPalettes()

	var file paletteFile
	if err := yaml.Unmarshal(yamlData, &file); err != nil {
		return defaults, fmt.Errorf("can't parse palette file: %w", err)
	}

	return Palettes{
		Dark:  augment(file.Palettes.Dark, defaults.Dark),
		Light: augment(file.Palettes.Light, defaults.Light),
	}, nil
}

func augment(p, defaults Palette) Palette {
	pick := func(v, d string) string {
		if v == "" {
			return d
		}
		return v
	}
	return Palette{
		Accent:    pick(p.Accent, defaults.Accent),
		Secondary: pick(p.Secondary, defaults.Secondary),
		Positive:  pick(p.Positive, defaults.Positive),
		Negative:  pick(p.Negative, defaults.Negative),
		Text:      pick(p.Text, defaults.Text),
		Muted:     pick(p.Muted, defaults.Muted),
		Border:    pick(p.Border, defaults.Border),
		Highlight: pick(p.Highlight, defaults.Highlight),
	}
}

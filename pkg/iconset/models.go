// Package iconset provides YAML-driven icon set generation via specs and
// per-size overrides.
package iconset

import "github.com/xob0t/iconforge/pkg/icon"

// Spec is the top-level structure of an iconset.yml file.
type Spec struct {
	Name     string           `yaml:"name"`
	Dir      string           `yaml:"dir"`      // output directory
	Encoder  string           `yaml:"encoder"`  // "raw", "render" or "pixel"
	Color    string           `yaml:"color"`    // "#rrggbb" or "random"
	Style    string           `yaml:"style"`    // "solid", "circle" or "rounded"
	Label    string           `yaml:"label"`    // 1–2 letter overlay
	Sizes    []int            `yaml:"sizes"`
	Manifest string           `yaml:"manifest"` // manifest.json to patch (optional)
	ICO      string           `yaml:"ico"`      // combined .ico output (optional)
	Sizing   map[int]Override `yaml:"overrides"`
}

// Override holds per-size deviations from the set defaults. Size itself is
// the map key and cannot be overridden. Label is a pointer so an override can
// clear the label explicitly (nil = inherit, "" = no label).
type Override struct {
	Color string  `yaml:"color,omitempty"`
	Style string  `yaml:"style,omitempty"`
	Label *string `yaml:"label,omitempty"`
}

// Resolved is one icon ready for generation with final values.
type Resolved struct {
	Size   int
	Config icon.Config
}

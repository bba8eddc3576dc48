// parser.go — Spec loading and example generation.
package iconset

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/xob0t/iconforge/pkg/icon"
)

// Load reads and parses an iconset.yml file, applies defaults, and returns
// validation warnings alongside the spec.
func Load(path string) (*Spec, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read spec: %w", err)
	}

	// Strict decode first, so misspelled keys surface instead of silently
	// degrading to defaults. Unknown or duplicate keys are a warning, not
	// fatal; a spec that cannot be parsed at all still is.
	var warnings []string
	var spec Spec
	if err := yaml.UnmarshalWithOptions(data, &spec, yaml.Strict()); err != nil {
		spec = Spec{}
		if err := yaml.Unmarshal(data, &spec); err != nil {
			return nil, nil, fmt.Errorf("parse spec YAML: %w", err)
		}
		warnings = append(warnings, fmt.Sprintf("spec: %v — key ignored", yaml.FormatError(err, false, false)))
	}

	applyDefaults(&spec)
	return &spec, append(warnings, Validate(&spec)...), nil
}

// applyDefaults sets sane fallbacks for omitted spec fields.
func applyDefaults(s *Spec) {
	if s.Dir == "" {
		s.Dir = "assets/icons"
	}
	if s.Encoder == "" {
		s.Encoder = string(icon.EncoderRaw)
	}
	if s.Color == "" {
		s.Color = icon.DefaultColor
	}
	if s.Style == "" {
		s.Style = string(icon.StyleSolid)
	}
	if len(s.Sizes) == 0 {
		s.Sizes = append([]int(nil), icon.DefaultSizes...)
	}
}

// ExampleYAML returns a sample iconset.yml for iconforge init.
func ExampleYAML() string {
	return `# iconforge icon set spec
name: My Extension
dir: assets/icons
encoder: render        # raw, render or pixel
color: "#0077b5"       # hex or "random"
style: rounded         # solid, circle or rounded
label: LA
sizes: [16, 32, 48, 128]
# manifest: manifest.json   # patch the icons stanza after generating
# ico: assets/icon.ico      # also bundle the set into one ICO
overrides:
  16:
    label: ""          # drop the label where it would be unreadable
`
}

// FormatSchema returns a human-readable description of a spec file.
func FormatSchema(s *Spec) string {
	out := fmt.Sprintf("Icon set: %s\n", s.Name)
	out += fmt.Sprintf("  dir:     %s\n", s.Dir)
	out += fmt.Sprintf("  encoder: %s\n", s.Encoder)
	out += fmt.Sprintf("  color:   %s\n", s.Color)
	out += fmt.Sprintf("  style:   %s\n", s.Style)
	if s.Label != "" {
		out += fmt.Sprintf("  label:   %s\n", s.Label)
	}
	out += fmt.Sprintf("  sizes:   %v\n", s.Sizes)
	if s.Manifest != "" {
		out += fmt.Sprintf("  manifest: %s\n", s.Manifest)
	}
	if s.ICO != "" {
		out += fmt.Sprintf("  ico:      %s\n", s.ICO)
	}
	if len(s.Sizing) > 0 {
		out += "  overrides:\n"
		for _, size := range sortedOverrideSizes(s) {
			o := s.Sizing[size]
			line := fmt.Sprintf("    %d:", size)
			if o.Color != "" {
				line += " color=" + o.Color
			}
			if o.Style != "" {
				line += " style=" + o.Style
			}
			if o.Label != nil {
				line += fmt.Sprintf(" label=%q", *o.Label)
			}
			out += line + "\n"
		}
	}
	return out
}

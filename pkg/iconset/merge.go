// merge.go — Merge per-size overrides onto the set defaults.
package iconset

import (
	"sort"

	"github.com/xob0t/iconforge/pkg/icon"
)

// Resolve combines the spec defaults with per-size overrides, producing one
// generation config per size in ascending size order. Duplicate sizes are
// collapsed; overrides for sizes not in the set are ignored (Validate warns
// about both).
func Resolve(s *Spec) []Resolved {
	// Invalid encoder/style names degrade to the defaults; Validate has
	// already warned about them.
	enc, err := icon.ParseEncoder(s.Encoder)
	if err != nil {
		enc = icon.EncoderRaw
	}
	style, err := icon.ParseStyle(s.Style)
	if err != nil {
		style = icon.StyleSolid
	}

	seen := make(map[int]struct{}, len(s.Sizes))
	var result []Resolved

	for _, size := range s.Sizes {
		if size <= 0 {
			continue
		}
		if _, dup := seen[size]; dup {
			continue
		}
		seen[size] = struct{}{}

		cfg := icon.Config{
			Size:    size,
			Color:   s.Color,
			Style:   style,
			Label:   s.Label,
			Encoder: enc,
		}
		if o, ok := s.Sizing[size]; ok {
			mergeOverride(&cfg, o)
		}
		result = append(result, Resolved{Size: size, Config: cfg})
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Size < result[j].Size })
	return result
}

// mergeOverride overlays present override fields onto a config.
func mergeOverride(cfg *icon.Config, o Override) {
	if o.Color != "" {
		cfg.Color = o.Color
	}
	if o.Style != "" {
		if style, err := icon.ParseStyle(o.Style); err == nil {
			cfg.Style = style
		}
	}
	if o.Label != nil {
		cfg.Label = *o.Label
	}
}

// sortedOverrideSizes returns the override keys in ascending order.
func sortedOverrideSizes(s *Spec) []int {
	keys := make([]int, 0, len(s.Sizing))
	for size := range s.Sizing {
		keys = append(keys, size)
	}
	sort.Ints(keys)
	return keys
}

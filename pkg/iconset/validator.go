// validator.go — Validate an icon set spec.
package iconset

import (
	"fmt"

	"github.com/xob0t/iconforge/pkg/icon"
)

// Validate checks a spec for suspicious values. Returns warnings (never fatal
// errors) for graceful degradation; Resolve skips what it cannot use.
func Validate(s *Spec) []string {
	var warnings []string

	if _, err := icon.ParseEncoder(s.Encoder); err != nil {
		warnings = append(warnings, fmt.Sprintf("spec: %v — using raw", err))
	}
	if _, err := icon.ParseStyle(s.Style); err != nil {
		warnings = append(warnings, fmt.Sprintf("spec: %v — using solid", err))
	}

	seen := make(map[int]struct{}, len(s.Sizes))
	for _, size := range s.Sizes {
		if size <= 0 {
			warnings = append(warnings, fmt.Sprintf("spec: size %d is not positive — skipped", size))
			continue
		}
		if _, dup := seen[size]; dup {
			warnings = append(warnings, fmt.Sprintf("spec: size %d listed twice — collapsed", size))
		}
		seen[size] = struct{}{}
	}

	for _, size := range sortedOverrideSizes(s) {
		if _, ok := seen[size]; !ok {
			warnings = append(warnings, fmt.Sprintf("spec: override for size %d not in the size set — ignored", size))
		}
		o := s.Sizing[size]
		if o.Style != "" {
			if _, err := icon.ParseStyle(o.Style); err != nil {
				warnings = append(warnings, fmt.Sprintf("spec: override %d: %v — ignored", size, err))
			}
		}
	}

	return warnings
}

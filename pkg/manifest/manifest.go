// Package manifest patches the icons stanza of a WebExtension manifest.json.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xob0t/iconforge/pkg/icon"
)

// Patch sets the "icons" and "action.default_icon" maps in the manifest at
// path to point at dir/icon<SIZE>.png for every size. If the file does not
// exist, a minimal manifest is created. All other keys are preserved.
func Patch(path, dir string, sizes []int) error {
	m, err := load(path)
	if err != nil {
		return err
	}

	icons := make(map[string]any, len(sizes))
	for _, size := range sizes {
		icons[strconv.Itoa(size)] = filepath.ToSlash(filepath.Join(dir, icon.Filename(size)))
	}
	m["icons"] = icons

	action, ok := m["action"].(map[string]any)
	if !ok {
		action = make(map[string]any)
	}
	action["default_icon"] = icons
	m["action"] = action

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// load reads an existing manifest, or returns a minimal skeleton if path does
// not exist yet.
func load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string]any{
			"manifest_version": 3,
			"name":             "My Extension",
			"version":          "0.1.0",
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return m, nil
}

// Package store persists repository backlogs and the global repo index.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"tableflip.dev/backlog/pkg/backlog"
)

// Load reads the backlog at path. A missing or malformed file yields an
// empty backlog; load never fails outward.
func Load(path string) *backlog.Backlog {
	b := &backlog.Backlog{}
	data, err := os.ReadFile(path)
	if err != nil {
		return b
	}
	if err := json.Unmarshal(data, b); err != nil {
		return &backlog.Backlog{}
	}
	if b.Items == nil {
		b.Items = []backlog.Item{}
	}
	return b
}

// Save writes the backlog as pretty-printed JSON, creating parent
// directories as needed. The write goes through a temp file and rename.
func Save(path string, b *backlog.Backlog) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

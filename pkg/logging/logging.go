// Package logging provides the file-backed logger used for best-effort
// failures that must not reach the terminal (the session owns the screen).
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

const fileName = "backlog.log"

// Open returns a logger appending to <baseDir>/backlog.log. When the file
// cannot be opened the logger discards everything rather than failing.
func Open(baseDir string) *log.Logger {
	w := io.Writer(io.Discard)
	if baseDir != "" {
		if err := os.MkdirAll(baseDir, 0o755); err == nil {
			f, err := os.OpenFile(filepath.Join(baseDir, fileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
			if err == nil {
				w = f
			}
		}
	}
	return log.NewWithOptions(w, log.Options{
		Formatter:       log.TextFormatter,
		ReportTimestamp: true,
		Prefix:          "backlog",
	})
}

// Package glyph holds the characters the CLI and session use to mark items.
package glyph

import "fmt"

const (
	escape    = "\x1b"
	resetCode = 0
	boldCode  = 1
	underCode = 4
)

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underCode, in, escape, resetCode)
}

const (
	// CheckboxDone marks a completed item.
	CheckboxDone = "[x]"
	// CheckboxPending marks an incomplete item.
	CheckboxPending = "[ ]"
)

// Checkbox returns the three-character status glyph for an item.
func Checkbox(done bool) string {
	if done {
		return CheckboxDone
	}
	return CheckboxPending
}

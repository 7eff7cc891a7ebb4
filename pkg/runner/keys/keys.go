// Package keys prints the session key-binding legend.
package keys

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/backlog/pkg/glyph"
)

// Binding is one session key and what it does.
type Binding struct {
	Key    string
	Action string
}

// Bindings returns the session key map in display order.
func Bindings() []Binding {
	return []Binding{
		{"j / ↓", "move selection down"},
		{"k / ↑", "move selection up"},
		{"J / shift+↓", "move item down"},
		{"K / shift+↑", "move item up"},
		{"x", "toggle done"},
		{"a", "add item"},
		{"e", "edit item"},
		{"h", "hide completed items"},
		{"d d", "delete item"},
		{"delete / backspace", "delete item (asks first)"},
		{"enter", "select item and exit"},
		{"q / esc", "quit"},
	}
}

type Keys struct{}

func (k *Keys) Do(ctx context.Context) error {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(glyph.Bold("Key"), glyph.Bold("Action"))
	for _, b := range Bindings() {
		tbl.AddRow(b.Key, b.Action)
	}

	_, _ = fmt.Fprintln(color.Output, glyph.Bold(glyph.Underline("\nSession keys")))
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}

// Package summary provides the default (no subcommand) repo overview.
package summary

import (
	"context"
	"fmt"

	"tableflip.dev/backlog/pkg/printers"
	"tableflip.dev/backlog/pkg/store"
)

// Summary prints the pending items for the current repo.
type Summary struct {
	Path string
}

func (s *Summary) Do(ctx context.Context) error {
	b := store.Load(s.Path)
	if len(b.Items) == 0 {
		fmt.Println("Backlog is empty. Use 'backlog add <description>' to add items.")
		return nil
	}

	pending := b.Pending()
	if len(pending) == 0 {
		fmt.Println("All done! Backlog is clear.")
		return nil
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	fmt.Printf("%d item(s) in backlog:\n", len(pending))
	pp.Pending(b.Items...)
	return nil
}

// Package remove provides the runner for deleting a backlog item by number.
package remove

import (
	"context"
	"fmt"

	"tableflip.dev/backlog/pkg/store"
)

// Remove deletes the 1-based Number item.
type Remove struct {
	Path   string
	Number int
}

func (r *Remove) Do(ctx context.Context) error {
	b := store.Load(r.Path)
	if r.Number <= 0 || r.Number > len(b.Items) {
		return fmt.Errorf("invalid item number: %d", r.Number)
	}

	removed, _ := b.Remove(r.Number - 1)
	if err := store.Save(r.Path, b); err != nil {
		return err
	}

	fmt.Printf("Removed: %s\n", removed.Description)
	return nil
}

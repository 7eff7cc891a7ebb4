// Package done provides the runner for completing a backlog item by number.
package done

import (
	"context"
	"fmt"

	"tableflip.dev/backlog/pkg/store"
)

// Done marks the 1-based Number item as completed.
type Done struct {
	Path   string
	Number int
}

func (d *Done) Do(ctx context.Context) error {
	b := store.Load(d.Path)
	if d.Number <= 0 || d.Number > len(b.Items) {
		return fmt.Errorf("invalid item number: %d", d.Number)
	}

	b.Items[d.Number-1].Done = true
	if err := store.Save(d.Path, b); err != nil {
		return err
	}

	fmt.Printf("Marked as done: %s\n", b.Items[d.Number-1].Description)
	return nil
}

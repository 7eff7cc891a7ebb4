// Package next provides the runner for showing the first incomplete item.
package next

import (
	"context"
	"fmt"

	"tableflip.dev/backlog/pkg/store"
)

// Next prints the first incomplete item's description.
type Next struct {
	Path string
}

func (n *Next) Do(ctx context.Context) error {
	b := store.Load(n.Path)
	if item, ok := b.Next(); ok {
		fmt.Println(item.Description)
		return nil
	}
	fmt.Println("All done! Backlog is clear.")
	return nil
}

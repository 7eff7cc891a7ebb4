package backlog

import (
	"time"

	"tableflip.dev/backlog/pkg/glyph"
)

// New creates a pending item stamped with the current time.
func New(description string) Item {
	return Item{
		Description: description,
		CreatedAt:   Timestamp{Time: time.Now()},
	}
}

// Item is one entry in a repository backlog.
type Item struct {
	Description string    `json:"description"`
	CreatedAt   Timestamp `json:"created_at"`
	Done        bool      `json:"done"`
}

func (i Item) String() string {
	return glyph.Checkbox(i.Done) + " " + i.Description
}

// Backlog is the ordered list of items for one repository. Order is
// user-controlled: items only move via explicit swap operations.
type Backlog struct {
	Items []Item `json:"items"`
}

// Pending returns the items not yet marked done, in backlog order.
func (b *Backlog) Pending() []Item {
	pending := make([]Item, 0, len(b.Items))
	for _, item := range b.Items {
		if !item.Done {
			pending = append(pending, item)
		}
	}
	return pending
}

// Next returns the first incomplete item.
func (b *Backlog) Next() (Item, bool) {
	for _, item := range b.Items {
		if !item.Done {
			return item, true
		}
	}
	return Item{}, false
}

// Swap exchanges the items at i and j. Out-of-range indices are ignored.
func (b *Backlog) Swap(i, j int) {
	if i < 0 || j < 0 || i >= len(b.Items) || j >= len(b.Items) {
		return
	}
	b.Items[i], b.Items[j] = b.Items[j], b.Items[i]
}

// Remove deletes the item at i and returns it.
func (b *Backlog) Remove(i int) (Item, bool) {
	if i < 0 || i >= len(b.Items) {
		return Item{}, false
	}
	removed := b.Items[i]
	b.Items = append(b.Items[:i], b.Items[i+1:]...)
	return removed, true
}

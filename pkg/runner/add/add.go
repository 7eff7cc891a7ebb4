// Package add provides the runner for appending a backlog item.
package add

import (
	"context"
	"errors"

	"tableflip.dev/backlog/pkg/backlog"
	"tableflip.dev/backlog/pkg/printers"
	"tableflip.dev/backlog/pkg/store"
)

// Add appends one item to the repo backlog and registers the repo in the
// global index.
type Add struct {
	Description string
	Path        string
	RepoRoot    string
	Index       *store.Index
}

func (a *Add) Do(ctx context.Context) error {
	if a.Description == "" {
		return errors.New("please provide a description")
	}

	b := store.Load(a.Path)
	b.Items = append(b.Items, backlog.New(a.Description))
	if err := store.Save(a.Path, b); err != nil {
		return err
	}

	// Registration is best-effort; the item is already saved.
	if a.Index != nil && a.RepoRoot != "" {
		_ = a.Index.Register(a.RepoRoot)
	}

	pp := printers.PrettyPrint{}
	pp.TitleWithCount("Backlog", len(b.Items))
	pp.Backlog(b.Items...)
	return nil
}

// Package list provides the runners for printing backlogs.
package list

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/backlog/pkg/backlog"
	"tableflip.dev/backlog/pkg/printers"
	"tableflip.dev/backlog/pkg/store"
)

// List prints the current repo's backlog, or every registered repo's when
// All is set. A non-zero Since narrows output to items created within that
// window.
type List struct {
	Path  string
	All   bool
	JSON  bool
	Since time.Duration
	Cfg   store.Config
	Index *store.Index
}

func (l *List) Do(ctx context.Context) error {
	if l.All {
		return l.doAll(ctx)
	}

	b := store.Load(l.Path)
	items := l.window(b.Items)
	if l.JSON {
		return printJSON(items)
	}
	if len(items) == 0 {
		fmt.Println("Backlog is empty.")
		return nil
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Backlog")
	pp.Backlog(items...)
	return nil
}

// doAll walks the global index; repos with nothing pending are skipped.
func (l *List) doAll(ctx context.Context) error {
	repos := l.Index.Repos(ctx)
	if l.JSON {
		all := make(map[string][]backlog.Item, len(repos))
		for _, repo := range repos {
			b := store.Load(store.BacklogPath(l.Cfg, repo))
			items := l.window(b.Items)
			if len(items) == 0 {
				continue
			}
			all[repo] = items
		}
		return printJSON(all)
	}
	if len(repos) == 0 {
		fmt.Println("No backlogs found.")
		return nil
	}

	pp := printers.PrettyPrint{}
	summary := make([]printers.RepoSummary, 0, len(repos))

	for _, repo := range repos {
		b := store.Load(store.BacklogPath(l.Cfg, repo))
		items := l.window(b.Items)
		pending := 0
		for _, item := range items {
			if !item.Done {
				pending++
			}
		}
		if pending == 0 {
			continue
		}
		summary = append(summary, printers.RepoSummary{Repo: repo, Pending: pending})

		pp.NewLine()
		pp.Title(repo)
		pp.Backlog(items...)
	}

	if len(summary) == 0 {
		fmt.Println("No backlogs found.")
		return nil
	}
	pp.Summary(summary)
	return nil
}

// window filters items to those created within Since. Zero means no filter.
func (l *List) window(items []backlog.Item) []backlog.Item {
	if l.Since <= 0 {
		return items
	}
	cutoff := time.Now().Add(-l.Since)
	kept := make([]backlog.Item, 0, len(items))
	for _, item := range items {
		if item.CreatedAt.After(cutoff) {
			kept = append(kept, item)
		}
	}
	return kept
}

func printJSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(color.Output, string(b))
	return nil
}

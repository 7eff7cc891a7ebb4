// Package printers renders backlogs for one-shot command output.
package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/backlog/pkg/backlog"
	"tableflip.dev/backlog/pkg/glyph"
)

type PrettyPrint struct{}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" item")
	default:
		_, _ = c.Println(" items")
	}
}

// Backlog prints numbered rows for every item, completed ones faint.
func (pp *PrettyPrint) Backlog(items ...backlog.Item) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	f := color.New(color.Faint)

	for i, item := range items {
		line := fmt.Sprintf("%d. %s %s", i+1, glyph.Checkbox(item.Done), item.Description)
		if item.Done {
			_, _ = f.Println(line)
		} else {
			_, _ = t.Println(line)
		}
	}
	_, _ = t.Println("")
}

// Pending prints only the incomplete items, keeping their backlog numbers.
func (pp *PrettyPrint) Pending(items ...backlog.Item) {
	t := color.New()
	for i, item := range items {
		if item.Done {
			continue
		}
		_, _ = t.Printf("%d. %s %s\n", i+1, glyph.Checkbox(false), item.Description)
	}
	_, _ = t.Println("")
}

// RepoSummary is one row of the cross-repo listing.
type RepoSummary struct {
	Repo    string
	Pending int
}

// Summary prints a repo-per-row table of pending counts.
func (pp *PrettyPrint) Summary(rows []RepoSummary) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(glyph.Bold("Repository"), glyph.Bold("Pending"))
	for _, row := range rows {
		tbl.AddRow(row.Repo, fmt.Sprintf("%d", row.Pending))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

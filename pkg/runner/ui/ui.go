// Package ui provides the runner for the interactive session.
package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"tableflip.dev/backlog/pkg/backlog"
	"tableflip.dev/backlog/pkg/store"
	"tableflip.dev/backlog/pkg/tui"
)

// UI opens the full-screen session on the repo backlog and prints the item
// chosen with Enter, if any, after the terminal is restored.
type UI struct {
	Path   string
	Logger *log.Logger
}

func (u *UI) Do(ctx context.Context) error {
	b := store.Load(u.Path)
	if len(b.Items) == 0 {
		// Nothing to browse; do not take over the terminal.
		fmt.Println("Backlog is empty. Use 'backlog add <description>' to add items.")
		return nil
	}

	save := func(b *backlog.Backlog) error {
		return store.Save(u.Path, b)
	}

	p := tea.NewProgram(tui.New(b, save, u.Logger), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := final.(tui.Model); ok && m.Choice() != "" {
		fmt.Println(m.Choice())
	}
	return nil
}

// Package commands wires the backlog CLI.
package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/backlog/pkg/runner/summary"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "backlog",
		Short: base.Wrap80("A simple backlog manager for your repos."),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default action: show what is pending in this repo.
			path, _, err := repoBacklogPath()
			if err != nil {
				return err
			}
			s := summary.Summary{Path: path}
			return s.Do(cmd.Context())
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addList(topLevel)
	addDone(topLevel)
	addRemove(topLevel)
	addNext(topLevel)
	addUI(topLevel)
	addKeys(topLevel)
	addVersion(topLevel)
}

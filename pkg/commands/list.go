package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/backlog/pkg/commands/options"
	"tableflip.dev/backlog/pkg/runner/list"
	"tableflip.dev/backlog/pkg/store"
	"tableflip.dev/backlog/pkg/timeutil"
)

func addList(topLevel *cobra.Command) {
	lo := &options.ListOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"get", "ls"},
		Short:   "List backlog items (current repo or all)",
		Example: `
backlog list
backlog list --all
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}

			l := list.List{All: lo.All, JSON: oo.JSON, Cfg: cfg}
			if lo.Since != "" {
				l.Since, _, err = timeutil.ParseWindow(lo.Since)
				if err != nil {
					return err
				}
			}
			if lo.All {
				l.Index, err = store.OpenIndex(cfg)
				if err != nil {
					return err
				}
			} else {
				l.Path, _, err = repoBacklogPath()
				if err != nil {
					return err
				}
			}

			return oo.HandleError(l.Do(cmd.Context()))
		},
	}

	options.AddAllArg(cmd, lo)
	options.AddSinceArg(cmd, lo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

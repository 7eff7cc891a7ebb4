package commands

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/backlog/pkg/commands/options"
	"tableflip.dev/backlog/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	no := &options.NumberOptions{}

	cmd := &cobra.Command{
		Use:     "remove <number>",
		Aliases: []string{"rm"},
		Short:   "Remove an item from the backlog",
		Example: `
backlog remove 2
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an item number")
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.New("item number must be an integer")
			}
			no.Number = n
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _, err := repoBacklogPath()
			if err != nil {
				return err
			}
			r := remove.Remove{Path: path, Number: no.Number}
			return r.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

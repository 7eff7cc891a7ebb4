package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/backlog/pkg/runner/add"
	"tableflip.dev/backlog/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	description := ""

	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Add a new item to the backlog",
		Example: `
backlog add fix the flaky integration test
`,
		Args: func(_ *cobra.Command, args []string) error {
			description = strings.TrimSpace(strings.Join(args, " "))
			if description == "" {
				return errors.New("please provide a description")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, root, err := repoBacklogPath()
			if err != nil {
				return err
			}
			index, err := store.OpenIndex(nil)
			if err != nil {
				return err
			}
			a := add.Add{
				Description: description,
				Path:        path,
				RepoRoot:    root,
				Index:       index,
			}
			return a.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

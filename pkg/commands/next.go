package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/backlog/pkg/runner/next"
)

func addNext(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show what to do next (first incomplete item)",
		Example: `
backlog next
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _, err := repoBacklogPath()
			if err != nil {
				return err
			}
			n := next.Next{Path: path}
			return n.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

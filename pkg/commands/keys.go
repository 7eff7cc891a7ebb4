package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/backlog/pkg/runner/keys"
)

func addKeys(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Show the interactive session key bindings",
		Example: `
backlog keys
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k := keys.Keys{}
			return k.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

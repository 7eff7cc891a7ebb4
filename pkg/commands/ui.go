package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/backlog/pkg/logging"
	"tableflip.dev/backlog/pkg/runner/ui"
	"tableflip.dev/backlog/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "ui",
		Aliases: []string{"cli"},
		Short:   "Open the interactive session",
		Example: `
backlog ui
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			path, _, err := repoBacklogPath()
			if err != nil {
				return err
			}
			u := ui.UI{
				Path:   path,
				Logger: logging.Open(cfg.BasePath()),
			}
			return u.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

package options

import "github.com/spf13/cobra"

// ListOptions captures scope flags for listing commands.
type ListOptions struct {
	All   bool
	Since string
}

// AddAllArg registers the cross-repo flag.
func AddAllArg(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().BoolVarP(&o.All, "all", "a", false,
		"Show backlogs across all registered repos.")
}

// AddSinceArg registers the item-age window flag.
func AddSinceArg(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().StringVar(&o.Since, "since", "",
		"Only show items created within the given window, e.g. '3d' or '1w2d'.")
}

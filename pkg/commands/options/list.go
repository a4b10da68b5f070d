package options

import (
	"github.com/spf13/cobra"
)

// ListOptions
type ListOptions struct {
	All bool
}

func AddListArgs(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().BoolVarP(&o.All, "all", "a", false,
		"Include completed tasks.")
}

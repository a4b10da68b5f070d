package options

import (
	"github.com/spf13/cobra"
)

// IDOptions
type IDOptions struct {
	ShowID bool
	IDs    []string
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each task.")
}

// ID returns the first id argument.
func (o *IDOptions) ID() string {
	if len(o.IDs) == 0 {
		return ""
	}
	return o.IDs[0]
}

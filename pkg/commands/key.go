package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/frog/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the glyphs and the keys of the ui",
		Example: `
frog key
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{}
			err := k.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

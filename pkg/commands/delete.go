package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/frog/pkg/app"
	"tableflip.dev/frog/pkg/commands/options"
	"tableflip.dev/frog/pkg/runner/remove"
)

func addDelete(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "delete <task id>...",
		Aliases: []string{"rm"},
		Short:   "Delete one or more tasks",
		Example: `
frog delete 3f2a
frog rm 3f2a 9c01
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires at least one task id")
			}
			io.IDs = args
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return withService(func(ctx context.Context, svc *app.Service) error {
				d := remove.Delete{
					IDs:     io.IDs,
					Service: svc,
				}
				return d.Do(ctx)
			})
		},
	}

	topLevel.AddCommand(cmd)
}

package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/frog/pkg/app"
	"tableflip.dev/frog/pkg/commands/options"
	"tableflip.dev/frog/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "complete <task id>",
		Aliases: []string{"done", "x"},
		Short:   "Complete a task",
		Example: `
frog complete 3f2a
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a task id")
			}
			io.IDs = args
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return withService(func(ctx context.Context, svc *app.Service) error {
				c := complete.Complete{
					ID:      io.ID(),
					Service: svc,
				}
				return c.Do(ctx)
			})
		},
	}

	topLevel.AddCommand(cmd)
}

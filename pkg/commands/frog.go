package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/frog/pkg/app"
	"tableflip.dev/frog/pkg/commands/options"
	"tableflip.dev/frog/pkg/runner/frog"
)

func addFrog(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "frog <task id>",
		Short: "Mark or unmark a task as the frog",
		Long: `The frog is the one task to do first. It is pinned to the top of
the list and marking a new frog unmarks the previous one.`,
		Example: `
frog frog 3f2a
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
				f := frog.Frog{
					ID:      io.ID(),
					Service: svc,
				}
				return f.Do(ctx)
			})
		},
	}

	topLevel.AddCommand(cmd)
}

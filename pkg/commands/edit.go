package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/frog/pkg/app"
	"tableflip.dev/frog/pkg/commands/options"
	"tableflip.dev/frog/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var title string

	cmd := &cobra.Command{
		Use:     "edit <task id> <title>",
		Aliases: []string{"rename"},
		Short:   "Change the title of a task",
		Example: `
frog edit 3f2a call the plumber before noon
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a task id and a title")
			}
			io.IDs = args[:1]
			title = strings.Join(args[1:], " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return withService(func(ctx context.Context, svc *app.Service) error {
				e := edit.Edit{
					ID:      io.ID(),
					Title:   title,
					Service: svc,
				}
				return e.Do(ctx)
			})
		},
	}

	topLevel.AddCommand(cmd)
}

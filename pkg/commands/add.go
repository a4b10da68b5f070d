package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/frog/pkg/app"
	"tableflip.dev/frog/pkg/commands/options"
	"tableflip.dev/frog/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	po := &options.PriorityOptions{}
	io := &options.IDOptions{}
	var title string

	cmd := &cobra.Command{
		Use:     "add <title>",
		Aliases: []string{"new"},
		Short:   "Add a task to the end of the list",
		Example: `
frog add call the plumber
frog add --priority 3 file taxes
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return withService(func(ctx context.Context, svc *app.Service) error {
				a := add.Add{
					Service:  svc,
					Title:    title,
					Priority: po.Get(),
					ShowID:   io.ShowID,
				}
				return a.Do(ctx)
			})
		},
	}

	options.AddPriorityArgs(cmd, po)
	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}

package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/frog/pkg/app"
	"tableflip.dev/frog/pkg/commands/options"
	"tableflip.dev/frog/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	lo := &options.ListOptions{}
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "get"},
		Short:   "List tasks, frog first",
		Example: `
frog list
frog list --all --show-id
frog list -o yaml
`,
		Args: cobra.NoArgs,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return oo.Validate()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return withService(func(ctx context.Context, svc *app.Service) error {
				l := list.List{
					Service: svc,
					All:     lo.All,
					ShowID:  io.ShowID,
					Format:  oo.Format,
				}
				return l.Do(ctx)
			})
		},
	}

	options.AddListArgs(cmd, lo)
	options.AddShowIDArgs(cmd, io)
	options.AddFormatArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

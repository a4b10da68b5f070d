package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/frog/pkg/app"
	"tableflip.dev/frog/pkg/commands/options"
	"tableflip.dev/frog/pkg/runner/priority"
	"tableflip.dev/frog/pkg/task"
)

func addPriority(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var p task.Priority

	cmd := &cobra.Command{
		Use:     "priority <task id> <low|medium|high|1-3>",
		Aliases: []string{"prio"},
		Short:   "Set the priority of a task",
		Example: `
frog priority 3f2a high
frog prio 3f2a 1
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires a task id and a priority")
			}
			io.IDs = args[:1]
			var err error
			p, err = options.ParsePriority(args[1])
			return err
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return withService(func(ctx context.Context, svc *app.Service) error {
				r := priority.Priority{
					ID:       io.ID(),
					Priority: p,
					Service:  svc,
				}
				return r.Do(ctx)
			})
		},
	}

	topLevel.AddCommand(cmd)
}

package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/frog/pkg/app"
	"tableflip.dev/frog/pkg/commands/options"
	"tableflip.dev/frog/pkg/runner/move"
)

func addMove(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	mo := &options.MoveOptions{}

	cmd := &cobra.Command{
		Use:     "move <task id>",
		Aliases: []string{"mv"},
		Short:   "Reorder a task in the active list",
		Example: `
frog move 3f2a --top
frog move 3f2a --to 4
frog mv 3f2a --down
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a task id")
			}
			io.IDs = args
			return mo.Validate()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return withService(func(ctx context.Context, svc *app.Service) error {
				m := move.Move{
					ID:      io.ID(),
					To:      mo.To,
					Top:     mo.Top,
					Bottom:  mo.Bottom,
					Service: svc,
				}
				switch {
				case mo.Up:
					m.Delta = -1
				case mo.Down:
					m.Delta = 1
				}
				return m.Do(ctx)
			})
		},
	}

	options.AddMoveArgs(cmd, mo)
	topLevel.AddCommand(cmd)
}

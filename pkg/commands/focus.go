package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/frog/pkg/commands/options"
	"tableflip.dev/frog/pkg/runner/focus"
)

func addFocus(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var watch bool

	cmd := &cobra.Command{
		Use:     "focus",
		Aliases: []string{"next"},
		Short:   "Print the one task to work on now",
		Example: `
frog focus
frog focus --watch
`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, err := loadConfig()
			if err != nil {
				return output.HandleError(err)
			}
			s, err := openSession(ctx, cfg, newLogger())
			if err != nil {
				return output.HandleError(err)
			}
			f := focus.Focus{
				Service: s.Service,
				Store:   s.Store,
				Watch:   watch,
				ShowID:  io.ShowID,
			}
			return output.HandleError(f.Do(ctx))
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false,
		"Keep running and print the focused task again when it changes.")
	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}

package commands

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/frog/pkg/app"
	"tableflip.dev/frog/pkg/commands/options"
	"tableflip.dev/frog/pkg/runner/add"
)

func addPaste(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "paste",
		Short: "Add one task per line read from stdin",
		Long: `Paste reads text from stdin and adds one task per non-empty line.
List markers such as "- ", "* ", "[ ] " and "1. " are stripped.`,
		Example: `
pbpaste | frog paste
frog paste < groceries.md
`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
				return output.HandleError(errors.New("paste reads from a pipe, not a terminal"))
			}
			return withService(func(ctx context.Context, svc *app.Service) error {
				p := add.Paste{
					Service: svc,
					In:      os.Stdin,
					ShowID:  io.ShowID,
				}
				return p.Do(ctx)
			})
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}

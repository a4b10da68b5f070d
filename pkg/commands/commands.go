package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/frog/pkg/app"
	"tableflip.dev/frog/pkg/commands/options"
	"tableflip.dev/frog/pkg/store"
)

var (
	output  = &options.OutputOptions{}
	verbose bool
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "frog",
		Short: base.Wrap80("Eat the frog: a task list that keeps the one thing to do first on top."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
	options.AddOutputArg(cmd, output)
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Log debug output to stderr.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addKey(topLevel)
	addAdd(topLevel)
	addPaste(topLevel)
	addList(topLevel)
	addComplete(topLevel)
	addEdit(topLevel)
	addDelete(topLevel)
	addFrog(topLevel)
	addPriority(topLevel)
	addMove(topLevel)
	addFocus(topLevel)
	addReport(topLevel)
	addVersion(topLevel)
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// session is the store and service a command works on.
type session struct {
	Config  store.Config
	Store   store.Store
	Service *app.Service
}

func loadConfig() (store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func openSession(ctx context.Context, cfg store.Config, logger *slog.Logger) (*session, error) {
	s, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	svc, err := app.New(ctx, s,
		app.WithLogger(logger),
		app.WithUndoLimit(cfg.UndoLimit()),
		app.WithDragThreshold(cfg.DragThreshold()),
	)
	if err != nil {
		return nil, err
	}
	return &session{Config: cfg, Store: s, Service: svc}, nil
}

// withService opens a session and hands its service to fn.
func withService(fn func(ctx context.Context, svc *app.Service) error) error {
	ctx := context.Background()
	cfg, err := loadConfig()
	if err != nil {
		return output.HandleError(err)
	}
	s, err := openSession(ctx, cfg, newLogger())
	if err != nil {
		return output.HandleError(err)
	}
	return output.HandleError(fn(ctx, s.Service))
}

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/frog/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the terminal user interface",
		Example: `
frog ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
			defer stop()

			cfg, err := loadConfig()
			if err != nil {
				return output.HandleError(err)
			}
			// The terminal belongs to the UI, so logs go to a file.
			logger, closeLog, err := fileLogger(cfg.LogFile())
			if err != nil {
				return output.HandleError(err)
			}
			defer closeLog()

			s, err := openSession(ctx, cfg, logger)
			if err != nil {
				return output.HandleError(err)
			}

			i := ui.UI{Service: s.Service, Store: s.Store, Logger: logger}
			return output.HandleError(i.Do(ctx))
		},
	}

	topLevel.AddCommand(cmd)
}

func fileLogger(path string) (*slog.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = f.Close() }, nil
}

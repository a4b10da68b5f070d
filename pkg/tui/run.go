package tui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/frog/pkg/app"
	"tableflip.dev/frog/pkg/store"
)

// Run shows the full screen UI until the user quits or ctx is done. changes
// may be nil when the store is not watched.
func Run(ctx context.Context, svc *app.Service, changes <-chan store.Event, log *slog.Logger) error {
	m := New(ctx, svc, WithChanges(changes), WithLogger(log))
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}

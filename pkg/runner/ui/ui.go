// Package ui provides the runner logic for the full screen interface.
package ui

import (
	"context"
	"errors"
	"log/slog"

	"tableflip.dev/frog/pkg/app"
	"tableflip.dev/frog/pkg/store"
	"tableflip.dev/frog/pkg/tui"
)

// UI opens the terminal interface. When Store is set the interface follows
// changes other processes make to the same data directory.
type UI struct {
	Service *app.Service
	Store   store.Store
	Logger  *slog.Logger
}

func (d *UI) Do(ctx context.Context) error {
	if d.Service == nil {
		return errors.New("can not open ui, no service")
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var changes <-chan store.Event
	if d.Store != nil {
		ch, err := d.Store.Watch(ctx)
		if err != nil {
			// The UI still works without live reload.
			if d.Logger != nil {
				d.Logger.Warn("watch store", "err", err)
			}
		} else {
			changes = ch
		}
	}
	return tui.Run(ctx, d.Service, changes, d.Logger)
}

// Package focus provides the runner logic for showing the task to work on.
package focus

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/frog/pkg/app"
	"tableflip.dev/frog/pkg/glyph"
	"tableflip.dev/frog/pkg/printers"
	"tableflip.dev/frog/pkg/store"
)

// Focus prints the first active task. With Watch it keeps running and prints
// the focused task again whenever another process changes the list.
type Focus struct {
	Service *app.Service
	Store   store.Store
	Watch   bool
	ShowID  bool
	Out     io.Writer
}

func (n *Focus) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not focus, no service")
	}
	last := n.print(n.Service.Snapshot(), "")
	if !n.Watch {
		return nil
	}
	if n.Store == nil {
		return errors.New("can not watch, no store")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	changes, err := n.Store.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch store: %w", err)
	}
	events := n.Service.Subscribe(ctx)

	d := app.NewDispatcher(n.Service)
	d.AttachStore(ctx, changes)
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	for {
		select {
		case <-ctx.Done():
			<-done
			return nil
		case evt, ok := <-events:
			if !ok {
				<-done
				return nil
			}
			if evt.Type != app.EventChanged {
				continue
			}
			d.Post(func(s *app.Service) {
				last = n.print(s.Snapshot(), last)
			})
		}
	}
}

// print writes the focused task unless it is the one printed last, and
// returns its id.
func (n *Focus) print(sn app.Snapshot, last string) string {
	out := n.Out
	if out == nil {
		out = color.Output
	}
	t, ok := sn.Focused()
	if !ok {
		if last != "-" {
			_, _ = color.New(color.Faint, color.Italic).Fprintln(out, "Nothing left to do.")
		}
		return "-"
	}
	key := t.ID + "\x00" + t.Title
	if key == last {
		return last
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: out}
	pp.Task(t)
	if t.IsFrog {
		_, _ = color.New(color.Faint).Fprintf(out, "%s eat this one first\n", glyph.Frog)
	}
	return key
}

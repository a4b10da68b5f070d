package app

import (
	"context"
	"fmt"

	"tableflip.dev/frog/pkg/store"
)

// Hotkey is an abstract global shortcut delivered by the host environment.
type Hotkey int

const (
	HotkeyToggleMode Hotkey = iota
	HotkeyQuickAdd
)

func (h Hotkey) String() string {
	switch h {
	case HotkeyToggleMode:
		return "toggle-mode"
	case HotkeyQuickAdd:
		return "quick-add"
	default:
		return fmt.Sprintf("hotkey(%d)", int(h))
	}
}

// HandleHotkey applies a global shortcut. Quick-Add is only announced; the
// presentation layer opens its own entry surface and calls AddTask.
func (s *Service) HandleHotkey(h Hotkey) bool {
	switch h {
	case HotkeyToggleMode:
		return s.ToggleMode(nil)
	case HotkeyQuickAdd:
		s.notify(Event{Type: EventQuickAddRequested})
		return true
	}
	return false
}

// Dispatcher serializes commands from several goroutines onto the one that
// calls Run.
type Dispatcher struct {
	svc   *Service
	queue chan func(*Service)
	done  chan struct{}
}

// NewDispatcher wraps svc. Only the Run goroutine may touch svc afterwards.
func NewDispatcher(svc *Service) *Dispatcher {
	return &Dispatcher{
		svc:   svc,
		queue: make(chan func(*Service), 64),
		done:  make(chan struct{}),
	}
}

// Post queues fn. It blocks while the queue is full and reports false once
// Run has returned.
func (d *Dispatcher) Post(fn func(*Service)) bool {
	select {
	case <-d.done:
		return false
	default:
	}
	select {
	case d.queue <- fn:
		return true
	case <-d.done:
		return false
	}
}

// Run executes queued commands one at a time until ctx is done.
func (d *Dispatcher) Run(ctx context.Context) error {
	defer close(d.done)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-d.queue:
			fn(d.svc)
		}
	}
}

// Attach forwards hotkeys to the queue until ctx is done or hotkeys closes.
func (d *Dispatcher) Attach(ctx context.Context, hotkeys <-chan Hotkey) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case h, ok := <-hotkeys:
				if !ok {
					return
				}
				d.Post(func(s *Service) { s.HandleHotkey(h) })
			}
		}
	}()
}

// AttachStore reloads the task sequence whenever the store reports that
// another process changed it.
func (d *Dispatcher) AttachStore(ctx context.Context, events <-chan store.Event) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-events:
				if !ok {
					return
				}
				if evt.Type != store.EventTasksChanged {
					continue
				}
				d.Post(func(s *Service) {
					if _, err := s.Reload(ctx); err != nil {
						s.log.Error("failed to reload tasks", "err", err)
					}
				})
			}
		}
	}()
}

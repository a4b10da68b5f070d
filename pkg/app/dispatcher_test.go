package app

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/frog/pkg/mode"
	"tableflip.dev/frog/pkg/store"
)

func waitFor(t *testing.T, events <-chan Event, match func(Event) bool) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt, ok := <-events:
			if !ok {
				t.Fatal("event channel closed")
			}
			if match(evt) {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for event")
		}
	}
}

func TestDispatcherHotkeys(t *testing.T) {
	svc, _ := newTestService(t, seq("a")...)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := svc.Subscribe(ctx)
	d := NewDispatcher(svc)
	errc := make(chan error, 1)
	go func() { errc <- d.Run(ctx) }()

	hotkeys := make(chan Hotkey)
	d.Attach(ctx, hotkeys)
	hotkeys <- HotkeyToggleMode
	hotkeys <- HotkeyQuickAdd

	waitFor(t, events, func(e Event) bool { return e.Type == EventQuickAddRequested })

	got := make(chan mode.Mode, 1)
	if !d.Post(func(s *Service) { got <- s.Mode() }) {
		t.Fatalf("post failed")
	}
	if m := <-got; m != mode.Focus {
		t.Fatalf("toggle hotkey should enter Focus, got %v", m)
	}

	cancel()
	<-errc
	if d.Post(func(*Service) {}) {
		t.Fatalf("post after shutdown should fail")
	}
}

func TestDispatcherReloadsOnStoreChange(t *testing.T) {
	svc, mem := newTestService(t, seq("a")...)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := svc.Subscribe(ctx)
	d := NewDispatcher(svc)
	go d.Run(ctx)

	watch, err := mem.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	d.AttachStore(ctx, watch)

	mem.Replace(seq("a", "b"))
	waitFor(t, events, func(e Event) bool { return e.Type == EventChanged && e.Label == "Reload" })

	got := make(chan int, 1)
	d.Post(func(s *Service) { got <- len(s.Tasks()) })
	if n := <-got; n != 2 {
		t.Fatalf("expected reloaded tasks, got %d", n)
	}
}

func TestDispatcherIgnoresSettingsEvents(t *testing.T) {
	svc, _ := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d := NewDispatcher(svc)
	go d.Run(ctx)

	ch := make(chan store.Event, 1)
	d.AttachStore(ctx, ch)
	ch <- store.Event{Type: store.EventSettingsChanged}

	done := make(chan bool, 1)
	d.Post(func(s *Service) { done <- s.Snapshot().CanUndo })
	if <-done {
		t.Fatalf("unexpected history")
	}
}

func TestHandleHotkeyUnknown(t *testing.T) {
	svc, _ := newTestService(t)
	if svc.HandleHotkey(Hotkey(42)) {
		t.Fatalf("unknown hotkey should be ignored")
	}
	if svc.HandleHotkey(HotkeyToggleMode) {
		t.Fatalf("toggle with no tasks should not enter Focus")
	}
}

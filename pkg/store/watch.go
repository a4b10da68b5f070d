package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes what changed on disk.
type EventType int

const (
	// EventTasksChanged means the task snapshot was rewritten, possibly by
	// another process such as a Quick-Add invocation of the CLI.
	EventTasksChanged EventType = iota

	// EventSettingsChanged means a presentation setting was written.
	EventSettingsChanged
)

func (t EventType) String() string {
	switch t {
	case EventTasksChanged:
		return "tasks"
	case EventSettingsChanged:
		return "settings"
	default:
		return fmt.Sprintf("event(%d)", int(t))
	}
}

// Event is emitted by Watch when underlying storage changes.
type Event struct {
	Type EventType
}

// Watch streams change events until ctx is cancelled. Callers should drain the
// returned channel; events are dropped rather than block the watcher. The
// channel is closed once ctx is done or the watcher fails.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	settings := filepath.Join(p.basePath, settingsDir)
	if err := ensureDir(settings); err != nil {
		return nil, fmt.Errorf("store: ensure settings directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	for _, dir := range []string{p.basePath, settings} {
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			return nil, fmt.Errorf("store: watch %s: %w", dir, err)
		}
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer watcher.Close()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// The consumer is behind; the next event triggers the same
				// reload.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// An overflowed or failed watch may have hidden a write.
				throttle.Enqueue(Event{Type: EventTasksChanged}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				if typ, ok := p.classify(evt.Name); ok {
					throttle.Enqueue(Event{Type: typ}, send)
				}
			}
		}
	}()

	return events, nil
}

// classify maps a path inside the store to the kind of data it holds.
func (p *persistence) classify(path string) (EventType, bool) {
	rel, err := filepath.Rel(p.basePath, path)
	if err != nil {
		return 0, false
	}
	parts := strings.Split(rel, string(os.PathSeparator))
	switch {
	case len(parts) == 1 && parts[0] == tasksKey:
		return EventTasksChanged, true
	case len(parts) == 2 && parts[0] == settingsDir:
		return EventSettingsChanged, true
	default:
		return 0, false
	}
}

// eventThrottle coalesces bursts of notifications into one event per type.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]struct{}
	delay   time.Duration
	stopped bool
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.pending[ev.Type] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
}

// flush holds the lock while sending so Stop can guarantee no send happens
// after it returns; send must not block.
func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.timer = nil
	if t.stopped {
		return
	}
	for typ := range t.pending {
		send(Event{Type: typ})
	}
	t.pending = make(map[EventType]struct{})
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}

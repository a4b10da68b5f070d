package store

import (
	"context"
	"maps"
	"sync"

	"tableflip.dev/frog/pkg/task"
)

// Memory is an in-process Store. It backs tests and sessions started without
// a data directory.
type Memory struct {
	mu       sync.Mutex
	tasks    []task.Task
	settings map[string]string
	saves    int
	watchers []chan Event

	// SaveErr, when set, is returned by every Save without storing anything.
	SaveErr error
}

// NewMemory returns a Memory store holding tasks.
func NewMemory(tasks ...task.Task) *Memory {
	return &Memory{tasks: task.Clone(tasks), settings: make(map[string]string)}
}

func (m *Memory) Load(_ context.Context) ([]task.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := task.Normalize(task.Clone(m.tasks))
	if out == nil {
		out = []task.Task{}
	}
	return out, nil
}

func (m *Memory) Save(tasks []task.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.tasks = task.Clone(tasks)
	m.saves++
	return nil
}

// Saved returns the last saved sequence and the number of successful saves.
func (m *Memory) Saved() ([]task.Task, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return task.Clone(m.tasks), m.saves
}

// Replace swaps the stored sequence as another process would and notifies
// watchers.
func (m *Memory) Replace(tasks []task.Task) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks = task.Clone(tasks)
	for _, w := range m.watchers {
		select {
		case w <- Event{Type: EventTasksChanged}:
		default:
		}
	}
}

func (m *Memory) Settings(_ context.Context) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return maps.Clone(m.settings), nil
}

func (m *Memory) SetSetting(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings[key] = value
	return nil
}

func (m *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 16)
	m.mu.Lock()
	m.watchers = append(m.watchers, ch)
	m.mu.Unlock()
	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, w := range m.watchers {
			if w == ch {
				m.watchers = append(m.watchers[:i], m.watchers[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch, nil
}

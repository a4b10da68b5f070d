// Package app owns the application state: the task sequence, selection, undo
// history, drag gesture and display mode. Every mutation goes through a single
// command path that persists the sequence and records an undo step.
//
// A Service is not safe for concurrent use. Drive it from one goroutine, or
// funnel asynchronous callers through a Dispatcher.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"tableflip.dev/frog/pkg/history"
	"tableflip.dev/frog/pkg/mode"
	"tableflip.dev/frog/pkg/reorder"
	"tableflip.dev/frog/pkg/selection"
	"tableflip.dev/frog/pkg/store"
	"tableflip.dev/frog/pkg/task"
)

var (
	ErrNotFound  = errors.New("app: task not found")
	ErrAmbiguous = errors.New("app: task id is ambiguous")
)

// Service provides the task-list commands shared by the CLI and the terminal
// UI.
type Service struct {
	persistence store.Persistence
	settings    store.Settings

	log           *slog.Logger
	now           func() time.Time
	newID         func() string
	undoLimit     int
	dragThreshold float64

	tasks   []task.Task
	sel     selection.State
	modes   *mode.Controller
	history *history.Log
	drag    *reorder.Gesture

	subMu sync.Mutex
	subs  []chan Event
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for persistence diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock replaces time.Now for completion timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDs replaces the id generator.
func WithIDs(newID func() string) Option {
	return func(s *Service) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// WithUndoLimit bounds the number of undo steps kept.
func WithUndoLimit(n int) Option {
	return func(s *Service) { s.undoLimit = n }
}

// WithDragThreshold sets the distance a press must travel to become a drag.
func WithDragThreshold(d float64) Option {
	return func(s *Service) { s.dragThreshold = d }
}

// New loads the task sequence from p and returns a Service in List mode with
// an empty history. When p also implements store.Settings, the last known
// geometry of each mode is read from it.
func New(ctx context.Context, p store.Persistence, opts ...Option) (*Service, error) {
	if p == nil {
		return nil, errors.New("app: no persistence configured")
	}
	s := &Service{
		persistence: p,
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:         time.Now,
		newID:       task.NewID,
		sel:         selection.Normal{},
		modes:       mode.NewController(),
	}
	if st, ok := p.(store.Settings); ok {
		s.settings = st
	}
	for _, opt := range opts {
		opt(s)
	}
	s.history = history.NewLog(s.undoLimit)

	tasks, err := p.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("app: load tasks: %w", err)
	}
	s.tasks = tasks
	s.loadGeometry(ctx)
	return s, nil
}

// Tasks returns a copy of the whole ordered sequence, completed tasks
// included.
func (s *Service) Tasks() []task.Task {
	return task.Clone(s.tasks)
}

// ActiveTasks returns the incomplete tasks with the frog first.
func (s *Service) ActiveTasks() []task.Task {
	return task.Clone(task.Active(s.tasks))
}

// Task returns the task with id.
func (s *Service) Task(id string) (task.Task, bool) {
	i := task.Index(s.tasks, id)
	if i == -1 {
		return task.Task{}, false
	}
	return task.Clone(s.tasks[i : i+1])[0], true
}

// Resolve expands a unique id prefix to a full task id.
func (s *Service) Resolve(prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", ErrNotFound
	}
	match := ""
	for _, t := range s.tasks {
		if t.ID == prefix {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, prefix) {
			if match != "" {
				return "", fmt.Errorf("%w: %q", ErrAmbiguous, prefix)
			}
			match = t.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("%w: %q", ErrNotFound, prefix)
	}
	return match, nil
}

// Reload replaces the sequence with what the persistence layer holds now. It
// is used when another process wrote to the store. A changed sequence drops
// the undo history, since its snapshots no longer describe the data.
func (s *Service) Reload(ctx context.Context) (bool, error) {
	tasks, err := s.persistence.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("app: reload tasks: %w", err)
	}
	if task.Equal(tasks, s.tasks) {
		return false, nil
	}
	s.tasks = tasks
	s.history.Reset()
	s.drag = nil
	s.autoExitFocus()
	s.pruneSelection()
	s.log.Debug("reloaded tasks", "count", len(tasks))
	s.notify(Event{Type: EventChanged, Label: "Reload"})
	return true, nil
}

func (s *Service) editing() bool {
	return selection.IsEditing(s.sel)
}

func (s *Service) activeIDs() []string {
	return task.IDs(task.Active(s.tasks))
}

func (s *Service) isActive(id string) bool {
	i := task.Index(s.tasks, id)
	return i != -1 && !s.tasks[i].IsCompleted
}

// pruneSelection drops selected ids that are gone or completed. An edit
// survives as long as its task exists.
func (s *Service) pruneSelection() {
	if e, ok := s.sel.(selection.Editing); ok {
		if task.Index(s.tasks, e.ID) == -1 {
			s.sel = selection.Normal{}
		}
		return
	}
	s.sel = selection.Prune(s.sel, s.isActive)
}

// autoExitFocus leaves Focus when nothing is left to focus on.
func (s *Service) autoExitFocus() {
	if s.modes.Mode() == mode.Focus && len(task.Active(s.tasks)) == 0 {
		s.modes.ExitFocus(nil)
	}
}

// commit is the single mutation path: it swaps in next, applies the automatic
// Focus exit, persists, records one undo step and notifies subscribers.
func (s *Service) commit(kind history.Kind, label string, next []task.Task) bool {
	before := history.State{Tasks: s.tasks, Mode: s.modes.Mode()}
	s.tasks = next
	s.autoExitFocus()
	after := history.State{Tasks: s.tasks, Mode: s.modes.Mode()}

	s.persist()
	s.history.Push(history.Entry{
		Kind:   kind,
		Label:  label,
		Before: before,
		After:  after,
		At:     s.now(),
	})
	s.log.Debug("committed", "kind", kind, "label", label, "tasks", len(s.tasks))
	s.notify(Event{Type: EventChanged, Label: label})
	return true
}

// persist saves the sequence. A failed save keeps the in-memory state and is
// reported to subscribers.
func (s *Service) persist() {
	if err := s.persistence.Save(s.tasks); err != nil {
		s.log.Error("failed to save tasks", "err", err)
		s.notify(Event{Type: EventPersistFailed, Err: err})
	}
}

// Undo reverts the latest command, including a mode change it caused.
func (s *Service) Undo() bool {
	if s.editing() {
		return false
	}
	e, ok := s.history.Undo()
	if !ok {
		return false
	}
	s.apply(e.Before, e.ChangedMode())
	s.notify(Event{Type: EventChanged, Label: "Undo " + e.Label})
	return true
}

// Redo reapplies the latest undone command.
func (s *Service) Redo() bool {
	if s.editing() {
		return false
	}
	e, ok := s.history.Redo()
	if !ok {
		return false
	}
	s.apply(e.After, e.ChangedMode())
	s.notify(Event{Type: EventChanged, Label: "Redo " + e.Label})
	return true
}

// apply swaps in a recorded state. The recorded mode is only restored when
// the entry itself switched modes; otherwise the user's current mode stays.
func (s *Service) apply(st history.State, restoreMode bool) {
	s.tasks = st.Tasks
	if restoreMode {
		s.modes.Restore(st.Mode)
	} else {
		s.autoExitFocus()
	}
	s.drag = nil
	s.pruneSelection()
	s.persist()
}

func (s *Service) loadGeometry(ctx context.Context) {
	if s.settings == nil {
		return
	}
	values, err := s.settings.Settings(ctx)
	if err != nil {
		s.log.Warn("failed to read settings", "err", err)
		return
	}
	for _, m := range []mode.Mode{mode.List, mode.Focus} {
		raw, ok := values[geometryKey(m)]
		if !ok {
			continue
		}
		var g mode.Geometry
		if err := json.Unmarshal([]byte(raw), &g); err != nil {
			s.log.Warn("ignoring malformed geometry", "mode", m, "err", err)
			continue
		}
		s.modes.SetGeometry(m, g)
	}
}

func (s *Service) saveGeometry(m mode.Mode) {
	if s.settings == nil {
		return
	}
	g, ok := s.modes.Geometry(m)
	if !ok {
		return
	}
	data, err := json.Marshal(g)
	if err != nil {
		s.log.Error("failed to encode geometry", "mode", m, "err", err)
		return
	}
	if err := s.settings.SetSetting(geometryKey(m), string(data)); err != nil {
		s.log.Error("failed to save geometry", "mode", m, "err", err)
	}
}

func geometryKey(m mode.Mode) string {
	return "geometry." + m.String()
}

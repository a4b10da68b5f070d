package app

import (
	"context"
	"fmt"

	"tableflip.dev/frog/pkg/mode"
	"tableflip.dev/frog/pkg/selection"
	"tableflip.dev/frog/pkg/task"
)

// EventType enumerates the notifications a Service publishes.
type EventType int

const (
	// EventChanged follows every state change; read Snapshot for the result.
	EventChanged EventType = iota
	// EventPersistFailed reports a save that did not reach storage. The
	// in-memory change stands.
	EventPersistFailed
	// EventQuickAddRequested asks the presentation layer to open its
	// Quick-Add surface.
	EventQuickAddRequested
)

func (t EventType) String() string {
	switch t {
	case EventChanged:
		return "changed"
	case EventPersistFailed:
		return "persist-failed"
	case EventQuickAddRequested:
		return "quick-add-requested"
	default:
		return fmt.Sprintf("event(%d)", int(t))
	}
}

// Event is one notification.
type Event struct {
	Type  EventType
	Label string
	Err   error
}

// Subscribe returns a channel of events that is closed when ctx is done. Slow
// subscribers miss events rather than block commands.
func (s *Service) Subscribe(ctx context.Context) <-chan Event {
	ch := make(chan Event, 32)
	s.subMu.Lock()
	s.subs = append(s.subs, ch)
	s.subMu.Unlock()

	go func() {
		<-ctx.Done()
		s.subMu.Lock()
		defer s.subMu.Unlock()
		for i, c := range s.subs {
			if c == ch {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch
}

func (s *Service) notify(evt Event) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- evt:
		default:
		}
	}
}

// Snapshot is an immutable view of the state for presentation.
type Snapshot struct {
	Mode      mode.Mode
	Animating bool
	Geometry  map[mode.Mode]mode.Geometry

	Tasks     []task.Task
	Active    []task.Task
	Completed []task.Task
	Selection selection.State

	Dragging    bool
	DragIDs     []string
	DragPreview int

	CanUndo   bool
	CanRedo   bool
	UndoLabel string
	RedoLabel string
}

// Focused returns the task shown in Focus mode: the first active task.
func (sn Snapshot) Focused() (task.Task, bool) {
	if len(sn.Active) == 0 {
		return task.Task{}, false
	}
	return sn.Active[0], true
}

// Selected reports whether id is part of the current selection.
func (sn Snapshot) Selected(id string) bool {
	sel, ok := sn.Selection.(selection.Selected)
	return ok && sel.Contains(id)
}

// Editing returns the id and buffer of the task being edited.
func (sn Snapshot) Editing() (selection.Editing, bool) {
	e, ok := sn.Selection.(selection.Editing)
	return e, ok
}

// Snapshot copies the current state.
func (s *Service) Snapshot() Snapshot {
	sn := Snapshot{
		Mode:      s.modes.Mode(),
		Animating: s.modes.Animating(),
		Geometry:  make(map[mode.Mode]mode.Geometry),
		Tasks:     task.Clone(s.tasks),
		Active:    task.Clone(task.Active(s.tasks)),
		Completed: task.Clone(task.Completed(s.tasks)),
		Selection: copyState(s.sel),
		CanUndo:   s.history.CanUndo(),
		CanRedo:   s.history.CanRedo(),
		UndoLabel: s.history.UndoLabel(),
		RedoLabel: s.history.RedoLabel(),
	}
	for _, m := range []mode.Mode{mode.List, mode.Focus} {
		if g, ok := s.modes.Geometry(m); ok {
			sn.Geometry[m] = g
		}
	}
	if s.drag != nil {
		sn.Dragging = s.drag.Dragging()
		sn.DragIDs = append([]string(nil), s.drag.Block...)
		sn.DragPreview = s.drag.Preview()
	}
	return sn
}

func copyState(st selection.State) selection.State {
	if sel, ok := st.(selection.Selected); ok {
		return selection.Selected{IDs: selection.IDs(sel), Anchor: sel.Anchor}
	}
	return st
}

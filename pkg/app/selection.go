package app

import (
	"tableflip.dev/frog/pkg/selection"
	"tableflip.dev/frog/pkg/task"
)

// Selection returns the current selection or edit state.
func (s *Service) Selection() selection.State {
	return copyState(s.sel)
}

// Click applies a click on an active task.
func (s *Service) Click(id string, mod selection.Modifier) bool {
	if s.editing() || !s.isActive(id) {
		return false
	}
	s.sel = selection.Click(s.sel, id, mod, s.activeIDs())
	s.notify(Event{Type: EventChanged})
	return true
}

// DoubleClick starts editing any known task, active or completed, with its
// title as the buffer.
func (s *Service) DoubleClick(id string) bool {
	i := task.Index(s.tasks, id)
	if s.editing() || i == -1 {
		return false
	}
	t := s.tasks[i]
	s.sel = selection.DoubleClick(s.sel, id, t.Title)
	s.notify(Event{Type: EventChanged})
	return true
}

// SetEditBuffer replaces the uncommitted title of the task being edited.
func (s *Service) SetEditBuffer(buffer string) bool {
	if !s.editing() {
		return false
	}
	s.sel = selection.SetBuffer(s.sel, buffer)
	return true
}

// SubmitEdit leaves editing and commits the buffer when it is non-empty and
// differs from the title. It reports whether a change was committed.
func (s *Service) SubmitEdit() bool {
	e, ok := s.sel.(selection.Editing)
	if !ok {
		return false
	}
	s.sel = selection.Normal{}
	if s.updateTask(e.ID, e.Buffer) {
		return true
	}
	s.notify(Event{Type: EventChanged})
	return false
}

// CancelEdit leaves editing and discards the buffer.
func (s *Service) CancelEdit() bool {
	if !s.editing() {
		return false
	}
	s.sel = selection.Normal{}
	s.notify(Event{Type: EventChanged})
	return true
}

// FocusNewTaskInput clears the selection, as focusing the new-task field does.
// It also ends an edit in progress without committing it.
func (s *Service) FocusNewTaskInput() {
	s.sel = selection.Normal{}
	s.notify(Event{Type: EventChanged})
}

// SelectNext moves the selection cursor down. With extend the next task is
// added to the selection.
func (s *Service) SelectNext(extend bool) bool {
	return s.step(1, extend)
}

// SelectPrevious moves the selection cursor up.
func (s *Service) SelectPrevious(extend bool) bool {
	return s.step(-1, extend)
}

func (s *Service) step(delta int, extend bool) bool {
	if s.editing() {
		return false
	}
	s.sel = selection.Step(s.sel, delta, extend, s.activeIDs())
	s.notify(Event{Type: EventChanged})
	return true
}

// SelectAll selects every active task.
func (s *Service) SelectAll() bool {
	if s.editing() {
		return false
	}
	s.sel = selection.All(s.sel, s.activeIDs())
	s.notify(Event{Type: EventChanged})
	return true
}

// ClearSelection returns to Normal. Editing is left to CancelEdit.
func (s *Service) ClearSelection() bool {
	if s.editing() {
		return false
	}
	if _, ok := s.sel.(selection.Normal); ok {
		return false
	}
	s.sel = selection.Normal{}
	s.notify(Event{Type: EventChanged})
	return true
}

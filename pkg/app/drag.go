package app

import (
	"slices"

	"tableflip.dev/frog/pkg/reorder"
	"tableflip.dev/frog/pkg/selection"
	"tableflip.dev/frog/pkg/task"
)

// BeginDrag starts a press on the active task id. When id is part of a
// multi-selection the whole selection moves with it.
func (s *Service) BeginDrag(id string) bool {
	if s.editing() || !s.isActive(id) {
		return false
	}
	view := s.activeIDs()
	origin := slices.Index(view, id)

	block := []string{id}
	if id != task.FrogID(s.tasks) {
		if sel, ok := s.sel.(selection.Selected); ok && sel.Contains(id) {
			block = reorder.Movable(s.tasks, sel.IDs)
		}
	}
	s.drag = reorder.Begin(id, block, origin, s.dragThreshold)
	return true
}

// DragTo feeds the cumulative pointer distance since BeginDrag, measured in
// the same unit as rowHeight.
func (s *Service) DragTo(delta, rowHeight float64) bool {
	if s.drag == nil {
		return false
	}
	frog := task.FrogID(s.tasks)
	wasDragging, preview := s.drag.Dragging(), s.drag.Preview()
	s.drag.Update(delta, rowHeight, len(s.activeIDs()), frog != "", s.drag.Primary == frog)
	if s.drag.Dragging() != wasDragging || s.drag.Preview() != preview {
		s.notify(Event{Type: EventChanged})
	}
	return s.drag.Dragging()
}

// EndDrag releases the gesture and commits the move when the preview index
// changed. It reports whether a move was committed.
func (s *Service) EndDrag() bool {
	g := s.drag
	s.drag = nil
	if g == nil {
		return false
	}
	c, ok := g.Release()
	if !ok {
		if g.Dragging() {
			s.notify(Event{Type: EventChanged})
		}
		return false
	}
	if s.move(c.IDs, c.ToIndex) {
		return true
	}
	s.notify(Event{Type: EventChanged})
	return false
}

// CancelDrag drops the gesture without moving anything.
func (s *Service) CancelDrag() {
	if s.drag == nil {
		return
	}
	s.drag = nil
	s.notify(Event{Type: EventChanged})
}

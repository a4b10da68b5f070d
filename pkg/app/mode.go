package app

import (
	"tableflip.dev/frog/pkg/mode"
	"tableflip.dev/frog/pkg/task"
)

// Mode returns the current display mode.
func (s *Service) Mode() mode.Mode {
	return s.modes.Mode()
}

// EnterFocus switches to Focus when there is an active task. before is the
// List geometry at the moment of the switch and may be nil.
func (s *Service) EnterFocus(before *mode.Geometry) bool {
	if s.editing() {
		return false
	}
	if !s.modes.EnterFocus(len(task.Active(s.tasks)) > 0, before) {
		return false
	}
	s.saveGeometry(mode.List)
	s.notify(Event{Type: EventChanged, Label: "Enter Focus"})
	return true
}

// ExitFocus switches back to List.
func (s *Service) ExitFocus(before *mode.Geometry) bool {
	if s.editing() {
		return false
	}
	if !s.modes.ExitFocus(before) {
		return false
	}
	s.saveGeometry(mode.Focus)
	s.notify(Event{Type: EventChanged, Label: "Exit Focus"})
	return true
}

// ToggleMode flips between List and Focus.
func (s *Service) ToggleMode(before *mode.Geometry) bool {
	if s.modes.Mode() == mode.Focus {
		return s.ExitFocus(before)
	}
	return s.EnterFocus(before)
}

// Animating reports whether the presentation layer is still moving between
// modes.
func (s *Service) Animating() bool {
	return s.modes.Animating()
}

// SettleTransition lowers the animating gate once the presentation layer has
// finished the switch. after is the geometry the new mode settled on.
func (s *Service) SettleTransition(after *mode.Geometry) {
	if !s.modes.Animating() {
		return
	}
	s.modes.Settle(after)
	if after != nil {
		s.saveGeometry(s.modes.Mode())
	}
	s.notify(Event{Type: EventChanged})
}

// RecordGeometry stores the last known geometry of m, for example after the
// user moved the window.
func (s *Service) RecordGeometry(m mode.Mode, g mode.Geometry) {
	s.modes.SetGeometry(m, g)
	s.saveGeometry(m)
}

// Geometry returns the last known geometry of m.
func (s *Service) Geometry(m mode.Mode) (mode.Geometry, bool) {
	return s.modes.Geometry(m)
}

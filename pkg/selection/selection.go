// Package selection implements the mutually exclusive selection and edit
// states of the task list. Every transition is a pure function from one State
// to the next; the caller owns the current value.
package selection

import "slices"

// State is one of Normal, Selected or Editing.
type State interface {
	isState()
}

// Normal means nothing is selected or edited.
type Normal struct{}

// Selected holds a non-empty set of selected ids. Anchor is the most recently
// selected id and is the origin of range selection.
type Selected struct {
	IDs    []string
	Anchor string
}

// Editing holds the id being edited and its uncommitted buffer.
type Editing struct {
	ID     string
	Buffer string
}

func (Normal) isState()   {}
func (Selected) isState() {}
func (Editing) isState()  {}

// Modifier describes the modifier keys held during a click.
type Modifier int

const (
	// Replace is a plain click.
	Replace Modifier = iota
	// Toggle is Cmd/Ctrl-click.
	Toggle
	// Range is Shift-click.
	Range
)

// Contains reports whether id is selected.
func (s Selected) Contains(id string) bool {
	return slices.Contains(s.IDs, id)
}

// Ordered returns the selected ids in the order they appear in view. Ids not
// in view are dropped.
func (s Selected) Ordered(view []string) []string {
	out := make([]string, 0, len(s.IDs))
	for _, id := range view {
		if s.Contains(id) {
			out = append(out, id)
		}
	}
	return out
}

// IDs returns the selected ids of s, or nil when s is not a selection.
func IDs(s State) []string {
	if sel, ok := s.(Selected); ok {
		return slices.Clone(sel.IDs)
	}
	return nil
}

// IsEditing reports whether s is an Editing state.
func IsEditing(s State) bool {
	_, ok := s.(Editing)
	return ok
}

func single(id string) State {
	return Selected{IDs: []string{id}, Anchor: id}
}

// Click applies a click on id. active is the active view in display order and
// is used for range selection. Clicks are ignored while editing.
func Click(s State, id string, mod Modifier, active []string) State {
	switch cur := s.(type) {
	case Editing:
		return s
	case Selected:
		switch mod {
		case Toggle:
			return toggle(cur, id)
		case Range:
			return rangeSelect(cur, id, active)
		}
	}
	return single(id)
}

func toggle(cur Selected, id string) State {
	if !cur.Contains(id) {
		ids := append(slices.Clone(cur.IDs), id)
		return Selected{IDs: ids, Anchor: id}
	}
	ids := make([]string, 0, len(cur.IDs))
	for _, v := range cur.IDs {
		if v != id {
			ids = append(ids, v)
		}
	}
	if len(ids) == 0 {
		return Normal{}
	}
	anchor := cur.Anchor
	if anchor == id {
		anchor = ids[len(ids)-1]
	}
	return Selected{IDs: ids, Anchor: anchor}
}

func rangeSelect(cur Selected, id string, active []string) State {
	from := slices.Index(active, cur.Anchor)
	to := slices.Index(active, id)
	if from == -1 || to == -1 {
		return single(id)
	}
	lo, hi := min(from, to), max(from, to)
	return Selected{IDs: slices.Clone(active[lo : hi+1]), Anchor: cur.Anchor}
}

// DoubleClick starts editing id with title as the initial buffer.
func DoubleClick(s State, id, title string) State {
	if IsEditing(s) {
		return s
	}
	return Editing{ID: id, Buffer: title}
}

// SetBuffer replaces the edit buffer; other states are returned unchanged.
func SetBuffer(s State, buffer string) State {
	if e, ok := s.(Editing); ok {
		e.Buffer = buffer
		return e
	}
	return s
}

// All selects every id of active, or returns Normal when it is empty.
func All(s State, active []string) State {
	if IsEditing(s) {
		return s
	}
	if len(active) == 0 {
		return Normal{}
	}
	return Selected{IDs: slices.Clone(active), Anchor: active[len(active)-1]}
}

// Step moves the selection cursor by delta over active. With extend the new
// id is added to the selection instead of replacing it. From Normal a forward
// step selects the first task and a backward step the last.
func Step(s State, delta int, extend bool, active []string) State {
	if len(active) == 0 {
		if IsEditing(s) {
			return s
		}
		return Normal{}
	}
	switch cur := s.(type) {
	case Editing:
		return s
	case Selected:
		idx := slices.Index(active, cur.Anchor)
		if idx == -1 {
			break
		}
		next := min(max(idx+delta, 0), len(active)-1)
		id := active[next]
		if !extend {
			return single(id)
		}
		if cur.Contains(id) {
			return Selected{IDs: slices.Clone(cur.IDs), Anchor: id}
		}
		return Selected{IDs: append(slices.Clone(cur.IDs), id), Anchor: id}
	}
	if delta < 0 {
		return single(active[len(active)-1])
	}
	return single(active[0])
}

// AfterDelete picks the state that follows deleting ids from the active view
// before. The task that slid into the lowest deleted index is selected, or the
// new last task when the deletion was at the end, or Normal when nothing is
// left.
func AfterDelete(before []string, deleted []string, after []string) State {
	if len(after) == 0 {
		return Normal{}
	}
	lowest := -1
	for i, id := range before {
		if slices.Contains(deleted, id) {
			lowest = i
			break
		}
	}
	if lowest == -1 {
		return Normal{}
	}
	if lowest < len(after) {
		return single(after[lowest])
	}
	return single(after[len(after)-1])
}

// Prune drops ids for which exists returns false. An edit of a missing task
// falls back to Normal.
func Prune(s State, exists func(id string) bool) State {
	switch cur := s.(type) {
	case Editing:
		if !exists(cur.ID) {
			return Normal{}
		}
	case Selected:
		ids := make([]string, 0, len(cur.IDs))
		for _, id := range cur.IDs {
			if exists(id) {
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			return Normal{}
		}
		anchor := cur.Anchor
		if !slices.Contains(ids, anchor) {
			anchor = ids[len(ids)-1]
		}
		return Selected{IDs: ids, Anchor: anchor}
	}
	return s
}

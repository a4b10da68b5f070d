// Package history keeps the undo/redo log of committed commands as whole
// before/after snapshots.
package history

import (
	"time"

	"tableflip.dev/frog/pkg/mode"
	"tableflip.dev/frog/pkg/task"
)

// DefaultLimit caps the number of undoable entries.
const DefaultLimit = 100

// Kind identifies the command that produced an entry.
type Kind string

const (
	KindAdd         Kind = "add"
	KindAddMultiple Kind = "add-multiple"
	KindComplete    Kind = "complete"
	KindUpdate      Kind = "update"
	KindDelete      Kind = "delete"
	KindToggleFrog  Kind = "toggle-frog"
	KindPriority    Kind = "priority"
	KindMove        Kind = "move"
)

// State is everything an entry restores.
type State struct {
	Tasks []task.Task
	Mode  mode.Mode
}

// Clone deep-copies s.
func (s State) Clone() State {
	return State{Tasks: task.Clone(s.Tasks), Mode: s.Mode}
}

// Entry is one committed command.
type Entry struct {
	Kind   Kind
	Label  string
	Before State
	After  State
	At     time.Time
}

// ChangedMode reports whether the command switched the display mode, which
// only happens when it caused the automatic exit from Focus.
func (e Entry) ChangedMode() bool {
	return e.Before.Mode != e.After.Mode
}

// Log is a bounded undo stack with a redo stack that is cleared on every push.
type Log struct {
	limit int
	undo  []Entry
	redo  []Entry
}

// NewLog returns a log holding at most limit entries; limit <= 0 uses
// DefaultLimit.
func NewLog(limit int) *Log {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Log{limit: limit}
}

// Push records e and drops the redo history.
func (l *Log) Push(e Entry) {
	e.Before = e.Before.Clone()
	e.After = e.After.Clone()
	l.undo = append(l.undo, e)
	if len(l.undo) > l.limit {
		l.undo = append([]Entry(nil), l.undo[len(l.undo)-l.limit:]...)
	}
	l.redo = nil
}

// Undo pops the latest entry onto the redo stack. The caller reapplies
// Before.
func (l *Log) Undo() (Entry, bool) {
	if len(l.undo) == 0 {
		return Entry{}, false
	}
	e := l.undo[len(l.undo)-1]
	l.undo = l.undo[:len(l.undo)-1]
	l.redo = append(l.redo, e)
	return cloneEntry(e), true
}

// Redo pops the latest undone entry back onto the undo stack. The caller
// reapplies After.
func (l *Log) Redo() (Entry, bool) {
	if len(l.redo) == 0 {
		return Entry{}, false
	}
	e := l.redo[len(l.redo)-1]
	l.redo = l.redo[:len(l.redo)-1]
	l.undo = append(l.undo, e)
	return cloneEntry(e), true
}

func (l *Log) CanUndo() bool { return len(l.undo) > 0 }
func (l *Log) CanRedo() bool { return len(l.redo) > 0 }

// UndoLabel is the label of the entry Undo would revert.
func (l *Log) UndoLabel() string {
	if len(l.undo) == 0 {
		return ""
	}
	return l.undo[len(l.undo)-1].Label
}

// RedoLabel is the label of the entry Redo would reapply.
func (l *Log) RedoLabel() string {
	if len(l.redo) == 0 {
		return ""
	}
	return l.redo[len(l.redo)-1].Label
}

// Len returns the number of undoable entries.
func (l *Log) Len() int { return len(l.undo) }

// Reset forgets every entry.
func (l *Log) Reset() {
	l.undo = nil
	l.redo = nil
}

func cloneEntry(e Entry) Entry {
	e.Before = e.Before.Clone()
	e.After = e.After.Clone()
	return e
}

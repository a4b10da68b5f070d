// Package task holds the task model and the pure projections over an ordered
// task sequence.
package task

import (
	"time"

	"github.com/google/uuid"
)

// Priority is a bounded task priority. Values outside [PriorityLow,
// PriorityHigh] are clamped by Clamp.
type Priority int

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3

	DefaultPriority = PriorityLow
)

// Clamp forces p into the supported range.
func (p Priority) Clamp() Priority {
	switch {
	case p < PriorityLow:
		return PriorityLow
	case p > PriorityHigh:
		return PriorityHigh
	default:
		return p
	}
}

func (p Priority) String() string {
	switch p.Clamp() {
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	default:
		return "low"
	}
}

// Task is one item of the list.
type Task struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	IsCompleted bool       `json:"isCompleted" yaml:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt,omitempty" yaml:"completedAt,omitempty"`
	IsFrog      bool       `json:"isFrog" yaml:"isFrog"`
	Priority    Priority   `json:"priority" yaml:"priority"`
}

// New returns an incomplete task with a fresh id and the default priority.
func New(title string) Task {
	return Task{
		ID:       NewID(),
		Title:    title,
		Priority: DefaultPriority,
	}
}

// NewID returns a random opaque identifier.
func NewID() string {
	return uuid.NewString()
}

// IsActiveFrog reports whether t is the pinned frog of the active view.
func (t Task) IsActiveFrog() bool {
	return t.IsFrog && !t.IsCompleted
}

// Clone deep-copies a task sequence so snapshots never share CompletedAt.
func Clone(tasks []Task) []Task {
	if tasks == nil {
		return nil
	}
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		if t.CompletedAt != nil {
			at := *t.CompletedAt
			t.CompletedAt = &at
		}
		out[i] = t
	}
	return out
}

// Index returns the position of id in tasks, or -1.
func Index(tasks []Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// IDs lists the ids of tasks in order.
func IDs(tasks []Task) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

// Equal reports whether a and b hold the same tasks in the same order.
func Equal(a, b []Task) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		x, y := a[i], b[i]
		if x.ID != y.ID || x.Title != y.Title || x.IsCompleted != y.IsCompleted ||
			x.IsFrog != y.IsFrog || x.Priority != y.Priority {
			return false
		}
		switch {
		case x.CompletedAt == nil && y.CompletedAt == nil:
		case x.CompletedAt == nil || y.CompletedAt == nil:
			return false
		case !x.CompletedAt.Equal(*y.CompletedAt):
			return false
		}
	}
	return true
}

// Package glyph holds the symbols used to draw tasks in the terminal.
package glyph

import (
	"strings"

	"tableflip.dev/frog/pkg/task"
)

type Glyph struct {
	Symbol  string
	Meaning string
}

const (
	Open      = "○"
	Completed = "✔"
	Frog      = "◆"
	Priority  = "!"
)

// DefaultGlyphs lists the legend printed by `frog key`.
func DefaultGlyphs() []Glyph {
	return []Glyph{
		{Symbol: Open, Meaning: "task"},
		{Symbol: Completed, Meaning: "task completed"},
		{Symbol: Frog, Meaning: "frog, the task to do first"},
		{Symbol: PriorityMark(task.PriorityMedium), Meaning: "medium priority"},
		{Symbol: PriorityMark(task.PriorityHigh), Meaning: "high priority"},
	}
}

// Bullet returns the leading symbol for t.
func Bullet(t task.Task) string {
	switch {
	case t.IsCompleted:
		return Completed
	case t.IsFrog:
		return Frog
	default:
		return Open
	}
}

// PriorityMark renders p as one mark per level above low, or "" for low.
func PriorityMark(p task.Priority) string {
	return strings.Repeat(Priority, int(p.Clamp()-task.PriorityLow))
}

// Package reorder computes drag previews and applies moves within the active
// view of a task sequence. Nothing here knows about pointers or pixels beyond
// the numbers it is handed.
package reorder

import (
	"math"
	"slices"

	"tableflip.dev/frog/pkg/task"
)

// DefaultThreshold is the distance a pointer must travel before a press turns
// into a drag.
const DefaultThreshold = 4.0

// Move places the tasks named by ids as one block starting at active-view
// index toIndex, keeping their relative active order. Completed tasks keep
// their storage slots and the active frog is never moved or displaced from
// the front of the view. It reports false when the order would not change.
func Move(tasks []task.Task, ids []string, toIndex int) ([]task.Task, bool) {
	frog := task.FrogID(tasks)

	var slots []int
	var others []task.Task
	for i, t := range tasks {
		if t.IsCompleted || t.ID == frog {
			continue
		}
		slots = append(slots, i)
		others = append(others, t)
	}

	var moving, remaining []task.Task
	for _, t := range others {
		if slices.Contains(ids, t.ID) {
			moving = append(moving, t)
		} else {
			remaining = append(remaining, t)
		}
	}
	if len(moving) == 0 {
		return tasks, false
	}

	target := toIndex
	if frog != "" {
		target--
	}
	target = min(max(target, 0), len(remaining))

	reordered := make([]task.Task, 0, len(others))
	reordered = append(reordered, remaining[:target]...)
	reordered = append(reordered, moving...)
	reordered = append(reordered, remaining[target:]...)

	if slices.Equal(task.IDs(reordered), task.IDs(others)) {
		return tasks, false
	}

	out := task.Clone(tasks)
	for i, slot := range slots {
		out[slot] = reordered[i]
	}
	return out, true
}

// Movable filters ids down to the tasks Move would actually move, in active
// order.
func Movable(tasks []task.Task, ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, t := range task.Active(tasks) {
		if t.IsFrog {
			continue
		}
		if slices.Contains(ids, t.ID) {
			out = append(out, t.ID)
		}
	}
	return out
}

// StepTarget returns the toIndex that shifts block by delta positions in view.
// The block is anchored on its first member.
func StepTarget(view, block []string, delta int) int {
	first := len(view)
	for _, id := range block {
		if i := slices.Index(view, id); i != -1 && i < first {
			first = i
		}
	}
	return first + delta
}

// PreviewIndex maps a cumulative drag distance to the index the dragged row
// would drop at. The result stays inside [0, count) and below the frog slot
// when frogPinned is set; the frog itself always previews at 0.
func PreviewIndex(delta, rowHeight float64, origin, count int, frogPinned, draggingFrog bool) int {
	if count <= 0 {
		return 0
	}
	if draggingFrog {
		return 0
	}
	if rowHeight <= 0 {
		return origin
	}
	idx := origin + int(math.Round(delta/rowHeight))
	lo := 0
	if frogPinned {
		lo = 1
	}
	return min(max(idx, lo), count-1)
}

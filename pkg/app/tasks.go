package app

import (
	"fmt"
	"slices"
	"strings"

	"tableflip.dev/frog/pkg/history"
	"tableflip.dev/frog/pkg/reorder"
	"tableflip.dev/frog/pkg/selection"
	"tableflip.dev/frog/pkg/task"
)

// AddTask appends a task with the default priority. An empty title is
// ignored.
func (s *Service) AddTask(title string) (string, bool) {
	return s.AddTaskWithPriority(title, task.DefaultPriority)
}

// AddTaskWithPriority appends a task with priority clamped to the supported
// range. It is the Quick-Add entry point and is accepted while an edit is in
// progress.
func (s *Service) AddTaskWithPriority(title string, priority task.Priority) (string, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", false
	}
	t := task.Task{ID: s.newID(), Title: title, Priority: priority.Clamp()}
	next := append(task.Clone(s.tasks), t)
	s.commit(history.KindAdd, "Add Task", next)
	return t.ID, true
}

// AddMultipleTasks cleans every title of list markers, drops the empty ones
// and appends the rest as one undo step.
func (s *Service) AddMultipleTasks(titles []string) ([]string, bool) {
	cleaned := task.CleanTitles(titles)
	if len(cleaned) == 0 {
		return nil, false
	}
	next := task.Clone(s.tasks)
	ids := make([]string, 0, len(cleaned))
	for _, title := range cleaned {
		t := task.Task{ID: s.newID(), Title: title, Priority: task.DefaultPriority}
		next = append(next, t)
		ids = append(ids, t.ID)
	}
	label := "Add Task"
	if len(ids) > 1 {
		label = fmt.Sprintf("Add %d Tasks", len(ids))
	}
	s.commit(history.KindAddMultiple, label, next)
	return ids, true
}

// PasteTasks splits pasted text into lines and adds them with
// AddMultipleTasks.
func (s *Service) PasteTasks(text string) ([]string, bool) {
	return s.AddMultipleTasks(task.SplitPasted(text))
}

// CompleteTask marks id completed. Completing the last active task while in
// Focus returns to List in the same undo step.
func (s *Service) CompleteTask(id string) bool {
	if s.editing() {
		return false
	}
	i := task.Index(s.tasks, id)
	if i == -1 || s.tasks[i].IsCompleted {
		return false
	}
	next := task.Clone(s.tasks)
	at := s.now()
	next[i].IsCompleted = true
	next[i].CompletedAt = &at
	s.commit(history.KindComplete, "Complete Task", next)
	s.pruneSelection()
	return true
}

// UpdateTask replaces the title of id. Empty or unchanged titles are ignored.
func (s *Service) UpdateTask(id, title string) bool {
	if s.editing() {
		return false
	}
	return s.updateTask(id, title)
}

func (s *Service) updateTask(id, title string) bool {
	title = strings.TrimSpace(title)
	i := task.Index(s.tasks, id)
	if i == -1 || title == "" || s.tasks[i].Title == title {
		return false
	}
	next := task.Clone(s.tasks)
	next[i].Title = title
	return s.commit(history.KindUpdate, "Edit Task", next)
}

// DeleteTasks removes every task in ids as one undo step. Unknown ids are
// ignored. When the deleted tasks were selected, the task that slid into the
// lowest deleted row is selected next.
func (s *Service) DeleteTasks(ids []string) bool {
	if s.editing() {
		return false
	}
	next := make([]task.Task, 0, len(s.tasks))
	var deleted []string
	for _, t := range s.tasks {
		if slices.Contains(ids, t.ID) {
			deleted = append(deleted, t.ID)
			continue
		}
		next = append(next, t)
	}
	if len(deleted) == 0 {
		return false
	}

	beforeView := s.activeIDs()
	selected := selection.IDs(s.sel)
	label := "Delete Task"
	if len(deleted) > 1 {
		label = fmt.Sprintf("Delete %d Tasks", len(deleted))
	}
	s.commit(history.KindDelete, label, task.Clone(next))

	hitSelection := false
	for _, id := range deleted {
		if slices.Contains(selected, id) {
			hitSelection = true
			break
		}
	}
	if hitSelection {
		s.sel = selection.AfterDelete(beforeView, deleted, s.activeIDs())
	} else {
		s.pruneSelection()
	}
	return true
}

// DeleteSelection deletes the selected tasks.
func (s *Service) DeleteSelection() bool {
	return s.DeleteTasks(selection.IDs(s.sel))
}

// ToggleFrog flips the frog flag of id. Setting it on an incomplete task
// clears it from every other incomplete task in the same step. A completed
// task may be toggled too; only its own flag changes.
func (s *Service) ToggleFrog(id string) bool {
	if s.editing() {
		return false
	}
	i := task.Index(s.tasks, id)
	if i == -1 {
		return false
	}
	next := task.Clone(s.tasks)
	target := &next[i]
	target.IsFrog = !target.IsFrog
	label := "Unmark Frog"
	if target.IsFrog {
		label = "Mark Frog"
		if !target.IsCompleted {
			for j := range next {
				if j != i && !next[j].IsCompleted {
					next[j].IsFrog = false
				}
			}
		}
	}
	return s.commit(history.KindToggleFrog, label, next)
}

// SetPriority sets the priority of id, clamped to the supported range.
func (s *Service) SetPriority(id string, priority task.Priority) bool {
	if s.editing() {
		return false
	}
	i := task.Index(s.tasks, id)
	priority = priority.Clamp()
	if i == -1 || s.tasks[i].Priority == priority {
		return false
	}
	next := task.Clone(s.tasks)
	next[i].Priority = priority
	return s.commit(history.KindPriority, "Set Priority", next)
}

// SetSelectionPriority sets the priority of every selected task in one step.
func (s *Service) SetSelectionPriority(priority task.Priority) bool {
	if s.editing() {
		return false
	}
	ids := selection.IDs(s.sel)
	priority = priority.Clamp()
	next := task.Clone(s.tasks)
	changed := false
	for i := range next {
		if slices.Contains(ids, next[i].ID) && next[i].Priority != priority {
			next[i].Priority = priority
			changed = true
		}
	}
	if !changed {
		return false
	}
	return s.commit(history.KindPriority, "Set Priority", next)
}

// MoveTasks moves ids as one block so that it starts at active index toIndex.
// Completed tasks keep their places and the frog stays first.
func (s *Service) MoveTasks(ids []string, toIndex int) bool {
	if s.editing() {
		return false
	}
	return s.move(ids, toIndex)
}

func (s *Service) move(ids []string, toIndex int) bool {
	next, ok := reorder.Move(s.tasks, ids, toIndex)
	if !ok {
		return false
	}
	label := "Move Task"
	if n := len(reorder.Movable(s.tasks, ids)); n > 1 {
		label = fmt.Sprintf("Move %d Tasks", n)
	}
	return s.commit(history.KindMove, label, next)
}

// MoveSelectionBy shifts the selected tasks by delta rows.
func (s *Service) MoveSelectionBy(delta int) bool {
	if s.editing() || delta == 0 {
		return false
	}
	block := reorder.Movable(s.tasks, selection.IDs(s.sel))
	if len(block) == 0 {
		return false
	}
	return s.move(block, reorder.StepTarget(s.activeIDs(), block, delta))
}

// MoveSelectionToTop moves the selected tasks right below the frog, or to the
// top when there is none.
func (s *Service) MoveSelectionToTop() bool {
	if s.editing() {
		return false
	}
	block := reorder.Movable(s.tasks, selection.IDs(s.sel))
	if len(block) == 0 {
		return false
	}
	return s.move(block, 0)
}

// MoveSelectionToBottom moves the selected tasks to the end of the active
// view.
func (s *Service) MoveSelectionToBottom() bool {
	if s.editing() {
		return false
	}
	block := reorder.Movable(s.tasks, selection.IDs(s.sel))
	if len(block) == 0 {
		return false
	}
	return s.move(block, len(s.activeIDs()))
}

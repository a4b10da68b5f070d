package task

// Active projects the ordered sequence onto its active view: incomplete tasks
// in storage order, with the frog (if any) moved to the front.
func Active(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	frog := -1
	for i := range tasks {
		if tasks[i].IsCompleted {
			continue
		}
		if frog == -1 && tasks[i].IsFrog {
			frog = i
			continue
		}
		out = append(out, tasks[i])
	}
	if frog == -1 {
		return out
	}
	return append([]Task{tasks[frog]}, out...)
}

// Completed returns the completed tasks in storage order.
func Completed(tasks []Task) []Task {
	out := make([]Task, 0)
	for _, t := range tasks {
		if t.IsCompleted {
			out = append(out, t)
		}
	}
	return out
}

// FrogID returns the id of the incomplete frog, or "".
func FrogID(tasks []Task) string {
	for _, t := range tasks {
		if t.IsActiveFrog() {
			return t.ID
		}
	}
	return ""
}

// Normalize repairs a loaded sequence: priorities are clamped, repeated ids
// are dropped and only the first incomplete frog keeps its flag.
func Normalize(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	seen := make(map[string]struct{}, len(tasks))
	haveFrog := false
	for _, t := range tasks {
		if t.ID == "" {
			continue
		}
		if _, dup := seen[t.ID]; dup {
			continue
		}
		seen[t.ID] = struct{}{}
		t.Priority = t.Priority.Clamp()
		if t.IsActiveFrog() {
			if haveFrog {
				t.IsFrog = false
			}
			haveFrog = true
		}
		out = append(out, t)
	}
	return out
}

package app

import (
	"sort"
	"time"

	"tableflip.dev/frog/pkg/task"
)

// ReportDay groups the tasks completed on one calendar day.
type ReportDay struct {
	Day   time.Time
	Tasks []task.Task
}

// ReportResult lists the tasks completed inside a time window, newest day
// first.
type ReportResult struct {
	Since time.Time
	Until time.Time
	Days  []ReportDay
	Total int
	Frogs int
}

// Report returns the tasks completed between since and until, grouped by the
// local day they were completed on.
func (s *Service) Report(since, until time.Time) ReportResult {
	if since.After(until) {
		since, until = until, since
	}
	result := ReportResult{Since: since, Until: until}

	var done []task.Task
	for _, t := range task.Completed(s.tasks) {
		if t.CompletedAt == nil {
			continue
		}
		at := *t.CompletedAt
		if at.Before(since) || at.After(until) {
			continue
		}
		done = append(done, t)
	}
	if len(done) == 0 {
		return result
	}
	done = task.Clone(done)
	sort.SliceStable(done, func(i, j int) bool {
		return done[i].CompletedAt.After(*done[j].CompletedAt)
	})

	for _, t := range done {
		day := startOfDay(t.CompletedAt.Local())
		if n := len(result.Days); n == 0 || !result.Days[n-1].Day.Equal(day) {
			result.Days = append(result.Days, ReportDay{Day: day})
		}
		last := &result.Days[len(result.Days)-1]
		last.Tasks = append(last.Tasks, t)
		result.Total++
		if t.IsFrog {
			result.Frogs++
		}
	}
	return result
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/frog/pkg/app"
	"tableflip.dev/frog/pkg/glyph"
	"tableflip.dev/frog/pkg/task"
)

// PrettyPrint writes tasks for humans.
type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
}

const idWidth = 8

var spacing = strings.Repeat(" ", idWidth+2)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	if pp.ShowID {
		_, _ = fmt.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = fmt.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " task")
	default:
		_, _ = c.Fprintln(pp.out(), " tasks")
	}
}

// Tasks prints one line per task, or a faint "none" when empty.
func (pp *PrettyPrint) Tasks(tasks ...task.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = fmt.Fprint(pp.out(), spacing)
		}
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}
	for _, t := range tasks {
		pp.Task(t)
	}
	pp.NewLine()
}

// Task prints a single task line.
func (pp *PrettyPrint) Task(t task.Task) {
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	if pp.ShowID {
		_, _ = y.Fprint(pp.out(), ShortID(t.ID))
		_, _ = fmt.Fprint(pp.out(), strings.Repeat(" ", len(spacing)-len(ShortID(t.ID))))
	}

	line := color.New()
	switch {
	case t.IsCompleted:
		line = color.New(color.Faint, color.CrossedOut)
	case t.IsFrog:
		line = color.New(color.FgHiGreen, color.Bold)
	}
	_, _ = line.Fprintf(pp.out(), "%s %s", glyph.Bullet(t), t.Title)
	if mark := glyph.PriorityMark(t.Priority); mark != "" {
		_, _ = color.New(color.FgRed, color.Bold).Fprintf(pp.out(), " %s", mark)
	}
	_, _ = fmt.Fprintln(pp.out())
}

// Report prints the tasks completed in a window, grouped by day.
func (pp *PrettyPrint) Report(r app.ReportResult, label string) {
	since := r.Since.Local().Format("2006-01-02 15:04")
	until := r.Until.Local().Format("2006-01-02 15:04")
	_, _ = color.New(color.Bold).Fprintf(pp.out(), "Completed · last %s (%s → %s)\n", label, since, until)

	if r.Total == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprintln(pp.out(), "  Nothing completed in this window.")
		pp.NewLine()
		return
	}
	for _, day := range r.Days {
		pp.NewLine()
		pp.TitleWithCount(day.Day.Format("Monday, January 2"), len(day.Tasks))
		for _, t := range day.Tasks {
			pp.Task(t)
		}
	}
	pp.NewLine()
	_, _ = color.New(color.Faint).Fprintf(pp.out(), "%d completed, %d of them frogs\n", r.Total, r.Frogs)
}

// ShortID trims an id to the prefix printed in listings. Any unique prefix
// is accepted back by the CLI.
func ShortID(id string) string {
	if len(id) <= idWidth {
		return id
	}
	return id[:idWidth]
}

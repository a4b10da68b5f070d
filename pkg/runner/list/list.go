// Package list provides the runner logic for printing the task list.
package list

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/frog/pkg/app"
	"tableflip.dev/frog/pkg/printers"
	"tableflip.dev/frog/pkg/task"
)

type List struct {
	Service *app.Service
	All     bool
	ShowID  bool
	Format  string
	Out     io.Writer
}

// listing is the structured form of the list output.
type listing struct {
	Active    []task.Task `json:"active" yaml:"active"`
	Completed []task.Task `json:"completed,omitempty" yaml:"completed,omitempty"`
}

func (n *List) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no service")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	sn := n.Service.Snapshot()
	l := listing{Active: sn.Active}
	if n.All {
		l.Completed = sn.Completed
	}

	switch n.Format {
	case printers.FormatJSON, printers.FormatYAML:
		return printers.Encode(out, n.Format, l)
	case printers.FormatTable:
		printers.Table(out, append(l.Active, l.Completed...), n.ShowID)
		return nil
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: out}
	pp.NewLine()
	pp.TitleWithCount("Tasks", len(l.Active))
	pp.Tasks(l.Active...)
	if n.All {
		pp.TitleWithCount("Completed", len(l.Completed))
		pp.Tasks(l.Completed...)
	}
	return nil
}

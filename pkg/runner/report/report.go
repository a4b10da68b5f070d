// Package report provides the runner logic for the completed-tasks report.
package report

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/frog/pkg/app"
	"tableflip.dev/frog/pkg/printers"
)

type Report struct {
	Service  *app.Service
	Since    time.Time
	Until    time.Time
	Label    string
	Calendar bool
	Format   string
	Out      io.Writer
}

func (n *Report) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not report, no service")
	}
	r := n.Service.Report(n.Since, n.Until)

	switch n.Format {
	case printers.FormatJSON, printers.FormatYAML:
		return printers.Encode(n.out(), n.Format, r)
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.Report(r, n.Label)
	if n.Calendar {
		var at []time.Time
		for _, t := range n.Service.Snapshot().Completed {
			if t.CompletedAt != nil {
				at = append(at, *t.CompletedAt)
			}
		}
		month := n.Until.Local()
		pp.NewLine()
		pp.Month(month, printers.CompletedPerDay(month, at))
	}
	return nil
}

func (n *Report) out() io.Writer {
	if n.Out == nil {
		return color.Output
	}
	return n.Out
}

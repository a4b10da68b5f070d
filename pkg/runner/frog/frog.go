// Package frog provides the runner logic for marking the frog.
package frog

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/frog/pkg/app"
	"tableflip.dev/frog/pkg/printers"
)

// Frog toggles the frog flag of a task.
type Frog struct {
	ID      string
	Service *app.Service
	Out     io.Writer
}

func (n *Frog) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not toggle frog, no service")
	}
	id, err := n.Service.Resolve(n.ID)
	if err != nil {
		return err
	}
	n.Service.ToggleFrog(id)

	pp := printers.PrettyPrint{Out: n.Out}
	active := n.Service.ActiveTasks()
	pp.TitleWithCount("Tasks", len(active))
	pp.Tasks(active...)
	return nil
}

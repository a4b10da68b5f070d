// Package priority provides the runner logic for changing task priority.
package priority

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/frog/pkg/app"
	"tableflip.dev/frog/pkg/printers"
	"tableflip.dev/frog/pkg/task"
)

type Priority struct {
	ID       string
	Priority task.Priority
	Service  *app.Service
	Out      io.Writer
}

func (n *Priority) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not set priority, no service")
	}
	id, err := n.Service.Resolve(n.ID)
	if err != nil {
		return err
	}
	n.Service.SetPriority(id, n.Priority)
	t, _ := n.Service.Task(id)
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Task(t)
	return nil
}

// Package edit provides the runner logic for renaming a task.
package edit

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/frog/pkg/app"
	"tableflip.dev/frog/pkg/printers"
)

type Edit struct {
	ID      string
	Title   string
	Service *app.Service
	Out     io.Writer
}

func (n *Edit) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}
	id, err := n.Service.Resolve(n.ID)
	if err != nil {
		return err
	}
	if !n.Service.UpdateTask(id, n.Title) {
		return errors.New("title is empty or unchanged")
	}
	t, _ := n.Service.Task(id)
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Task(t)
	return nil
}

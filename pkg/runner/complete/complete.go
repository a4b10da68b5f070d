// Package complete provides the runner logic for marking tasks complete.
package complete

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/frog/pkg/app"
	"tableflip.dev/frog/pkg/printers"
)

// Complete marks a task as completed.
type Complete struct {
	ID      string
	Service *app.Service
	Out     io.Writer
}

// Do completes the task and prints what is left.
func (n *Complete) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete, no service")
	}
	id, err := n.Service.Resolve(n.ID)
	if err != nil {
		return err
	}
	if !n.Service.CompleteTask(id) {
		return fmt.Errorf("task %s is already completed", printers.ShortID(id))
	}

	pp := printers.PrettyPrint{Out: n.Out}
	t, _ := n.Service.Task(id)
	pp.Task(t)
	pp.NewLine()
	active := n.Service.ActiveTasks()
	pp.TitleWithCount("Remaining", len(active))
	pp.Tasks(active...)
	return nil
}

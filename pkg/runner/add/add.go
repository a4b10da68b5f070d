// Package add provides the runner logic for adding tasks.
package add

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/frog/pkg/app"
	"tableflip.dev/frog/pkg/printers"
	"tableflip.dev/frog/pkg/task"
)

// Add appends one task. It is the command-line Quick-Add surface.
type Add struct {
	Service  *app.Service
	Title    string
	Priority task.Priority
	ShowID   bool
	Out      io.Writer
}

// Do adds the task and prints it.
func (n *Add) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	id, ok := n.Service.AddTaskWithPriority(n.Title, n.Priority)
	if !ok {
		return errors.New("can not add a task without a title")
	}
	t, _ := n.Service.Task(id)
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.Task(t)
	return nil
}

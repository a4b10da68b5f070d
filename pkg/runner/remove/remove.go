// Package remove provides the runner logic for removing tasks.
package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/frog/pkg/app"
	"tableflip.dev/frog/pkg/printers"
)

// Delete removes every listed task in one step.
type Delete struct {
	IDs     []string
	Service *app.Service
	Out     io.Writer
}

func (n *Delete) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no service")
	}
	ids := make([]string, 0, len(n.IDs))
	for _, prefix := range n.IDs {
		id, err := n.Service.Resolve(prefix)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}
	if !n.Service.DeleteTasks(ids) {
		return errors.New("nothing deleted")
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Title(fmt.Sprintf("Deleted %d", len(ids)))
	pp.NewLine()
	active := n.Service.ActiveTasks()
	pp.TitleWithCount("Remaining", len(active))
	pp.Tasks(active...)
	return nil
}

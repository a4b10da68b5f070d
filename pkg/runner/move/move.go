// Package move provides the runner logic for reordering the active list.
package move

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/frog/pkg/app"
	"tableflip.dev/frog/pkg/printers"
	"tableflip.dev/frog/pkg/selection"
)

// Move repositions one task. Exactly one destination is used: To is a
// 1-based position in the active list, otherwise Delta, Top or Bottom.
type Move struct {
	ID      string
	To      int
	Delta   int
	Top     bool
	Bottom  bool
	Service *app.Service
	Out     io.Writer
}

func (n *Move) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not move, no service")
	}
	id, err := n.Service.Resolve(n.ID)
	if err != nil {
		return err
	}
	if !n.Service.Click(id, selection.Replace) {
		return errors.New("only active tasks can be moved")
	}

	var moved bool
	switch {
	case n.Top:
		moved = n.Service.MoveSelectionToTop()
	case n.Bottom:
		moved = n.Service.MoveSelectionToBottom()
	case n.Delta != 0:
		moved = n.Service.MoveSelectionBy(n.Delta)
	default:
		moved = n.Service.MoveTasks([]string{id}, n.To-1)
	}
	n.Service.ClearSelection()

	pp := printers.PrettyPrint{Out: n.Out}
	if !moved {
		pp.Title("Nothing moved")
		pp.NewLine()
	}
	active := n.Service.ActiveTasks()
	pp.TitleWithCount("Tasks", len(active))
	pp.Tasks(active...)
	return nil
}

package add

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/frog/pkg/app"
	"tableflip.dev/frog/pkg/printers"
)

// Paste adds one task per line of In, stripped of list markers.
type Paste struct {
	Service *app.Service
	In      io.Reader
	ShowID  bool
	Out     io.Writer
}

func (n *Paste) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not paste, no service")
	}
	data, err := io.ReadAll(n.In)
	if err != nil {
		return fmt.Errorf("read pasted text: %w", err)
	}
	ids, ok := n.Service.PasteTasks(string(data))
	if !ok {
		return errors.New("nothing to add")
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.TitleWithCount("Added", len(ids))
	for _, id := range ids {
		if t, ok := n.Service.Task(id); ok {
			pp.Task(t)
		}
	}
	return nil
}

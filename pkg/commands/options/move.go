package options

import (
	"errors"

	"github.com/spf13/cobra"
)

// MoveOptions
type MoveOptions struct {
	To     int
	Up     bool
	Down   bool
	Top    bool
	Bottom bool
}

func AddMoveArgs(cmd *cobra.Command, o *MoveOptions) {
	cmd.Flags().IntVar(&o.To, "to", -1,
		"Move to this position of the active list, starting at 1.")
	cmd.Flags().BoolVar(&o.Up, "up", false,
		"Move up one position.")
	cmd.Flags().BoolVar(&o.Down, "down", false,
		"Move down one position.")
	cmd.Flags().BoolVar(&o.Top, "top", false,
		"Move to the top, below the frog.")
	cmd.Flags().BoolVar(&o.Bottom, "bottom", false,
		"Move to the bottom.")
}

// Validate requires exactly one destination.
func (o *MoveOptions) Validate() error {
	n := 0
	for _, set := range []bool{o.To >= 0, o.Up, o.Down, o.Top, o.Bottom} {
		if set {
			n++
		}
	}
	if n != 1 {
		return errors.New("requires exactly one of --to, --up, --down, --top or --bottom")
	}
	if o.To == 0 {
		return errors.New("--to starts at 1")
	}
	return nil
}

package options

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/frog/pkg/task"
)

// PriorityOptions
type PriorityOptions struct {
	Priority int
}

func AddPriorityArgs(cmd *cobra.Command, o *PriorityOptions) {
	cmd.Flags().IntVarP(&o.Priority, "priority", "p", int(task.DefaultPriority),
		fmt.Sprintf("Priority from %d (low) to %d (high).", task.PriorityLow, task.PriorityHigh))
}

func (o *PriorityOptions) Get() task.Priority {
	return task.Priority(o.Priority).Clamp()
}

// ParsePriority accepts a number or one of low, medium and high.
func ParsePriority(s string) (task.Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "l":
		return task.PriorityLow, nil
	case "medium", "med", "m":
		return task.PriorityMedium, nil
	case "high", "h":
		return task.PriorityHigh, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid priority %q", s)
	}
	return task.Priority(n).Clamp(), nil
}

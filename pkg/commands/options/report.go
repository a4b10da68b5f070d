package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/frog/pkg/timeutil"
)

// ReportOptions
type ReportOptions struct {
	Last     string
	Calendar bool
}

func AddReportArgs(cmd *cobra.Command, o *ReportOptions) {
	cmd.Flags().StringVar(&o.Last, "last", timeutil.DefaultWindow,
		"Time window to include, for example 3d or 1w2d.")
	cmd.Flags().BoolVar(&o.Calendar, "calendar", false,
		"Also print a calendar of this month's completions.")
}

// Window returns the bounds of the report ending at now and the canonical
// label of the window.
func (o *ReportOptions) Window(now time.Time) (time.Time, time.Time, string, error) {
	d, label, err := timeutil.ParseWindow(o.Last)
	if err != nil {
		return time.Time{}, time.Time{}, "", err
	}
	return now.Add(-d), now, label, nil
}

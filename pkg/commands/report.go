package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/frog/pkg/app"
	"tableflip.dev/frog/pkg/commands/options"
	"tableflip.dev/frog/pkg/runner/report"
)

func addReport(topLevel *cobra.Command) {
	ro := &options.ReportOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Display recently completed tasks grouped by day",
		Long: `Report lists the tasks completed within a time window, newest day first.

Examples:
  frog report
  frog report --last 3d
  frog report --last 1w2d --calendar`,
		Args: cobra.NoArgs,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return oo.Validate()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			since, until, label, err := ro.Window(time.Now())
			if err != nil {
				return output.HandleError(err)
			}
			return withService(func(ctx context.Context, svc *app.Service) error {
				r := report.Report{
					Service:  svc,
					Since:    since,
					Until:    until,
					Label:    label,
					Calendar: ro.Calendar,
					Format:   oo.Format,
				}
				return r.Do(ctx)
			})
		},
	}

	options.AddReportArgs(cmd, ro)
	options.AddFormatArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

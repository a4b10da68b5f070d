package options

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/frog/pkg/printers"
)

// OutputOptions
type OutputOptions struct {
	JSON   bool
	Format string
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.PersistentFlags().BoolVar(&po.JSON, "json", false,
		"Output errors as JSON.")
}

func AddFormatArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().StringVarP(&po.Format, "output", "o", printers.FormatText,
		fmt.Sprintf("Output format. One of %s.", strings.Join(printers.Formats(), ", ")))
}

// Validate checks the requested output format.
func (o *OutputOptions) Validate() error {
	if o.Format == "" {
		o.Format = printers.FormatText
	}
	if !slices.Contains(printers.Formats(), o.Format) {
		return fmt.Errorf("unknown output format %q", o.Format)
	}
	return nil
}

func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}

package printers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"gopkg.in/yaml.v3"

	"tableflip.dev/frog/pkg/glyph"
	"tableflip.dev/frog/pkg/task"
)

const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formats lists the accepted values of an output flag.
func Formats() []string {
	return []string{FormatText, FormatTable, FormatJSON, FormatYAML}
}

// Encode writes v as JSON or YAML.
func Encode(w io.Writer, format string, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// Table renders tasks as aligned columns.
func Table(w io.Writer, tasks []task.Task, showID bool) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true

	header := []any{bold.Sprint("#"), bold.Sprint(" "), bold.Sprint("Title"), bold.Sprint("Priority")}
	if showID {
		header = append([]any{bold.Sprint("ID")}, header...)
	}
	tbl.AddRow(header...)
	for i, t := range tasks {
		row := []any{i + 1, glyph.Bullet(t), t.Title, t.Priority.String()}
		if showID {
			row = append([]any{ShortID(t.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(w, tbl)
}

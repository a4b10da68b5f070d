// Package key provides CLI helpers to display the glyph legend and the
// terminal UI shortcuts.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/frog/pkg/glyph"
	"tableflip.dev/frog/pkg/tui"
)

// Key prints the legend.
type Key struct {
	Out io.Writer
}

// Do renders the glyph and shortcut tables.
func (k *Key) Do(_ context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	bold := color.New(color.Bold)

	_, _ = fmt.Fprintln(out, "")
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Glyph"), bold.Sprint("Meaning"))
	for _, g := range glyph.DefaultGlyphs() {
		tbl.AddRow(g.Symbol, g.Meaning)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out, "")

	tbl = uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Key"), bold.Sprint("Action"))
	for _, b := range tui.DefaultKeyMap().Bindings() {
		h := b.Help()
		tbl.AddRow(h.Key, h.Desc)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out, "")
	return nil
}

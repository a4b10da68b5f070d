package tui

import (
	_ "embed"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

//go:embed help.md
var helpMarkdown string

// helpOverlay renders the Glamour help inside a scrollable viewport.
type helpOverlay struct {
	viewport viewport.Model
	frame    lipgloss.Style
	width    int
	height   int
	err      error
}

func newHelpOverlay(frame lipgloss.Style, width, height int) *helpOverlay {
	h := &helpOverlay{viewport: viewport.New(1, 1), frame: frame}
	h.viewport.MouseWheelEnabled = true
	h.SetSize(width, height)
	return h
}

func (h *helpOverlay) Update(msg tea.Msg) tea.Cmd {
	vp, cmd := h.viewport.Update(msg)
	h.viewport = vp
	return cmd
}

func (h *helpOverlay) View() string {
	body := h.viewport.View()
	if h.err != nil {
		body = "help unavailable: " + h.err.Error()
	}
	return h.frame.Render(body)
}

// SetSize re-renders the markdown to fit the new bounds.
func (h *helpOverlay) SetSize(width, height int) {
	width, height = max(width-4, 24), max(height-2, 6)
	if h.width == width && h.height == height {
		return
	}
	h.width, h.height = width, height
	h.viewport.Width = width
	h.viewport.Height = height

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		h.err = err
		return
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		h.err = err
		return
	}
	h.err = nil
	h.viewport.SetContent(strings.TrimRight(out, "\n"))
}

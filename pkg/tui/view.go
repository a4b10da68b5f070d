package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/frog/pkg/app"
	"tableflip.dev/frog/pkg/glyph"
	"tableflip.dev/frog/pkg/mode"
	"tableflip.dev/frog/pkg/task"
)

const focusMaxWidth = 60

// View renders the current mode.
func (m *Model) View() string {
	if m.help != nil {
		return m.placeCenter(m.help.View())
	}
	sn := m.svc.Snapshot()
	if sn.Animating {
		// Content swaps only after the transition settles.
		return m.header(sn)
	}
	if sn.Mode == mode.Focus {
		return m.focusView(sn)
	}
	return m.listView(sn)
}

func (m *Model) header(sn app.Snapshot) string {
	title := m.theme.Header.Title.Render("frog")
	count := fmt.Sprintf("%d to do · %d done", len(sn.Active), len(sn.Completed))
	if sn.Mode == mode.Focus {
		count = "focus"
	}
	return title + " " + m.theme.Header.Count.Render(count)
}

func (m *Model) listView(sn app.Snapshot) string {
	var b strings.Builder
	b.WriteString(m.header(sn))
	b.WriteString("\n")
	b.WriteString(m.inputLine())
	b.WriteString("\n")

	rows := m.visibleRows()
	active := sn.Active
	end := len(active)
	if rows > 0 {
		end = min(m.offset+rows, len(active))
	}
	used := 0
	for i := m.offset; i < end; i++ {
		b.WriteString(m.row(sn, active[i], i))
		b.WriteString("\n")
		used++
	}
	if len(active) == 0 {
		b.WriteString(m.theme.Row.Section.Render("nothing to do"))
		b.WriteString("\n")
		used++
	}

	if left := rows - used - 1; rows < 0 || left > 0 {
		done := sn.Completed
		if rows > 0 {
			done = done[:min(len(done), left)]
		}
		if len(done) > 0 {
			b.WriteString(m.theme.Row.Section.Render("completed"))
			b.WriteString("\n")
			for _, t := range done {
				b.WriteString(m.row(sn, t, -1))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString(m.footer())
	return b.String()
}

func (m *Model) inputLine() string {
	prompt := m.theme.Header.Prompt
	switch m.inputMode {
	case inputNew:
		return prompt.Render("+ ") + m.input.View()
	case inputEdit:
		return prompt.Render("✎ ") + m.input.View()
	}
	return m.theme.Footer.Help.Render("+ n to add a task")
}

// row draws one task. index is its position in the active view, or -1 for a
// completed task.
func (m *Model) row(sn app.Snapshot, t task.Task, index int) string {
	st := m.theme.Row
	marker := "  "
	if sn.Dragging && index == sn.DragPreview {
		marker = st.DropMark.Render("▸ ")
	}

	bullet := glyph.Bullet(t)
	if t.IsFrog && !t.IsCompleted {
		bullet = st.Frog.Render(bullet)
	}
	mark := glyph.PriorityMark(t.Priority)
	if mark != "" {
		mark = " " + st.Priority.Render(mark)
	}

	title := t.Title
	if m.width > 0 {
		room := m.width - lipgloss.Width(marker+bullet+" "+mark)
		title = truncate.StringWithTail(title, uint(max(room, 1)), "…")
	}

	style := st.Normal
	switch {
	case t.IsCompleted:
		style = st.Completed
	case sn.Dragging && slices.Contains(sn.DragIDs, t.ID):
		style = st.Dragging
	case sn.Selected(t.ID):
		style = st.Selected
	}
	if e, ok := sn.Editing(); ok && e.ID == t.ID {
		title = e.Buffer
		style = st.Dragging
	}
	return marker + bullet + " " + style.Render(title) + mark
}

func (m *Model) focusView(sn app.Snapshot) string {
	ft := m.theme.Focus
	t, ok := sn.Focused()
	if !ok {
		return m.header(sn) + "\n" + ft.Hint.Render("nothing to do")
	}

	width := focusMaxWidth
	if m.width > 0 {
		width = min(width, max(m.width-8, 10))
	}
	title := wordwrap.String(t.Title, width)
	bullet := glyph.Bullet(t)
	if mark := glyph.PriorityMark(t.Priority); mark != "" {
		title += " " + m.theme.Row.Priority.Render(mark)
	}
	card := ft.Frame.Render(bullet + " " + ft.Title.Render(title))
	hint := ft.Hint.Render("x done · tab list · u undo · q quit")

	body := lipgloss.JoinVertical(lipgloss.Center, card, hint)
	if m.status != "" {
		body = lipgloss.JoinVertical(lipgloss.Center, body, m.statusLine())
	}
	return m.placeCenter(body)
}

func (m *Model) footer() string {
	if m.status != "" {
		return m.statusLine()
	}
	h := help.New()
	h.Width = m.width
	return h.ShortHelpView(m.keys.ShortHelp())
}

func (m *Model) statusLine() string {
	if m.statusErr {
		return m.theme.Footer.Error.Render(m.status)
	}
	return m.theme.Footer.Status.Render(m.status)
}

func (m *Model) placeCenter(s string) string {
	if m.width == 0 || m.height == 0 {
		return s
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
}

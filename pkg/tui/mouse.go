package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/frog/pkg/mode"
	"tableflip.dev/frog/pkg/selection"
)

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.help != nil {
		return m.help.Update(msg)
	}
	if m.svc.Mode() != mode.List || m.svc.Animating() {
		return nil
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.offset = max(m.offset-1, 0)
	case msg.Button == tea.MouseButtonWheelDown:
		if rows := m.visibleRows(); rows > 0 {
			m.offset = min(m.offset+1, max(len(m.svc.ActiveTasks())-rows, 0))
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return m.mouseDown(msg)
	case msg.Action == tea.MouseActionMotion && m.press != nil:
		m.svc.DragTo(float64(msg.Y-m.press.y)*cellPixels, cellPixels)
	case msg.Action == tea.MouseActionRelease && m.press != nil:
		m.mouseUp()
	}
	return nil
}

func (m *Model) mouseDown(msg tea.MouseMsg) tea.Cmd {
	if msg.Y == inputRow {
		return m.openNewTask()
	}
	if m.inputMode == inputEdit {
		return nil
	}
	id := m.rowAt(msg.Y)
	if id == "" {
		return m.completedClick(msg.Y)
	}
	if m.inputMode == inputNew {
		m.closeInput()
	}

	now := m.now()
	if id == m.lastClickID && now.Sub(m.lastClickAt) < doubleClickWindow {
		m.lastClickID = ""
		m.press = nil
		return m.startEdit(id)
	}
	m.lastClickID, m.lastClickAt = id, now

	mod := selection.Replace
	switch {
	case msg.Shift:
		mod = selection.Range
	case msg.Ctrl, msg.Alt:
		mod = selection.Toggle
	}

	p := &press{id: id, y: msg.Y}
	if mod == selection.Replace && m.svc.Snapshot().Selected(id) {
		p.deferred = true
	} else {
		m.svc.Click(id, mod)
	}
	if mod == selection.Replace {
		m.svc.BeginDrag(id)
	}
	m.press = p
	return nil
}

func (m *Model) mouseUp() {
	p := m.press
	m.press = nil
	dragged := m.svc.Snapshot().Dragging
	if m.svc.EndDrag() {
		m.setStatus("Moved · u to undo")
		return
	}
	if p.deferred && !dragged {
		m.svc.Click(p.id, selection.Replace)
	}
}

// rowAt maps a screen row to the active task drawn there.
func (m *Model) rowAt(y int) string {
	if y < headerRows {
		return ""
	}
	idx := m.offset + y - headerRows
	if rows := m.visibleRows(); rows > 0 && y-headerRows >= rows {
		return ""
	}
	active := m.svc.ActiveTasks()
	if idx < 0 || idx >= len(active) {
		return ""
	}
	return active[idx].ID
}

// completedClick lets a completed row be opened for editing with a double
// click. Completed rows take no part in selection or dragging.
func (m *Model) completedClick(y int) tea.Cmd {
	id := m.completedAt(y)
	if id == "" {
		return nil
	}
	now := m.now()
	if id == m.lastClickID && now.Sub(m.lastClickAt) < doubleClickWindow {
		m.lastClickID = ""
		if m.inputMode == inputNew {
			m.closeInput()
		}
		return m.startEdit(id)
	}
	m.lastClickID, m.lastClickAt = id, now
	return nil
}

// completedAt maps a screen row to the completed task drawn there, following
// the layout of listView.
func (m *Model) completedAt(y int) string {
	sn := m.svc.Snapshot()
	rows := m.visibleRows()
	used := len(sn.Active) - m.offset
	if rows > 0 {
		used = min(used, rows)
	}
	used = max(used, 0)
	if len(sn.Active) == 0 {
		used = 1
	}
	// The section line sits right after the active rows.
	idx := y - headerRows - used - 1
	if idx < 0 || idx >= len(sn.Completed) {
		return ""
	}
	if rows > 0 && idx >= rows-used-1 {
		return ""
	}
	return sn.Completed[idx].ID
}

// Package tui is the terminal presentation of the task list. It drives an
// app.Service from the Bubble Tea program loop, which makes that loop the
// single goroutine allowed to touch the service.
package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/frog/pkg/app"
	"tableflip.dev/frog/pkg/mode"
	"tableflip.dev/frog/pkg/selection"
	"tableflip.dev/frog/pkg/store"
	"tableflip.dev/frog/pkg/task"
	"tableflip.dev/frog/pkg/tui/theme"
)

type inputMode int

const (
	inputNone inputMode = iota
	inputNew
	inputEdit
)

const (
	// titleRow and inputRow sit above the first task row.
	titleRow   = 0
	inputRow   = 1
	headerRows = 2

	// cellPixels converts terminal rows into the pixel distances the drag
	// threshold is expressed in.
	cellPixels = 16.0

	doubleClickWindow = 400 * time.Millisecond
	settleDelay       = 120 * time.Millisecond
)

// messages
type storeChangedMsg struct{}
type serviceEventMsg struct{ evt app.Event }
type settleMsg struct{}

// press is a mouse button held on a task row.
type press struct {
	id string
	y  int
	// deferred holds back a plain click on an already selected row until
	// release, so the whole selection can be dragged.
	deferred bool
}

// Model contains UI state.
type Model struct {
	ctx   context.Context
	svc   *app.Service
	keys  KeyMap
	theme theme.Theme
	log   *slog.Logger
	now   func() time.Time

	input     textinput.Model
	inputMode inputMode
	help      *helpOverlay

	width  int
	height int
	offset int

	status    string
	statusErr bool

	changes <-chan store.Event
	events  <-chan app.Event

	press       *press
	lastClickID string
	lastClickAt time.Time

	// settling is set while a settle tick is in flight.
	settling bool
}

// Option configures a Model.
type Option func(*Model)

// WithChanges makes the model reload whenever the store reports a change made
// by another process.
func WithChanges(ch <-chan store.Event) Option {
	return func(m *Model) { m.changes = ch }
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// WithClock replaces time.Now for double-click detection.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// New creates a UI model backed by svc.
func New(ctx context.Context, svc *app.Service, opts ...Option) *Model {
	ti := textinput.New()
	ti.Placeholder = "Add a task…"
	ti.CharLimit = 256
	ti.Prompt = ""

	m := &Model{
		ctx:   ctx,
		svc:   svc,
		keys:  DefaultKeyMap(),
		theme: theme.Default(),
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:   time.Now,
		input: ti,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.events = svc.Subscribe(ctx)
	return m
}

// Init starts listening for store and service notifications.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.waitForChange(), m.waitForEvent())
}

func (m *Model) waitForChange() tea.Cmd {
	ch := m.changes
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		for evt := range ch {
			if evt.Type == store.EventTasksChanged {
				return storeChangedMsg{}
			}
		}
		return nil
	}
}

func (m *Model) waitForEvent() tea.Cmd {
	ch := m.events
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		for evt := range ch {
			if evt.Type != app.EventChanged {
				return serviceEventMsg{evt}
			}
		}
		return nil
	}
}

// Update handles messages and keybindings. Whenever a message leaves a mode
// transition running, for example an automatic exit from Focus or an undo
// back into it, a settle tick is scheduled so the animating gate comes down.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.update(msg)
	if m.svc.Animating() && !m.settling {
		m.settling = true
		cmd = tea.Batch(cmd, settle())
	}
	return m, cmd
}

func settle() tea.Cmd {
	return tea.Tick(settleDelay, func(time.Time) tea.Msg { return settleMsg{} })
}

func (m *Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(msg.Width-8, 10)
		if m.help != nil {
			m.help.SetSize(msg.Width, msg.Height)
		}
		m.svc.RecordGeometry(m.svc.Mode(), m.geometry())
		m.ensureVisible()
		return m, nil

	case storeChangedMsg:
		changed, err := m.svc.Reload(m.ctx)
		switch {
		case err != nil:
			m.setError(err.Error())
		case changed:
			m.setStatus("Picked up changes from another frog")
			m.ensureVisible()
		}
		return m, m.waitForChange()

	case serviceEventMsg:
		var cmd tea.Cmd
		switch msg.evt.Type {
		case app.EventPersistFailed:
			m.setError(fmt.Sprintf("Save failed: %v", msg.evt.Err))
		case app.EventQuickAddRequested:
			cmd = m.openNewTask()
		}
		return m, tea.Batch(cmd, m.waitForEvent())

	case settleMsg:
		m.settling = false
		g := m.geometry()
		m.svc.SettleTransition(&g)
		return m, nil

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	k := m.keys
	if m.help != nil {
		if key.Matches(msg, k.Help, k.Clear, k.Quit) {
			m.help = nil
			return nil
		}
		return m.help.Update(msg)
	}
	if m.inputMode != inputNone {
		return m.handleInputKey(msg)
	}
	if msg.Paste {
		m.paste(string(msg.Runes))
		return nil
	}
	if m.svc.Mode() == mode.Focus {
		return m.handleFocusKey(msg)
	}

	m.status, m.statusErr = "", false
	switch {
	case key.Matches(msg, k.Quit):
		return tea.Quit
	case key.Matches(msg, k.Help):
		m.help = newHelpOverlay(m.theme.Modal.Frame, m.width, m.height)
	case key.Matches(msg, k.Next):
		m.svc.SelectNext(false)
	case key.Matches(msg, k.Previous):
		m.svc.SelectPrevious(false)
	case key.Matches(msg, k.ExtendNext):
		m.svc.SelectNext(true)
	case key.Matches(msg, k.ExtendPrev):
		m.svc.SelectPrevious(true)
	case key.Matches(msg, k.Toggle):
		if id := m.cursor(); id != "" {
			m.svc.Click(id, selection.Toggle)
		} else {
			m.svc.SelectNext(false)
		}
	case key.Matches(msg, k.SelectAll):
		m.svc.SelectAll()
	case key.Matches(msg, k.Clear):
		if m.svc.Snapshot().Dragging {
			m.press = nil
			m.svc.CancelDrag()
		} else {
			m.svc.ClearSelection()
		}
	case key.Matches(msg, k.Complete):
		m.completeSelection()
	case key.Matches(msg, k.Frog):
		if id := m.cursor(); id != "" {
			m.svc.ToggleFrog(id)
		}
	case key.Matches(msg, k.Edit):
		if id := m.cursor(); id != "" {
			return m.startEdit(id)
		}
	case key.Matches(msg, k.New):
		return m.openNewTask()
	case key.Matches(msg, k.Delete):
		n := len(selection.IDs(m.svc.Selection()))
		if m.svc.DeleteSelection() {
			m.setStatus(fmt.Sprintf("Deleted %d · u to undo", n))
		}
	case key.Matches(msg, k.PriorityLow):
		m.svc.SetSelectionPriority(task.PriorityLow)
	case key.Matches(msg, k.PriorityMed):
		m.svc.SetSelectionPriority(task.PriorityMedium)
	case key.Matches(msg, k.PriorityHigh):
		m.svc.SetSelectionPriority(task.PriorityHigh)
	case key.Matches(msg, k.MoveUp):
		m.svc.MoveSelectionBy(-1)
	case key.Matches(msg, k.MoveDown):
		m.svc.MoveSelectionBy(1)
	case key.Matches(msg, k.MoveTop):
		m.svc.MoveSelectionToTop()
	case key.Matches(msg, k.MoveBottom):
		m.svc.MoveSelectionToBottom()
	case key.Matches(msg, k.Undo):
		m.undo()
	case key.Matches(msg, k.Redo):
		m.redo()
	case key.Matches(msg, k.Mode):
		return m.toggleMode()
	}
	m.ensureVisible()
	return nil
}

func (m *Model) handleFocusKey(msg tea.KeyMsg) tea.Cmd {
	k := m.keys
	focused, ok := m.svc.Snapshot().Focused()
	switch {
	case key.Matches(msg, k.Quit):
		return tea.Quit
	case key.Matches(msg, k.Mode, k.Clear):
		return m.toggleMode()
	case key.Matches(msg, k.Complete):
		if ok && m.svc.CompleteTask(focused.ID) {
			m.setStatus("Done: " + focused.Title)
		}
	case key.Matches(msg, k.Frog):
		if ok {
			m.svc.ToggleFrog(focused.ID)
		}
	case key.Matches(msg, k.New):
		return m.openNewTask()
	case key.Matches(msg, k.Undo):
		m.undo()
	case key.Matches(msg, k.Redo):
		m.redo()
	}
	return nil
}

func (m *Model) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Paste && m.inputMode == inputNew && strings.ContainsAny(string(msg.Runes), "\r\n") {
		m.paste(m.input.Value() + string(msg.Runes))
		m.input.Reset()
		return nil
	}

	switch msg.Type {
	case tea.KeyEnter:
		if m.inputMode == inputEdit {
			m.svc.SetEditBuffer(m.input.Value())
			if m.svc.SubmitEdit() {
				m.setStatus("Edited · u to undo")
			}
			m.closeInput()
			return nil
		}
		if _, ok := m.svc.AddTask(m.input.Value()); ok {
			m.input.Reset()
			m.setStatus("Added · enter another or esc")
		}
		return nil
	case tea.KeyEsc:
		if m.inputMode == inputEdit {
			m.svc.CancelEdit()
		}
		m.closeInput()
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.inputMode == inputEdit {
		m.svc.SetEditBuffer(m.input.Value())
	}
	return cmd
}

func (m *Model) paste(text string) {
	if ids, ok := m.svc.PasteTasks(text); ok {
		m.setStatus(fmt.Sprintf("Added %d · u to undo", len(ids)))
	}
}

func (m *Model) openNewTask() tea.Cmd {
	if m.inputMode == inputEdit {
		m.svc.CancelEdit()
	}
	m.svc.FocusNewTaskInput()
	m.inputMode = inputNew
	m.input.Reset()
	m.input.Placeholder = "Add a task…"
	return m.input.Focus()
}

func (m *Model) startEdit(id string) tea.Cmd {
	if !m.svc.DoubleClick(id) {
		return nil
	}
	t, _ := m.svc.Task(id)
	m.inputMode = inputEdit
	m.input.SetValue(t.Title)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) closeInput() {
	m.inputMode = inputNone
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) completeSelection() {
	ids := selection.IDs(m.svc.Selection())
	done := 0
	for _, id := range ids {
		if m.svc.CompleteTask(id) {
			done++
		}
	}
	if done > 0 {
		m.setStatus(fmt.Sprintf("Completed %d · u to undo", done))
	}
}

func (m *Model) undo() {
	label := m.svc.Snapshot().UndoLabel
	if m.svc.Undo() {
		m.setStatus("Undid " + label)
	}
}

func (m *Model) redo() {
	label := m.svc.Snapshot().RedoLabel
	if m.svc.Redo() {
		m.setStatus("Redid " + label)
	}
}

func (m *Model) toggleMode() tea.Cmd {
	g := m.geometry()
	if !m.svc.ToggleMode(&g) {
		m.setStatus("Nothing to focus on")
		return nil
	}
	m.log.Debug("mode changed", "mode", m.svc.Mode())
	return nil
}

// cursor is the most recently selected task.
func (m *Model) cursor() string {
	if sel, ok := m.svc.Selection().(selection.Selected); ok {
		return sel.Anchor
	}
	return ""
}

func (m *Model) geometry() mode.Geometry {
	return mode.Geometry{Width: float64(m.width), Height: float64(m.height)}
}

func (m *Model) setStatus(s string) {
	m.status, m.statusErr = s, false
}

func (m *Model) setError(s string) {
	m.log.Warn("ui error", "msg", s)
	m.status, m.statusErr = s, true
}

// visibleRows is the number of task rows that fit, or -1 before the first
// WindowSizeMsg.
func (m *Model) visibleRows() int {
	if m.height == 0 {
		return -1
	}
	return max(m.height-headerRows-1, 1)
}

// ensureVisible scrolls so the cursor row is on screen.
func (m *Model) ensureVisible() {
	rows := m.visibleRows()
	active := m.svc.ActiveTasks()
	if rows < 0 {
		m.offset = 0
		return
	}
	m.offset = min(m.offset, max(len(active)-rows, 0))
	idx := task.Index(active, m.cursor())
	if idx == -1 {
		return
	}
	if idx < m.offset {
		m.offset = idx
	}
	if idx >= m.offset+rows {
		m.offset = idx - rows + 1
	}
}

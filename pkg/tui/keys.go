package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings of the list surface.
type KeyMap struct {
	Next         key.Binding
	Previous     key.Binding
	ExtendNext   key.Binding
	ExtendPrev   key.Binding
	Toggle       key.Binding
	SelectAll    key.Binding
	Clear        key.Binding
	Complete     key.Binding
	Frog         key.Binding
	Edit         key.Binding
	New          key.Binding
	Delete       key.Binding
	PriorityLow  key.Binding
	PriorityMed  key.Binding
	PriorityHigh key.Binding
	MoveUp       key.Binding
	MoveDown     key.Binding
	MoveTop      key.Binding
	MoveBottom   key.Binding
	Undo         key.Binding
	Redo         key.Binding
	Mode         key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:         key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "select next")),
		Previous:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "select previous")),
		ExtendNext:   key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "extend selection down")),
		ExtendPrev:   key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "extend selection up")),
		Toggle:       key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle selection")),
		SelectAll:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		Clear:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear selection")),
		Complete:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "complete")),
		Frog:         key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "toggle frog")),
		Edit:         key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "edit title")),
		New:          key.NewBinding(key.WithKeys("n", "o"), key.WithHelp("n", "new task")),
		Delete:       key.NewBinding(key.WithKeys("d", "delete", "backspace"), key.WithHelp("d", "delete")),
		PriorityLow:  key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "low priority")),
		PriorityMed:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "medium priority")),
		PriorityHigh: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "high priority")),
		MoveUp:       key.NewBinding(key.WithKeys("alt+up", "alt+k"), key.WithHelp("alt+↑", "move up")),
		MoveDown:     key.NewBinding(key.WithKeys("alt+down", "alt+j"), key.WithHelp("alt+↓", "move down")),
		MoveTop:      key.NewBinding(key.WithKeys("alt+g"), key.WithHelp("alt+g", "move to top")),
		MoveBottom:   key.NewBinding(key.WithKeys("alt+G"), key.WithHelp("alt+G", "move to bottom")),
		Undo:         key.NewBinding(key.WithKeys("u", "ctrl+z"), key.WithHelp("u", "undo")),
		Redo:         key.NewBinding(key.WithKeys("ctrl+r", "U"), key.WithHelp("ctrl+r", "redo")),
		Mode:         key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "toggle focus mode")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Bindings lists every binding in display order.
func (k KeyMap) Bindings() []key.Binding {
	return []key.Binding{
		k.Next, k.Previous, k.ExtendNext, k.ExtendPrev, k.Toggle, k.SelectAll, k.Clear,
		k.Complete, k.Frog, k.Edit, k.New, k.Delete,
		k.PriorityLow, k.PriorityMed, k.PriorityHigh,
		k.MoveUp, k.MoveDown, k.MoveTop, k.MoveBottom,
		k.Undo, k.Redo, k.Mode, k.Help, k.Quit,
	}
}

// ShortHelp is the footer hint.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Complete, k.Frog, k.Edit, k.Undo, k.Mode, k.Help, k.Quit}
}

package theme

import "github.com/charmbracelet/lipgloss"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header HeaderTheme
	Row    RowTheme
	Focus  FocusTheme
	Footer FooterTheme
	Modal  ModalTheme
}

// HeaderTheme styles the title line and the new-task input.
type HeaderTheme struct {
	Title  lipgloss.Style
	Count  lipgloss.Style
	Prompt lipgloss.Style
}

// RowTheme styles task rows.
type RowTheme struct {
	Normal    lipgloss.Style
	Selected  lipgloss.Style
	Frog      lipgloss.Style
	Completed lipgloss.Style
	Priority  lipgloss.Style
	Dragging  lipgloss.Style
	DropMark  lipgloss.Style
	Section   lipgloss.Style
}

// FocusTheme styles the single-task presentation.
type FocusTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Hint  lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// ModalTheme styles centered overlays such as help.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Header: HeaderTheme{
			Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
			Count:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		},
		Row: RowTheme{
			Normal:    lipgloss.NewStyle(),
			Selected:  lipgloss.NewStyle().Reverse(true),
			Frog:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
			Completed: lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Priority:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
			Dragging:  lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("212")),
			DropMark:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
			Section:   lipgloss.NewStyle().Faint(true).Underline(true),
		},
		Focus: FocusTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("42")).
				Padding(1, 3),
			Title: lipgloss.NewStyle().Bold(true),
			Hint:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true),
		},
	}
}

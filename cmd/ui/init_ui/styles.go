package init_ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha.
var (
	colorText    = lipgloss.Color("#cdd6f4")
	colorSubtext = lipgloss.Color("#bac2de")
	colorMuted   = lipgloss.Color("#a6adc8")
	colorAccent  = lipgloss.Color("#cba6f7")
	colorInput   = lipgloss.Color("#89b4fa")
	colorBase    = lipgloss.Color("#1e1e2e")
	colorGreen   = lipgloss.Color("#a6e3a1")
)

type uiStyles struct {
	title       lipgloss.Style
	label       lipgloss.Style
	description lipgloss.Style
	help        lipgloss.Style

	blockFocused   lipgloss.Style
	blockUnfocused lipgloss.Style

	submit        lipgloss.Style
	submitFocused lipgloss.Style

	listTitle         lipgloss.Style
	listSelectedTitle lipgloss.Style
	listSelectedDesc  lipgloss.Style
	listNormalTitle   lipgloss.Style
	listNormalDesc    lipgloss.Style
}

func initStyles() uiStyles {
	// Left rule marking the focused field or list item.
	rule := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(colorAccent).
		PaddingLeft(1)
	button := lipgloss.NewStyle().Bold(true).MarginLeft(2).Padding(0, 1)

	return uiStyles{
		title:       lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginLeft(2),
		label:       lipgloss.NewStyle().Bold(true).Foreground(colorText),
		description: lipgloss.NewStyle().Italic(true).Foreground(colorSubtext),
		help:        lipgloss.NewStyle().Foreground(colorMuted).MarginLeft(2),

		blockFocused:   rule,
		blockUnfocused: lipgloss.NewStyle().PaddingLeft(2),

		submit:        button.Foreground(colorBase).Background(colorGreen),
		submitFocused: button.Foreground(colorGreen).Background(colorBase).Underline(true),

		listTitle:         lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		listSelectedTitle: rule.Bold(true).Foreground(colorText),
		listSelectedDesc:  rule.Foreground(colorSubtext),
		listNormalTitle:   lipgloss.NewStyle().Foreground(colorText).PaddingLeft(2),
		listNormalDesc:    lipgloss.NewStyle().Foreground(colorMuted).PaddingLeft(2),
	}
}

func applyTextInputStyles(input *textinput.Model) {
	input.TextStyle = lipgloss.NewStyle().Foreground(colorInput)
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(colorMuted)
	input.PromptStyle = lipgloss.NewStyle().Foreground(colorSubtext)
	input.Cursor.Style = lipgloss.NewStyle().Foreground(colorInput)
}

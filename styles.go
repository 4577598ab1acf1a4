package main

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	docStyle     lipgloss.Style
	titleStyle   lipgloss.Style
	errorStyle   lipgloss.Style
	warningStyle lipgloss.Style
	statusStyle  lipgloss.Style
}

// createStyles renders the title as a bar on the theme background and the
// status line in success, warning or error colors.
func createStyles(theme Theme) styles {
	return styles{
		docStyle: lipgloss.NewStyle().Margin(1, standardMargin),
		titleStyle: lipgloss.NewStyle().
			Foreground(theme.Text).
			Background(theme.Background).
			Padding(0, 1).
			Bold(true),
		errorStyle:   lipgloss.NewStyle().Foreground(theme.Error).Bold(true),
		warningStyle: lipgloss.NewStyle().Foreground(theme.Warning),
		statusStyle:  lipgloss.NewStyle().Foreground(theme.Success),
	}
}

func createHelpModel(theme Theme) help.Model {
	helpModel := help.New()
	helpModel.ShortSeparator = " • "
	helpModel.Styles = help.Styles{
		Ellipsis:       lipgloss.NewStyle().Foreground(theme.Muted),
		ShortKey:       lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		ShortDesc:      lipgloss.NewStyle().Foreground(theme.SecondaryText),
		ShortSeparator: lipgloss.NewStyle().Foreground(theme.Muted),
		FullKey:        lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		FullDesc:       lipgloss.NewStyle().Foreground(theme.SecondaryText),
		FullSeparator:  lipgloss.NewStyle().Foreground(theme.Muted),
	}
	return helpModel
}

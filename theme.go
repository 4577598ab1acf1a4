package main

import (
	"strings"

	"github.com/Rshep3087/bankist/config"
	"github.com/charmbracelet/lipgloss"
)

// Default palette. Income and expense match the deposit and withdrawal tags.
const (
	defaultPrimary       = "#ffb003"
	defaultSuccess       = "#39b385"
	defaultError         = "#e52a5a"
	defaultWarning       = "#ffcb03"
	defaultMuted         = "#7f7d78"
	defaultBorder        = "#7D56F4"
	defaultBackground    = "#39b385"
	defaultText          = "#FAFAFA"
	defaultSecondaryText = "#888888"
)

// Theme contains all the colors used throughout the application.
type Theme struct {
	Primary       lipgloss.Color
	Error         lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
	Muted         lipgloss.Color
	Income        lipgloss.Color
	Expense       lipgloss.Color
	Border        lipgloss.Color
	Background    lipgloss.Color
	Text          lipgloss.Color
	SecondaryText lipgloss.Color
}

// newTheme creates a Theme from config.Colors.
func newTheme(colors config.Colors) Theme {
	return Theme{
		Primary:       parseColor(colors.Primary, defaultPrimary),
		Error:         parseColor(colors.Error, defaultError),
		Success:       parseColor(colors.Success, defaultSuccess),
		Warning:       parseColor(colors.Warning, defaultWarning),
		Muted:         parseColor(colors.Muted, defaultMuted),
		Income:        parseColor(colors.Income, defaultSuccess),
		Expense:       parseColor(colors.Expense, defaultError),
		Border:        parseColor(colors.Border, defaultBorder),
		Background:    parseColor(colors.Background, defaultBackground),
		Text:          parseColor(colors.Text, defaultText),
		SecondaryText: parseColor(colors.SecondaryText, defaultSecondaryText),
	}
}

// parseColor returns colorStr as a lipgloss.Color, or defaultColor when it is
// blank. Hex ("#ff0000") and ANSI ("21") values are both accepted as is.
func parseColor(colorStr, defaultColor string) lipgloss.Color {
	if strings.TrimSpace(colorStr) == "" {
		return lipgloss.Color(defaultColor)
	}
	return lipgloss.Color(strings.TrimSpace(colorStr))
}

package config

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = "EUR"

// Config represents the application configuration structure.
type Config struct {
	// Debug enables debug logging
	Debug bool `mapstructure:"debug" toml:"debug"`
	// AccountsFile is a TOML file with the accounts to load instead of the demo accounts
	AccountsFile string `mapstructure:"accounts_file" toml:"accounts_file"`
	// Currency is the ISO 4217 code amounts are displayed in
	Currency string `mapstructure:"currency" toml:"currency"`
	// Colors overrides the theme
	Colors Colors `mapstructure:"colors" toml:"colors"`
}

// Colors holds the configurable theme colors as hex or ANSI strings.
type Colors struct {
	Primary       string `mapstructure:"primary" toml:"primary"`
	Error         string `mapstructure:"error" toml:"error"`
	Success       string `mapstructure:"success" toml:"success"`
	Warning       string `mapstructure:"warning" toml:"warning"`
	Muted         string `mapstructure:"muted" toml:"muted"`
	Income        string `mapstructure:"income" toml:"income"`
	Expense       string `mapstructure:"expense" toml:"expense"`
	Border        string `mapstructure:"border" toml:"border"`
	Background    string `mapstructure:"background" toml:"background"`
	Text          string `mapstructure:"text" toml:"text"`
	SecondaryText string `mapstructure:"secondary_text" toml:"secondary_text"`
}

// Model represents the config view model.
type Model struct {
	configTable table.Model
}

// New creates a new config view model.
func New() Model {
	configTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Setting", Width: 20},
			{Title: "Value", Width: 40},
			{Title: "Description", Width: 50},
		}),
	)

	tableStyle := table.DefaultStyles()
	tableStyle.Selected = tableStyle.Selected.
		Foreground(lipgloss.Color("#ffd644"))

	configTable.SetStyles(tableStyle)

	return Model{configTable: configTable}
}

// SetFocus sets the focus state of the config table.
func (m *Model) SetFocus(focus bool) {
	if focus {
		m.configTable.Focus()
	} else {
		m.configTable.Blur()
	}
}

// SetSize sets the size of the config table.
func (m *Model) SetSize(width, height int) {
	m.configTable.SetHeight(height)
	m.configTable.SetWidth(width)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// SetConfig sets the configuration data for the view.
func (m *Model) SetConfig(config Config) {
	rows := []table.Row{
		{
			"Debug",
			strconv.FormatBool(config.Debug),
			"Enable debug logging",
		},
		{
			"Accounts File",
			orDefault(config.AccountsFile, "(built-in demo accounts)"),
			"TOML file the accounts are loaded from",
		},
		{
			"Currency",
			orDefault(config.Currency, DefaultCurrency),
			"Currency amounts are displayed in",
		},
		{
			"Primary Color",
			orDefault(config.Colors.Primary, "(default)"),
			"Accent color for titles and selections",
		},
	}

	m.configTable.SetRows(rows)
}

// Init initializes the config view.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles updates to the config view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.configTable, cmd = m.configTable.Update(msg)
	return m, cmd
}

// View renders the config view.
func (m Model) View() string {
	return m.configTable.View()
}

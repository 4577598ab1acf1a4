package overview

import (
	"fmt"
	"strings"

	"github.com/Rshep3087/bankist/ledger"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
)

// Model defines the state for the account dashboard.
type Model struct {
	Styles   Styles
	Viewport viewport.Model
	summary  ledger.Summary
	balance  decimal.Decimal
	account  *ledger.Account
	order    ledger.SortOrder
	currency string
}

// Styles are the lipgloss styles used to render the dashboard.
type Styles struct {
	IncomeStyle   lipgloss.Style
	SpentStyle    lipgloss.Style
	InterestStyle lipgloss.Style
	BalanceStyle  lipgloss.Style
	MutedStyle    lipgloss.Style
	SummaryStyle  lipgloss.Style
}

// Colors overrides the default dashboard colors. Empty fields keep the default.
type Colors struct {
	Income   string
	Expense  string
	Interest string
	Primary  string
	Muted    string
	Border   string
}

func defaultStyles() Styles {
	return Styles{
		IncomeStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00")),
		SpentStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		InterestStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00")),
		BalanceStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ffd644")).Bold(true),
		MutedStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#7f7d78")),

		SummaryStyle: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
	}
}

// Option configures a Model created by New.
type Option func(*Model)

// WithColors applies the configured theme colors.
func WithColors(c Colors) Option {
	return func(m *Model) {
		if c.Income != "" {
			m.Styles.IncomeStyle = m.Styles.IncomeStyle.Foreground(lipgloss.Color(c.Income))
		}
		if c.Expense != "" {
			m.Styles.SpentStyle = m.Styles.SpentStyle.Foreground(lipgloss.Color(c.Expense))
		}
		if c.Interest != "" {
			m.Styles.InterestStyle = m.Styles.InterestStyle.Foreground(lipgloss.Color(c.Interest))
		}
		if c.Primary != "" {
			m.Styles.BalanceStyle = m.Styles.BalanceStyle.Foreground(lipgloss.Color(c.Primary))
		}
		if c.Muted != "" {
			m.Styles.MutedStyle = m.Styles.MutedStyle.Foreground(lipgloss.Color(c.Muted))
		}
		if c.Border != "" {
			m.Styles.SummaryStyle = m.Styles.SummaryStyle.BorderForeground(lipgloss.Color(c.Border))
		}
	}
}

// WithCurrency sets the ISO 4217 code amounts are displayed in.
func WithCurrency(currency string) Option {
	return func(m *Model) {
		m.currency = currency
	}
}

func New(opts ...Option) Model {
	m := Model{
		Styles:   defaultStyles(),
		Viewport: viewport.New(0, 20),
		currency: "EUR",
	}

	for _, opt := range opts {
		opt(&m)
	}

	m.UpdateViewport()

	return m
}

// SetAccount recomputes the dashboard for a. A nil account clears it.
func (m *Model) SetAccount(a *ledger.Account) {
	m.account = a
	if a == nil {
		log.Debug("clearing overview")
		m.balance = decimal.Zero
		m.summary = ledger.Summary{}
	} else {
		log.Debug("setting overview account", "username", a.Username)
		m.balance = a.Balance()
		m.summary = a.Summary()
	}
	m.UpdateViewport()
}

// SetOrder records the movement order shown next to the balance.
func (m *Model) SetOrder(order ledger.SortOrder) {
	m.order = order
	m.UpdateViewport()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.Viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.Viewport.Width = width
	m.Viewport.Height = height
}

func (m *Model) UpdateViewport() {
	m.Viewport.SetContent(
		lipgloss.JoinVertical(lipgloss.Top,
			m.headerView(),
			lipgloss.JoinHorizontal(lipgloss.Top,
				m.balanceView(),
				m.summaryView(),
			),
		),
	)
}

func (m *Model) headerView() string {
	if m.account == nil {
		return "Log in to get started"
	}

	return fmt.Sprintf("Welcome back, %s", m.account.FirstName())
}

func (m Model) balanceView() string {
	var b strings.Builder

	b.WriteString("Current balance\n")
	b.WriteString(m.Styles.BalanceStyle.Render(ledger.FormatAmount(m.balance, m.currency)))
	b.WriteString("\n")
	b.WriteString(m.Styles.MutedStyle.Render(fmt.Sprintf("movements: %s", m.order)))

	return m.Styles.SummaryStyle.Render(b.String())
}

func (m Model) summaryView() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("In: %s\n", m.Styles.IncomeStyle.Render(ledger.FormatAmount(m.summary.Income, m.currency))))
	b.WriteString(fmt.Sprintf("Out: %s\n", m.Styles.SpentStyle.Render(ledger.FormatAmount(m.summary.Expense, m.currency))))
	b.WriteString(fmt.Sprintf("Interest: %s", m.Styles.InterestStyle.Render(ledger.FormatAmount(m.summary.Interest, m.currency))))

	return m.Styles.SummaryStyle.Render(b.String())
}

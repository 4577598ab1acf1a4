package movements

import (
	"strconv"

	"github.com/Rshep3087/bankist/ledger"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

type Colors struct {
	Primary string
}

// Model is the table of an account's movements.
type Model struct {
	movements table.Model
	currency  string
}

func New(colors Colors) Model {
	movements := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Type", Width: 12},
			{Title: "Amount", Width: 16},
		}),
	)

	tableStyle := table.DefaultStyles()
	tableStyle.Selected = tableStyle.Selected.
		Foreground(lipgloss.Color(colors.Primary))

	movements.SetStyles(tableStyle)

	return Model{movements: movements}
}

func (m *Model) SetFocus(focus bool) {
	if focus {
		m.movements.Focus()
	} else {
		m.movements.Blur()
	}
}

func (m *Model) SetSize(width, height int) {
	m.movements.SetHeight(height)
	m.movements.SetWidth(width)
}

func (m *Model) SetCurrency(currency string) {
	m.currency = currency
}

// SetMovements replaces the rows. ms is in display order and is rendered
// last first, so the most recent movement sits on top; each row keeps its
// 1-based position in ms.
func (m *Model) SetMovements(ms []decimal.Decimal) {
	m.movements.SetRows(Rows(ms, m.currency))
	m.movements.GotoTop()
}

// Rows renders movements the way the table shows them.
func Rows(ms []decimal.Decimal, currency string) []table.Row {
	rows := make([]table.Row, 0, len(ms))
	for i := len(ms) - 1; i >= 0; i-- {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			ledger.MovementType(ms[i]),
			ledger.FormatAmount(ms[i], currency),
		})
	}
	return rows
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.movements, cmd = m.movements.Update(msg)
	return *m, cmd
}

func (m *Model) View() string {
	return m.movements.View()
}

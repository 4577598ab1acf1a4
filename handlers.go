package main

import (
	"fmt"
	"strings"

	"github.com/Rshep3087/bankist/ledger"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// Message handlers.
func (m model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h, v := m.styles.docStyle.GetFrameSize()

	takenHeight := 5
	overviewHeight := 9
	m.overview.SetSize(msg.Width-h, overviewHeight)
	m.movements.SetSize(msg.Width-h, max(0, msg.Height-v-takenHeight-overviewHeight))
	m.configView.SetSize(msg.Width-h, max(0, msg.Height-v-takenHeight))

	m.help.Width = msg.Width

	if f := activeForm(&m); f != nil {
		f.WithWidth(msg.Width - h)
	}

	return m, nil
}

// switchState moves to next and remembers where we came from.
func (m *model) switchState(next sessionState) {
	m.previousSessionState = m.sessionState
	m.sessionState = next
	m.movements.SetFocus(next == overviewState)
}

func (m *model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusKind = statusInfo
}

// setWarning reports something that did not happen but is not an error.
func (m *model) setWarning(msg string) {
	m.statusMsg = msg
	m.statusKind = statusWarning
}

func (m *model) setError(err error) {
	log.Debug("action failed", "error", err)
	m.statusMsg = err.Error()
	m.statusKind = statusError
}

// refresh pushes the session's account into the dashboard and table.
func (m *model) refresh() {
	m.overview.SetAccount(m.session.Account())
	m.overview.SetOrder(m.session.Order())
	m.movements.SetMovements(m.session.Movements())
}

func (m *model) login(username, pin string) error {
	p, err := ledger.ParsePIN(pin)
	if err != nil {
		m.setError(err)
		return err
	}

	s, err := m.bank.Login(strings.TrimSpace(username), p)
	if err != nil {
		m.setError(err)
		return err
	}

	m.session = s
	m.refresh()
	m.switchState(overviewState)
	m.setStatus(fmt.Sprintf("Welcome back, %s", s.FirstName()))

	return nil
}

func (m *model) transfer(receiver, amount string) error {
	a, err := ledger.ParseAmount(amount)
	if err != nil {
		m.setError(err)
		return err
	}

	receiver = strings.TrimSpace(receiver)
	if err := m.session.Transfer(receiver, a); err != nil {
		m.setError(err)
		return err
	}

	m.refresh()
	m.setStatus(fmt.Sprintf("Sent %s to %s", ledger.FormatAmount(a, m.currency), receiver))

	return nil
}

func (m *model) requestLoan(amount string) error {
	a, err := ledger.ParseAmount(amount)
	if err != nil {
		m.setError(err)
		return err
	}

	if err := m.session.RequestLoan(a); err != nil {
		m.setError(err)
		return err
	}

	m.refresh()
	m.setStatus(fmt.Sprintf("Loan of %s approved", ledger.FormatAmount(a, m.currency)))

	return nil
}

func (m *model) closeAccount(username, pin string) error {
	p, err := ledger.ParsePIN(pin)
	if err != nil {
		m.setError(err)
		return err
	}

	username = strings.TrimSpace(username)
	if err := m.session.Close(username, p); err != nil {
		m.setError(err)
		return err
	}

	m.endSession()
	m.setStatus(fmt.Sprintf("Account %s closed", username))

	return nil
}

func (m *model) toggleSort() {
	order := m.session.ToggleSort()
	m.refresh()
	log.Debug("sorting movements", "order", order)
}

func (m *model) logout() {
	m.session.Logout()
	m.endSession()
	m.setStatus("Logged out")
}

// endSession drops the session and goes back to a fresh login form.
func (m *model) endSession() {
	m.session = nil
	m.refresh()
	m.loginForm = newLoginForm()
	m.switchState(loginState)
}

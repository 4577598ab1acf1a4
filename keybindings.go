package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

type keyMap struct {
	overview     key.Binding
	transfer     key.Binding
	loan         key.Binding
	closeAccount key.Binding
	sort         key.Binding
	config       key.Binding
	logout       key.Binding
	escape       key.Binding
	fullHelp     key.Binding
	quit         key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		km.transfer,
		km.loan,
		km.sort,
		km.logout,
		km.quit,
		km.fullHelp,
	}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			km.overview,
			km.transfer,
			km.loan,
			km.closeAccount,
			km.sort,
		},
		{
			km.config,
			km.logout,
			km.escape,
			km.quit,
			km.fullHelp,
		},
	}
}

func initializeKeyMap() keyMap {
	keys := keyMap{
		overview: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "overview"),
		),
		transfer: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "transfer money"),
		),
		loan: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "request loan"),
		),
		closeAccount: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close account"),
		),
		sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort movements"),
		),
		config: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "configuration"),
		),
		logout: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "log out"),
		),
		escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		fullHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	return keys
}

// handleKeyPress runs the global and session keys. It reports false when the
// key belongs to the current view, such as typing into a form.
func handleKeyPress(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd, bool) {
	k := msg.String()
	log.Debug("key pressed", "key", k)

	// Handle special keys first
	if model, cmd, ok := handleSpecialKeys(msg, m); ok {
		return model, cmd, true
	}

	// Forms own the keyboard while they are being filled in
	if isInputBlocked(m) {
		return m, nil, false
	}

	// Everything else needs someone logged in
	if !m.session.Active() {
		return m, nil, false
	}

	return handleSessionStateKeys(msg, m)
}

func handleSpecialKeys(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd, bool) {
	// ctrl+c always quits, plain q only when it cannot be typed into a form
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit, true
	}

	if key.Matches(msg, m.keys.escape) {
		model, cmd := handleEscape(msg, m)
		return model, cmd, true
	}

	if !isInputBlocked(m) && key.Matches(msg, m.keys.quit) {
		return m, tea.Quit, true
	}

	return m, nil, false
}

func activeForm(m *model) *huh.Form {
	switch m.sessionState {
	case loginState:
		return m.loginForm
	case transferState:
		return m.transferForm
	case loanState:
		return m.loanForm
	case closeAccountState:
		return m.closeForm
	}

	return nil
}

func isInputBlocked(m *model) bool {
	f := activeForm(m)
	return f != nil && f.State == huh.StateNormal
}

func handleSessionStateKeys(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.transfer):
		m.transferForm = newTransferForm()
		m.switchState(transferState)
		return m, m.transferForm.Init(), true

	case key.Matches(msg, m.keys.loan):
		m.loanForm = newLoanForm()
		m.switchState(loanState)
		return m, m.loanForm.Init(), true

	case key.Matches(msg, m.keys.closeAccount):
		m.closeForm = newCloseForm()
		m.switchState(closeAccountState)
		return m, m.closeForm.Init(), true

	case key.Matches(msg, m.keys.sort):
		m.toggleSort()
		return m, nil, true

	case key.Matches(msg, m.keys.overview):
		m.configView.SetFocus(false)
		m.switchState(overviewState)
		return m, nil, true

	case key.Matches(msg, m.keys.config):
		m.configView.SetFocus(true)
		m.switchState(configView)
		return m, nil, true

	case key.Matches(msg, m.keys.logout):
		m.logout()
		return m, m.loginForm.Init(), true

	case key.Matches(msg, m.keys.fullHelp):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil, true
	}

	return m, nil, false
}

// handleEscape cancels the open form or leaves the current view and returns
// to the overview. It does nothing on the login screen.
func handleEscape(_ tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	switch m.sessionState {
	case loginState, overviewState:
		return m, nil

	case transferState, loanState, closeAccountState:
		log.Debug("cancelling form", "state", m.sessionState)
		if f := activeForm(m); f != nil {
			f.State = huh.StateAborted
		}
		m.setWarning(fmt.Sprintf("%s cancelled", m.sessionState))
	case configView:
		m.configView.SetFocus(false)
	}

	m.switchState(overviewState)
	return m, nil
}

package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// always check for quit key first
	if msg, ok := msg.(tea.KeyMsg); ok {
		if model, cmd, handled := handleKeyPress(msg, &m); handled {
			log.Debug("key press handled")
			return model, cmd
		}
	}

	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		return m.handleWindowSize(msg)
	}

	var cmd tea.Cmd
	switch m.sessionState {
	case loginState:
		return updateLogin(msg, &m)

	case overviewState:
		m.movements, cmd = m.movements.Update(msg)
		return m, cmd

	case transferState:
		return updateTransfer(msg, &m)

	case loanState:
		return updateLoan(msg, &m)

	case closeAccountState:
		return updateCloseAccount(msg, &m)

	case configView:
		m.configView, cmd = m.configView.Update(msg)
		return m, cmd
	}

	return m, nil
}

func updateLogin(msg tea.Msg, m *model) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.loginForm, cmd = updateForm(m.loginForm, msg)

	if m.loginForm.State != huh.StateCompleted {
		return m, cmd
	}

	err := m.login(m.loginForm.GetString(usernameField), m.loginForm.GetString(pinField))
	if err != nil {
		// start over with an empty form
		m.loginForm = newLoginForm()
		return m, m.loginForm.Init()
	}

	return m, nil
}

func updateTransfer(msg tea.Msg, m *model) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.transferForm, cmd = updateForm(m.transferForm, msg)

	switch m.transferForm.State {
	case huh.StateCompleted:
		_ = m.transfer(m.transferForm.GetString(receiverField), m.transferForm.GetString(amountField))
		m.switchState(overviewState)
		return m, nil
	case huh.StateAborted:
		m.switchState(overviewState)
		return m, nil
	}

	return m, cmd
}

func updateLoan(msg tea.Msg, m *model) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.loanForm, cmd = updateForm(m.loanForm, msg)

	switch m.loanForm.State {
	case huh.StateCompleted:
		_ = m.requestLoan(m.loanForm.GetString(amountField))
		m.switchState(overviewState)
		return m, nil
	case huh.StateAborted:
		m.switchState(overviewState)
		return m, nil
	}

	return m, cmd
}

func updateCloseAccount(msg tea.Msg, m *model) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.closeForm, cmd = updateForm(m.closeForm, msg)

	switch m.closeForm.State {
	case huh.StateCompleted:
		if err := m.closeAccount(m.closeForm.GetString(usernameField), m.closeForm.GetString(pinField)); err != nil {
			m.switchState(overviewState)
			return m, nil
		}
		// closing ends the session, so we are on the login form now
		return m, m.loginForm.Init()
	case huh.StateAborted:
		m.switchState(overviewState)
		return m, nil
	}

	return m, cmd
}

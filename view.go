package main

import (
	"fmt"
	"strings"
)

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTitle())
	b.WriteString("\n\n")

	switch m.sessionState {
	case loginState:
		b.WriteString(m.overview.View())
		b.WriteString("\n\n")
		b.WriteString(m.loginForm.View())
	case overviewState:
		b.WriteString(m.overview.View())
		b.WriteString("\n")
		b.WriteString(m.movements.View())
	case transferState:
		b.WriteString(m.overview.View())
		b.WriteString("\n\n")
		b.WriteString(m.transferForm.View())
	case loanState:
		b.WriteString(m.overview.View())
		b.WriteString("\n\n")
		b.WriteString(m.loanForm.View())
	case closeAccountState:
		b.WriteString(m.closeForm.View())
	case configView:
		b.WriteString(m.configView.View())
	}

	if status := m.renderStatus(); status != "" {
		b.WriteString("\n\n")
		b.WriteString(status)
	}

	// keys only work once logged in
	if m.session.Active() {
		b.WriteString("\n\n")
		b.WriteString(m.help.View(m.keys))
	}

	return m.styles.docStyle.Render(b.String())
}

func (m model) renderTitle() string {
	if !m.session.Active() {
		return m.styles.titleStyle.Render(fmt.Sprintf("bankist | %s", m.sessionState.String()))
	}

	return m.styles.titleStyle.Render(
		fmt.Sprintf("bankist | %s | %s",
			m.sessionState.String(),
			m.session.Account().Username,
		),
	)
}

func (m model) renderStatus() string {
	if m.statusMsg == "" {
		return ""
	}

	switch m.statusKind {
	case statusError:
		return m.styles.errorStyle.Render(m.statusMsg)
	case statusWarning:
		return m.styles.warningStyle.Render(m.statusMsg)
	}

	return m.styles.statusStyle.Render(m.statusMsg)
}

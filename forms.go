package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

const (
	usernameField = "username"
	pinField      = "pin"
	amountField   = "amount"
	receiverField = "receiver"
)

func newLoginForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key(usernameField).
				Title("User").
				Placeholder("js"),
			huh.NewInput().
				Key(pinField).
				Title("PIN").
				EchoMode(huh.EchoModePassword),
		),
	).WithShowHelp(false)
}

func newTransferForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key(receiverField).
				Title("Transfer to").
				Description("Username of the receiving account"),
			huh.NewInput().
				Key(amountField).
				Title("Amount"),
		),
	).WithShowHelp(false)
}

func newLoanForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key(amountField).
				Title("Loan amount").
				Description("Granted if any deposit is at least 10% of the amount"),
		),
	).WithShowHelp(false)
}

func newCloseForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Close account").
				Description("Confirm your user and PIN. This cannot be undone."),
			huh.NewInput().
				Key(usernameField).
				Title("Confirm user"),
			huh.NewInput().
				Key(pinField).
				Title("Confirm PIN").
				EchoMode(huh.EchoModePassword),
		),
	).WithShowHelp(false)
}

// updateForm forwards msg to f and keeps the updated form.
func updateForm(f *huh.Form, msg tea.Msg) (*huh.Form, tea.Cmd) {
	form, cmd := f.Update(msg)
	if next, ok := form.(*huh.Form); ok {
		f = next
	}
	return f, cmd
}

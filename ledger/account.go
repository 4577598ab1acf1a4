package ledger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Account is a single customer account. Balance and username are derived
// from Owner and Movements and are never authored.
type Account struct {
	Owner        string            `json:"owner"`
	Username     string            `json:"username"`
	PIN          int               `json:"-"`
	Movements    []decimal.Decimal `json:"movements"`
	InterestRate decimal.Decimal   `json:"interest_rate"`
}

// Balance returns the account's current balance.
func (a *Account) Balance() decimal.Decimal {
	return Balance(a.Movements)
}

// Summary returns income, expense and interest for the account.
func (a *Account) Summary() Summary {
	return Summarize(a.Movements, a.InterestRate)
}

// FirstName is the owner's first name, used to greet them.
func (a *Account) FirstName() string {
	return firstName(a.Owner)
}

// RequestLoan grants a loan when some movement is at least a tenth of the
// requested amount. A granted loan is appended as a deposit.
func (a *Account) RequestLoan(amount decimal.Decimal) error {
	if !amount.IsPositive() || !inRange(amount) {
		return ErrInvalidAmount
	}

	required := amount.Div(ten)
	for _, m := range a.Movements {
		if m.GreaterThanOrEqual(required) {
			a.Movements = append(a.Movements, amount)
			return nil
		}
	}

	return fmt.Errorf("loan of %s for %s: %w", amount, a.Username, ErrLoanDenied)
}

// Transfer moves amount from sender to receiver. Either both mirror
// movements are appended or neither is.
func Transfer(sender, receiver *Account, amount decimal.Decimal) error {
	if !amount.IsPositive() || !inRange(amount) {
		return ErrInvalidAmount
	}

	if receiver == nil {
		return ErrAccountNotFound
	}

	if receiver == sender || receiver.Username == sender.Username {
		return ErrSameAccount
	}

	if sender.Balance().LessThan(amount) {
		return fmt.Errorf("transfer of %s from %s: %w", amount, sender.Username, ErrInsufficientFunds)
	}

	sender.Movements = append(sender.Movements, amount.Neg())
	receiver.Movements = append(receiver.Movements, amount)

	return nil
}

// ParsePIN parses a pin typed by the user.
func ParsePIN(s string) (int, error) {
	pin, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidCredentials
	}
	return pin, nil
}

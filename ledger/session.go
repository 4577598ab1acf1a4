package ledger

import (
	"slices"

	"github.com/shopspring/decimal"
)

// SortOrder is how a session displays its movements.
type SortOrder int

const (
	Unsorted SortOrder = iota
	Ascending
	Descending
)

func (o SortOrder) String() string {
	switch o {
	case Unsorted:
		return "unsorted"
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	}

	return "unknown"
}

// Session is a logged in user. It ends on Logout or when its account is
// closed; every operation on an ended session returns ErrNoSession.
type Session struct {
	bank    *Bank
	account *Account
	order   SortOrder
}

// Active reports whether the session is still logged in.
func (s *Session) Active() bool {
	return s != nil && s.account != nil
}

// Account returns the logged in account, or nil once the session ended.
func (s *Session) Account() *Account {
	if !s.Active() {
		return nil
	}
	return s.account
}

// FirstName is used for the welcome line. Empty once the session ended.
func (s *Session) FirstName() string {
	if !s.Active() {
		return ""
	}
	return s.account.FirstName()
}

// Transfer sends amount to the account named to.
func (s *Session) Transfer(to string, amount decimal.Decimal) error {
	if !s.Active() {
		return ErrNoSession
	}
	return s.bank.Transfer(s.account, to, amount)
}

// RequestLoan asks for a loan on the logged in account.
func (s *Session) RequestLoan(amount decimal.Decimal) error {
	if !s.Active() {
		return ErrNoSession
	}
	return s.account.RequestLoan(amount)
}

// Close closes the logged in account. The confirmation username must be the
// session's own; on success the session ends.
func (s *Session) Close(username string, pin int) error {
	if !s.Active() {
		return ErrNoSession
	}

	if username != s.account.Username {
		return ErrInvalidCredentials
	}

	if err := s.bank.Close(username, pin); err != nil {
		return err
	}

	s.Logout()
	return nil
}

// Logout ends the session.
func (s *Session) Logout() {
	if s == nil {
		return
	}
	s.account = nil
	s.order = Unsorted
}

// Order is the current display order.
func (s *Session) Order() SortOrder {
	if s == nil {
		return Unsorted
	}
	return s.order
}

// ToggleSort advances to the next display order and returns it.
func (s *Session) ToggleSort() SortOrder {
	if !s.Active() {
		return Unsorted
	}
	s.order = (s.order + 1) % 3
	return s.order
}

// Movements returns the account's movements in the session's display order.
func (s *Session) Movements() []decimal.Decimal {
	if !s.Active() {
		return nil
	}
	return OrderMovements(s.account.Movements, s.order)
}

// OrderMovements returns a copy of movements in the given order.
func OrderMovements(movements []decimal.Decimal, order SortOrder) []decimal.Decimal {
	switch order {
	case Ascending:
		return SortMovements(movements, true)
	case Descending:
		return SortMovements(movements, false)
	default:
		return slices.Clone(movements)
	}
}

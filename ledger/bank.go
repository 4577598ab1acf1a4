package ledger

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
)

// Bank is the collection of open accounts, indexed by username.
type Bank struct {
	accounts   []*Account
	byUsername map[string]*Account
}

// NewBank derives the username of every account and indexes them. Two
// owners with the same initials are rejected with ErrDuplicateUsername.
func NewBank(accounts []*Account) (*Bank, error) {
	b := &Bank{
		accounts:   make([]*Account, 0, len(accounts)),
		byUsername: make(map[string]*Account, len(accounts)),
	}

	for _, a := range accounts {
		a.Username = DeriveUsername(a.Owner)

		if existing, ok := b.byUsername[a.Username]; ok {
			return nil, fmt.Errorf("%q is used by both %s and %s: %w",
				a.Username, existing.Owner, a.Owner, ErrDuplicateUsername)
		}

		b.byUsername[a.Username] = a
		b.accounts = append(b.accounts, a)
	}

	return b, nil
}

// Lookup finds an open account by username.
func (b *Bank) Lookup(username string) (*Account, error) {
	a, ok := b.byUsername[username]
	if !ok {
		return nil, fmt.Errorf("%q: %w", username, ErrAccountNotFound)
	}
	return a, nil
}

// Accounts returns the open accounts in load order.
func (b *Bank) Accounts() []*Account {
	return slices.Clone(b.accounts)
}

// Len is the number of open accounts.
func (b *Bank) Len() int {
	return len(b.accounts)
}

// TotalBalance sums the balance of every open account.
func (b *Bank) TotalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, a := range b.accounts {
		total = total.Add(a.Balance())
	}
	return total
}

// Transfer sends amount from sender to the account named receiverUsername.
func (b *Bank) Transfer(sender *Account, receiverUsername string, amount decimal.Decimal) error {
	if !amount.IsPositive() || !inRange(amount) {
		return ErrInvalidAmount
	}

	receiver, err := b.Lookup(receiverUsername)
	if err != nil {
		return err
	}

	if err := Transfer(sender, receiver, amount); err != nil {
		return err
	}

	log.Debug("transfer applied", "from", sender.Username, "to", receiver.Username, "amount", amount)
	return nil
}

// Close removes the account named username if pin matches.
func (b *Bank) Close(username string, pin int) error {
	a, ok := b.byUsername[username]
	if !ok || a.PIN != pin {
		return ErrInvalidCredentials
	}

	delete(b.byUsername, username)
	b.accounts = slices.DeleteFunc(b.accounts, func(acc *Account) bool {
		return acc == a
	})

	log.Debug("account closed", "username", username)
	return nil
}

// Login starts a session for the account named username.
func (b *Bank) Login(username string, pin int) (*Session, error) {
	a, ok := b.byUsername[username]
	if !ok || a.PIN != pin {
		return nil, ErrInvalidCredentials
	}

	log.Debug("logged in", "username", username)
	return &Session{bank: b, account: a}, nil
}

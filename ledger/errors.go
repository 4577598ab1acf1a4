package ledger

import "errors"

// Validation failures. Returning any of these means no movement was
// appended and no account was removed.
var (
	ErrInvalidAmount      = errors.New("amount must be a positive number")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrAccountNotFound    = errors.New("account not found")
	ErrSameAccount        = errors.New("cannot transfer to the same account")
	ErrLoanDenied         = errors.New("no deposit of at least 10% of the requested amount")
	ErrInvalidCredentials = errors.New("invalid username or pin")
	ErrDuplicateUsername  = errors.New("duplicate username")
	ErrNoSession          = errors.New("no active session")
)

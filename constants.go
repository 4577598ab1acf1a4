package main

const standardMargin = 2

// Output formats for list commands
const (
	jsonOutputFormat  = "json"
	tableOutputFormat = "table"
)

// Status line levels
type statusKind int

const (
	statusInfo statusKind = iota
	statusWarning
	statusError
)

// Session states
type sessionState int

const (
	loginState sessionState = iota
	overviewState
	transferState
	loanState
	closeAccountState
	configView
)

func (ss sessionState) String() string {
	switch ss {
	case loginState:
		return "login"
	case overviewState:
		return "overview"
	case transferState:
		return "transfer"
	case loanState:
		return "request loan"
	case closeAccountState:
		return "close account"
	case configView:
		return "configuration"
	}

	return "unknown"
}

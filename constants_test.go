package main

import (
	"testing"

	"github.com/carlmjohnson/be"
)

func TestSessionStateString(t *testing.T) {
	tests := []struct {
		name     string
		state    sessionState
		expected string
	}{
		{
			name:     "login state",
			state:    loginState,
			expected: "login",
		},
		{
			name:     "overview state",
			state:    overviewState,
			expected: "overview",
		},
		{
			name:     "transfer state",
			state:    transferState,
			expected: "transfer",
		},
		{
			name:     "loan state",
			state:    loanState,
			expected: "request loan",
		},
		{
			name:     "close account state",
			state:    closeAccountState,
			expected: "close account",
		},
		{
			name:     "config view state",
			state:    configView,
			expected: "configuration",
		},
		{
			name:     "unknown state",
			state:    sessionState(99),
			expected: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be.Equal(t, tt.expected, tt.state.String())
		})
	}
}

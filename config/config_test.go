package config

import (
	"testing"

	"github.com/carlmjohnson/be"
)

func TestOrDefault(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{
			name:     "value set",
			value:    "USD",
			expected: "USD",
		},
		{
			name:     "empty value",
			value:    "",
			expected: "fallback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := orDefault(tt.value, "fallback")
			be.Equal(t, tt.expected, result)
		})
	}
}

func TestSetConfig(t *testing.T) {
	m := New()
	testConfig := Config{
		Debug:        true,
		AccountsFile: "/tmp/accounts.toml",
	}

	m.SetConfig(testConfig)

	rows := m.configTable.Rows()
	be.Equal(t, 4, len(rows))
	be.Equal(t, "true", rows[0][1])
	be.Equal(t, "/tmp/accounts.toml", rows[1][1])
	// unset currency shows the default
	be.Equal(t, DefaultCurrency, rows[2][1])
}

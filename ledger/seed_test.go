package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/carlmjohnson/be"
)

func TestDefaultAccounts(t *testing.T) {
	accounts, err := DefaultAccounts()
	be.NilErr(t, err)
	be.Equal(t, 4, len(accounts))

	jonas := accounts[0]
	be.Equal(t, "Jonas Schmedtmann", jonas.Owner)
	be.Equal(t, 1111, jonas.PIN)
	be.Equal(t, "1.2", jonas.InterestRate.String())
	be.Equal(t, 8, len(jonas.Movements))

	// usernames are derived on load, not authored
	be.Equal(t, "", jonas.Username)

	sarah := accounts[3]
	be.Equal(t, "1", sarah.InterestRate.String())
}

func TestParseAccounts(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantLen int
		wantErr bool
	}{
		{
			name: "mixed integer and float movements",
			data: `
[[accounts]]
owner = "Ada Lovelace"
pin = 1815
movements = [100, -20.5, "3.25"]
interest_rate = 0.5
`,
			wantLen: 1,
		},
		{
			name:    "no accounts",
			data:    ``,
			wantLen: 0,
		},
		{
			name: "missing owner",
			data: `
[[accounts]]
pin = 1
`,
			wantErr: true,
		},
		{
			name: "movement is not a number",
			data: `
[[accounts]]
owner = "Ada Lovelace"
movements = [true]
`,
			wantErr: true,
		},
		{
			name: "movement out of range",
			data: `
[[accounts]]
owner = "Ada Lovelace"
movements = ["1e900000000"]
`,
			wantErr: true,
		},
		{
			name:    "invalid toml",
			data:    `[[accounts`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts, err := ParseAccounts([]byte(tt.data))
			if tt.wantErr {
				be.Nonzero(t, err)
				return
			}
			be.NilErr(t, err)
			be.Equal(t, tt.wantLen, len(accounts))
		})
	}
}

func TestLoadAccounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.toml")
	err := os.WriteFile(path, []byte(`
[[accounts]]
owner = "Grace Hopper"
pin = 1906
movements = [500, -125]
interest_rate = 2
`), 0o600)
	be.NilErr(t, err)

	accounts, err := LoadAccounts(path)
	be.NilErr(t, err)
	be.Equal(t, 1, len(accounts))
	be.Equal(t, "375", accounts[0].Balance().String())

	_, err = LoadAccounts(filepath.Join(t.TempDir(), "missing.toml"))
	be.Nonzero(t, err)
}

package ledger

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"
)

//go:embed seed.toml
var defaultSeed []byte

type seedFile struct {
	Accounts []seedAccount `toml:"accounts"`
}

// seedAccount keeps numbers loosely typed: TOML distinguishes 1 from 1.0
// and both are valid amounts.
type seedAccount struct {
	Owner        string `toml:"owner"`
	PIN          int    `toml:"pin"`
	Movements    []any  `toml:"movements"`
	InterestRate any    `toml:"interest_rate"`
}

// DefaultAccounts returns the demo accounts bundled with the binary.
func DefaultAccounts() ([]*Account, error) {
	return ParseAccounts(defaultSeed)
}

// LoadAccounts reads accounts from a TOML file.
func LoadAccounts(path string) ([]*Account, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts file %s: %w", path, err)
	}

	accounts, err := ParseAccounts(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse accounts file %s: %w", path, err)
	}

	return accounts, nil
}

// ParseAccounts decodes TOML account data.
func ParseAccounts(data []byte) ([]*Account, error) {
	var f seedFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	accounts := make([]*Account, 0, len(f.Accounts))
	for i, sa := range f.Accounts {
		if strings.TrimSpace(sa.Owner) == "" {
			return nil, fmt.Errorf("account %d: owner is required", i+1)
		}

		a := &Account{
			Owner:     sa.Owner,
			PIN:       sa.PIN,
			Movements: make([]decimal.Decimal, 0, len(sa.Movements)),
		}

		for _, v := range sa.Movements {
			m, err := toDecimal(v)
			if err != nil {
				return nil, fmt.Errorf("account %s: movement: %w", sa.Owner, err)
			}
			a.Movements = append(a.Movements, m)
		}

		if sa.InterestRate != nil {
			rate, err := toDecimal(sa.InterestRate)
			if err != nil {
				return nil, fmt.Errorf("account %s: interest rate: %w", sa.Owner, err)
			}
			a.InterestRate = rate
		}

		accounts = append(accounts, a)
	}

	return accounts, nil
}

func toDecimal(v any) (decimal.Decimal, error) {
	var d decimal.Decimal
	switch n := v.(type) {
	case int64:
		d = decimal.NewFromInt(n)
	case float64:
		d = decimal.NewFromFloat(n)
	case string:
		var err error
		if d, err = decimal.NewFromString(n); err != nil {
			return decimal.Zero, err
		}
	default:
		return decimal.Zero, errors.New("not a number")
	}

	if !inRange(d) {
		return decimal.Zero, fmt.Errorf("%v is out of range", v)
	}
	return d, nil
}

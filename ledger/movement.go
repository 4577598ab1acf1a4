package ledger

import (
	"slices"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const (
	depositType    = "deposit"
	withdrawalType = "withdrawal"

	// Amounts must fit in these bounds so every comparison stays cheap.
	maxIntegerDigits  = 15
	maxFractionDigits = 8
)

var (
	hundred         = decimal.NewFromInt(100)
	ten             = decimal.NewFromInt(10)
	interestFloor   = decimal.NewFromInt(1)
	defaultCurrency = "EUR"
)

// Summary holds the aggregates shown under an account's balance.
type Summary struct {
	Income   decimal.Decimal `json:"income"`
	Expense  decimal.Decimal `json:"expense"`
	Interest decimal.Decimal `json:"interest"`
}

// Balance is the sum of all movements. No rounding is applied.
func Balance(movements []decimal.Decimal) decimal.Decimal {
	balance := decimal.Zero
	for _, m := range movements {
		balance = balance.Add(m)
	}
	return balance
}

// Summarize computes income, expense and interest for a movement history.
// Interest is paid per deposit and a deposit only earns it when its own
// interest reaches 1.
func Summarize(movements []decimal.Decimal, interestRate decimal.Decimal) Summary {
	income, out, interest := decimal.Zero, decimal.Zero, decimal.Zero

	for _, m := range movements {
		if m.IsPositive() {
			income = income.Add(m)

			earned := m.Mul(interestRate).Div(hundred)
			if earned.GreaterThanOrEqual(interestFloor) {
				interest = interest.Add(earned)
			}
			continue
		}

		if m.IsNegative() {
			out = out.Add(m)
		}
	}

	return Summary{Income: income, Expense: out.Abs(), Interest: interest}
}

// SortMovements returns a sorted copy of movements. Equal values keep their
// insertion order.
func SortMovements(movements []decimal.Decimal, ascending bool) []decimal.Decimal {
	sorted := slices.Clone(movements)
	slices.SortStableFunc(sorted, func(a, b decimal.Decimal) int {
		if ascending {
			return a.Cmp(b)
		}
		return b.Cmp(a)
	})
	return sorted
}

// MovementType classifies a movement for display.
func MovementType(m decimal.Decimal) string {
	if m.IsPositive() {
		return depositType
	}
	return withdrawalType
}

// inRange reports whether d has at most maxIntegerDigits before and
// maxFractionDigits after the decimal point.
func inRange(d decimal.Decimal) bool {
	exp := int64(d.Exponent())
	if exp < -maxFractionDigits {
		return false
	}

	// 128 bits is well past the digit limit, skip formatting anything larger
	c := d.Coefficient()
	if c.BitLen() > 128 {
		return false
	}
	digits := int64(len(c.Abs(c).String()))

	return digits+exp <= maxIntegerDigits
}

// ParseAmount parses user input into an amount. Anything that is not a
// positive number within the supported range is rejected with
// ErrInvalidAmount.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}

	if !d.IsPositive() || !inRange(d) {
		return decimal.Zero, ErrInvalidAmount
	}

	return d, nil
}

// FormatAmount renders an amount in the given currency, rounded to the
// currency's minor unit. An empty currency means EUR. Amounts too large for
// go-money are printed as a plain decimal followed by the currency code.
func FormatAmount(d decimal.Decimal, currency string) string {
	if currency == "" {
		currency = defaultCurrency
	}

	fraction := 2
	if c := money.GetCurrency(currency); c != nil {
		fraction = c.Fraction
	}

	minor := d.Shift(int32(fraction)).Round(0)
	if !minor.BigInt().IsInt64() {
		return d.StringFixed(int32(fraction)) + " " + currency
	}
	return money.New(minor.IntPart(), currency).Display()
}

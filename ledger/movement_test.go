package ledger

import (
	"errors"
	"testing"

	"github.com/Rhymond/go-money"
	"github.com/carlmjohnson/be"
	"github.com/shopspring/decimal"
)

func amounts(vs ...float64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(vs))
	for i, v := range vs {
		out[i] = decimal.NewFromFloat(v)
	}
	return out
}

func strs(ds []decimal.Decimal) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.String()
	}
	return out
}

func TestBalance(t *testing.T) {
	tests := []struct {
		name      string
		movements []decimal.Decimal
		expected  string
	}{
		{name: "no movements", movements: nil, expected: "0"},
		{name: "deposits only", movements: amounts(100, 50.5), expected: "150.5"},
		{name: "mixed", movements: amounts(200, 450, -400, 3000, -650, -130, 70, 1300), expected: "3840"},
		{name: "overdrawn", movements: amounts(10, -25), expected: "-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be.Equal(t, tt.expected, Balance(tt.movements).String())
		})
	}
}

func TestBalanceIgnoresOrder(t *testing.T) {
	m := amounts(200, 450, -400, 3000, -650, -130, 70, 1300)
	want := Balance(m)

	be.True(t, want.Equal(Balance(SortMovements(m, true))))
	be.True(t, want.Equal(Balance(SortMovements(m, false))))
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name      string
		movements []decimal.Decimal
		rate      decimal.Decimal
		income    string
		expense   string
		interest  string
	}{
		{
			name:      "every deposit earns interest",
			movements: amounts(100, -20, 50),
			rate:      decimal.NewFromInt(2),
			income:    "150",
			expense:   "20",
			interest:  "3",
		},
		{
			name:      "deposit below the floor earns nothing",
			movements: amounts(40),
			rate:      decimal.NewFromInt(2),
			income:    "40",
			expense:   "0",
			interest:  "0",
		},
		{
			name:      "floor applies per deposit, not to the total",
			movements: amounts(40, 40, 40),
			rate:      decimal.NewFromInt(2),
			income:    "120",
			expense:   "0",
			interest:  "0",
		},
		{
			name:      "demo account",
			movements: amounts(200, 450, -400, 3000, -650, -130, 70, 1300),
			rate:      decimal.NewFromFloat(1.2),
			income:    "5020",
			expense:   "1180",
			interest:  "59.4",
		},
		{
			name:      "empty history",
			movements: nil,
			rate:      decimal.NewFromInt(1),
			income:    "0",
			expense:   "0",
			interest:  "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(tt.movements, tt.rate)
			be.Equal(t, tt.income, s.Income.String())
			be.Equal(t, tt.expense, s.Expense.String())
			be.Equal(t, tt.interest, s.Interest.String())
		})
	}
}

func TestSortMovements(t *testing.T) {
	m := amounts(200, -400, 3000, -650, 70)

	asc := SortMovements(m, true)
	be.AllEqual(t, []string{"-650", "-400", "70", "200", "3000"}, strs(asc))

	desc := SortMovements(m, false)
	be.AllEqual(t, []string{"3000", "200", "70", "-400", "-650"}, strs(desc))

	// source is untouched
	be.AllEqual(t, []string{"200", "-400", "3000", "-650", "70"}, strs(m))

	// sorting twice changes nothing
	be.AllEqual(t, strs(asc), strs(SortMovements(asc, true)))
}

func TestSortMovementsIsStable(t *testing.T) {
	// 1 and 1.0 compare equal but print differently
	m := []decimal.Decimal{
		decimal.RequireFromString("1.0"),
		decimal.NewFromInt(-5),
		decimal.NewFromInt(1),
	}

	be.AllEqual(t, []string{"-5", "1", "1"}, strs(SortMovements(m, true)))
	sorted := SortMovements(m, true)
	be.Equal(t, int32(-1), sorted[1].Exponent())
	be.Equal(t, int32(0), sorted[2].Exponent())
}

func TestMovementType(t *testing.T) {
	be.Equal(t, "deposit", MovementType(decimal.NewFromInt(1)))
	be.Equal(t, "withdrawal", MovementType(decimal.NewFromInt(-1)))
	be.Equal(t, "withdrawal", MovementType(decimal.Zero))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		valid    bool
	}{
		{name: "integer", input: "250", expected: "250", valid: true},
		{name: "decimal", input: "12.5", expected: "12.5", valid: true},
		{name: "surrounding spaces", input: "  40 ", expected: "40", valid: true},
		{name: "exponent", input: "1e3", expected: "1000", valid: true},
		{name: "empty", input: ""},
		{name: "blank", input: "   "},
		{name: "letters", input: "abc"},
		{name: "dangling exponent", input: "1e"},
		{name: "not a number", input: "NaN"},
		{name: "zero", input: "0"},
		{name: "negative", input: "-5"},
		{name: "largest accepted", input: "999999999999999", expected: "999999999999999", valid: true},
		{name: "smallest fraction", input: "0.00000001", expected: "0.00000001", valid: true},
		{name: "too many integer digits", input: "1e15"},
		{name: "long digit string", input: "12345678901234567890"},
		{name: "too many fraction digits", input: "0.000000001"},
		{name: "huge exponent", input: "1e900000000"},
		{name: "tiny exponent", input: "1e-900000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if !tt.valid {
				be.True(t, errors.Is(err, ErrInvalidAmount))
				return
			}
			be.NilErr(t, err)
			be.Equal(t, tt.expected, got.String())
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		currency string
		expected string
	}{
		{
			name:     "defaults to EUR",
			amount:   decimal.NewFromInt(3840),
			currency: "",
			expected: money.New(384000, "EUR").Display(),
		},
		{
			name:     "rounds to cents",
			amount:   decimal.RequireFromString("59.405"),
			currency: "USD",
			expected: money.New(5941, "USD").Display(),
		},
		{
			name:     "negative",
			amount:   decimal.NewFromInt(-400),
			currency: "USD",
			expected: money.New(-40000, "USD").Display(),
		},
		{
			name:     "currency without minor unit",
			amount:   decimal.RequireFromString("1500.4"),
			currency: "JPY",
			expected: money.New(1500, "JPY").Display(),
		},
		{
			name:     "large amount still in int64 minor units",
			amount:   decimal.NewFromInt(10_000_000_000_000_000),
			currency: "EUR",
			expected: money.New(1_000_000_000_000_000_000, "EUR").Display(),
		},
		{
			name:     "beyond int64 minor units",
			amount:   decimal.NewFromInt(100_000_000_000_000_000),
			currency: "EUR",
			expected: "100000000000000000.00 EUR",
		},
		{
			name:     "negative beyond int64 minor units",
			amount:   decimal.RequireFromString("-1e20"),
			currency: "USD",
			expected: "-100000000000000000000.00 USD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be.Equal(t, tt.expected, FormatAmount(tt.amount, tt.currency))
		})
	}
}

package movements

import (
	"strings"
	"testing"

	"github.com/Rshep3087/bankist/ledger"
	"github.com/carlmjohnson/be"
	"github.com/shopspring/decimal"
)

func TestNew(t *testing.T) {
	model := New(Colors{Primary: "#ff0000"})

	columns := model.movements.Columns()
	be.Equal(t, 3, len(columns))
	be.Equal(t, "#", columns[0].Title)
	be.Equal(t, "Type", columns[1].Title)
	be.Equal(t, "Amount", columns[2].Title)
}

func TestRows(t *testing.T) {
	ms := []decimal.Decimal{
		decimal.NewFromInt(200),
		decimal.NewFromInt(-50),
		decimal.NewFromInt(300),
	}

	rows := Rows(ms, "EUR")
	be.Equal(t, 3, len(rows))

	// most recent first, numbered by position
	be.Equal(t, "3", rows[0][0])
	be.Equal(t, "deposit", rows[0][1])
	be.Equal(t, ledger.FormatAmount(decimal.NewFromInt(300), "EUR"), rows[0][2])

	be.Equal(t, "2", rows[1][0])
	be.Equal(t, "withdrawal", rows[1][1])

	be.Equal(t, "1", rows[2][0])
}

func TestSetMovements(t *testing.T) {
	model := New(Colors{Primary: "#ff0000"})
	model.SetCurrency("USD")

	tests := []struct {
		name      string
		movements []decimal.Decimal
	}{
		{name: "empty", movements: []decimal.Decimal{}},
		{name: "single", movements: []decimal.Decimal{decimal.NewFromInt(70)}},
		{
			name: "several",
			movements: []decimal.Decimal{
				decimal.NewFromInt(70),
				decimal.NewFromInt(-130),
				decimal.NewFromInt(1300),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model.SetMovements(tt.movements)
			be.Equal(t, len(tt.movements), len(model.movements.Rows()))
		})
	}
}

func TestInit(t *testing.T) {
	model := New(Colors{Primary: "#ff0000"})

	if cmd := model.Init(); cmd != nil {
		t.Errorf("Expected nil command, got %v", cmd)
	}
}

func TestView(t *testing.T) {
	model := New(Colors{Primary: "#ff0000"})
	model.SetSize(60, 10)
	model.SetMovements([]decimal.Decimal{decimal.NewFromInt(-650)})

	view := model.View()
	be.Nonzero(t, view)
	if !strings.Contains(view, "withdrawal") {
		t.Errorf("Expected view to contain 'withdrawal', got: %s", view)
	}
}

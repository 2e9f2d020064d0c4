package expense

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestDirectionOf(t *testing.T) {
	for _, c := range Categories {
		want := Outflow
		if c == CategoryCashIn {
			want = Inflow
		}
		if got := DirectionOf(c); got != want {
			t.Errorf("DirectionOf(%q) = %q, esperado %q", c, got, want)
		}
	}
}

func TestNewExpense(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("entrada de caixa tem sinal positivo", func(t *testing.T) {
		e, err := NewExpense(Input{Description: "Aporte", Amount: decimal.NewFromInt(100), Category: "Entrada de Caixa", ExpenseDate: date})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if e.Direction != Inflow || !e.Signed().Equal(decimal.NewFromInt(100)) {
			t.Errorf("despesa inesperada: %+v", e)
		}
	})

	t.Run("demais categorias têm sinal negativo", func(t *testing.T) {
		e, _ := NewExpense(Input{Description: "Aluguel março", Amount: decimal.NewFromInt(40), Category: "Aluguel", ExpenseDate: date})
		if !e.Signed().Equal(decimal.NewFromInt(-40)) {
			t.Errorf("valor com sinal = %s, esperado -40", e.Signed())
		}
	})

	t.Run("validações", func(t *testing.T) {
		cases := []struct {
			in   Input
			want error
		}{
			{Input{Amount: decimal.NewFromInt(1), Category: "Outros", ExpenseDate: date}, ErrEmptyDescription},
			{Input{Description: "x", Amount: decimal.Zero, Category: "Outros", ExpenseDate: date}, ErrInvalidAmount},
			{Input{Description: "x", Amount: decimal.NewFromInt(1), Category: "Lazer", ExpenseDate: date}, ErrInvalidCategory},
			{Input{Description: "x", Amount: decimal.NewFromInt(1), Category: "Outros"}, ErrMissingDate},
		}
		for _, tc := range cases {
			if _, err := NewExpense(tc.in); !errors.Is(err, tc.want) {
				t.Errorf("esperava %v, obtido %v", tc.want, err)
			}
		}
	})
}

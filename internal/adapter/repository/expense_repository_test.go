package repository

import (
	"reflect"
	"testing"
	"time"

	"github.com/hugohenrick/gestao-varejo/internal/domain/expense"
	"github.com/shopspring/decimal"
)

// fakeRow copia values nos destinos na ordem das colunas
type fakeRow []any

func (r fakeRow) Scan(dest ...any) error {
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(r[i]))
	}
	return nil
}

func TestScanExpenseDirection(t *testing.T) {
	tenantID := "T1"
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		category string
		want     expense.Direction
	}{
		{"Entrada de Caixa", expense.Inflow},
		{"Aluguel", expense.Outflow},
		{"Outros", expense.Outflow},
	}
	for _, c := range cases {
		t.Run(c.category, func(t *testing.T) {
			row := fakeRow{"E1", "movimento", decimal.NewFromInt(50), c.category, now, &tenantID, now}
			e, err := scanExpense(row)
			if err != nil {
				t.Fatalf("erro inesperado: %v", err)
			}
			if e.Direction != c.want {
				t.Errorf("direção = %s, esperado %s", e.Direction, c.want)
			}
			if len(row) != len(expenseColumns) {
				t.Errorf("colunas = %d, linha = %d", len(expenseColumns), len(row))
			}
		})
	}
}

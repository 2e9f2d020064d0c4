package order

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewOrderTotals(t *testing.T) {
	o, err := NewOrder(Input{
		CustomerID: "C1",
		OrderDate:  time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Items: []ItemInput{
			{Description: "Farinha", Quantity: 2, CostPrice: decimal.RequireFromString("4.50")},
			{Description: "Ovos", Quantity: 12, CostPrice: decimal.RequireFromString("0.75")},
		},
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !o.TotalAmount.Equal(decimal.RequireFromString("18")) {
		t.Errorf("total = %s, esperado 18", o.TotalAmount)
	}
	for _, it := range o.Items {
		if it.OrderID != o.ID {
			t.Errorf("item %s não aponta para o pedido", it.ID)
		}
	}
}

func TestReplaceItems(t *testing.T) {
	date := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	o, _ := NewOrder(Input{CustomerID: "C1", OrderDate: date, Items: []ItemInput{
		{Description: "A", Quantity: 1, CostPrice: decimal.NewFromInt(10)},
	}})
	firstItem := o.Items[0].ID

	err := o.Replace(Input{CustomerID: "C1", OrderDate: date, Items: []ItemInput{
		{Description: "B", Quantity: 3, CostPrice: decimal.NewFromInt(2)},
		{Description: "C", Quantity: 1, CostPrice: decimal.NewFromInt(1)},
	}})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(o.Items) != 2 || o.Items[0].ID == firstItem {
		t.Errorf("itens deveriam ser substituídos: %+v", o.Items)
	}
	if !o.TotalAmount.Equal(decimal.NewFromInt(7)) {
		t.Errorf("total = %s, esperado 7", o.TotalAmount)
	}
}

func TestOrderValidation(t *testing.T) {
	date := time.Now()
	cases := []struct {
		name string
		in   Input
		want error
	}{
		{"sem cliente", Input{OrderDate: date, Items: []ItemInput{{Description: "A", Quantity: 1}}}, ErrMissingCustomer},
		{"sem itens", Input{CustomerID: "C1", OrderDate: date}, ErrNoItems},
		{"quantidade zero", Input{CustomerID: "C1", OrderDate: date, Items: []ItemInput{{Description: "A"}}}, ErrInvalidItem},
		{"sem data", Input{CustomerID: "C1", Items: []ItemInput{{Description: "A", Quantity: 1}}}, ErrMissingDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewOrder(tc.in); !errors.Is(err, tc.want) {
				t.Errorf("esperava %v, obtido %v", tc.want, err)
			}
		})
	}
}

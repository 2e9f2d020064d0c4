package productorder

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseStatus(t *testing.T) {
	for _, st := range Statuses {
		if got, err := ParseStatus(string(st)); err != nil || got != st {
			t.Errorf("ParseStatus(%q) = %q, %v", st, got, err)
		}
	}
	if _, err := ParseStatus("Entregue"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("esperava ErrInvalidStatus, obtido %v", err)
	}
}

func TestNewRequestDefaultsToPending(t *testing.T) {
	r, err := NewRequest(Input{ProductID: "P1", CustomerID: "C1", Quantity: 2, RequestDate: time.Now()})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if r.Status != StatusPending {
		t.Errorf("status = %q, esperado Pendente", r.Status)
	}
}

func TestEffectivePrices(t *testing.T) {
	override := decimal.NewFromInt(30)
	r := &Request{SalePrice: &override}

	cost, sale := r.EffectivePrices(decimal.NewFromInt(8), decimal.NewFromInt(20))
	if !cost.Equal(decimal.NewFromInt(8)) {
		t.Errorf("custo = %s, esperado o do produto", cost)
	}
	if !sale.Equal(override) {
		t.Errorf("venda = %s, esperado o da encomenda", sale)
	}
}

package product

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewProduct(t *testing.T) {
	p, err := NewProduct(Details{
		Name:      "Bolo de cenoura",
		CostPrice: decimal.RequireFromString("12.50"),
		SalePrice: decimal.RequireFromString("25.00"),
		Quantity:  4,
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if p.Version != 1 {
		t.Errorf("versão inicial = %d, esperado 1", p.Version)
	}
	if !p.StockValue().Equal(decimal.NewFromInt(50)) {
		t.Errorf("valor em estoque = %s, esperado 50", p.StockValue())
	}
}

func TestProductValidation(t *testing.T) {
	cases := []struct {
		name string
		d    Details
		want error
	}{
		{"nome vazio", Details{Name: " "}, ErrEmptyName},
		{"preço negativo", Details{Name: "X", SalePrice: decimal.NewFromInt(-1)}, ErrNegativePrice},
		{"quantidade negativa", Details{Name: "X", Quantity: -1}, ErrNegativeQuantity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewProduct(tc.d); !errors.Is(err, tc.want) {
				t.Errorf("esperava %v, obtido %v", tc.want, err)
			}
		})
	}
}

func TestApplyClearsEmptyCategory(t *testing.T) {
	empty := ""
	p, err := NewProduct(Details{Name: "X", CategoryID: &empty})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if p.CategoryID != nil {
		t.Error("categoria vazia deveria virar nil")
	}
}

func TestParseCatalog(t *testing.T) {
	for _, s := range []string{"", "stock", "order"} {
		if _, err := ParseCatalog(s); err != nil {
			t.Errorf("ParseCatalog(%q) erro inesperado: %v", s, err)
		}
	}
	if _, err := ParseCatalog("todos"); !errors.Is(err, ErrInvalidCatalog) {
		t.Errorf("esperava ErrInvalidCatalog, obtido %v", err)
	}
}

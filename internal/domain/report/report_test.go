package report

import (
	"testing"
	"time"

	"github.com/hugohenrick/gestao-varejo/internal/domain/expense"
	"github.com/hugohenrick/gestao-varejo/internal/domain/product"
	"github.com/hugohenrick/gestao-varejo/internal/domain/sale"
	"github.com/shopspring/decimal"
)

var cutoff = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func newExpense(t *testing.T, amount int64, category expense.Category, date time.Time) *expense.Expense {
	t.Helper()
	e, err := expense.NewExpense(expense.Input{
		Description: string(category),
		Amount:      dec(amount),
		Category:    string(category),
		ExpenseDate: date,
	})
	if err != nil {
		t.Fatalf("erro ao criar despesa: %v", err)
	}
	return e
}

func TestCashBalance(t *testing.T) {
	after := cutoff.AddDate(0, 1, 0)

	t.Run("entrada de caixa soma e demais despesas subtraem", func(t *testing.T) {
		sales := []*sale.Sale{{TotalPrice: dec(500), SaleDate: after, Paid: true}}
		expenses := []*expense.Expense{
			newExpense(t, 100, expense.CategoryCashIn, after),
			newExpense(t, 40, expense.CategoryOther, after),
		}

		got := CashBalance(sales, expenses, cutoff)
		if !got.Equal(dec(560)) {
			t.Errorf("saldo = %s, esperado 560", got)
		}
	})

	t.Run("ignora vendas não pagas e movimentos antes do corte", func(t *testing.T) {
		before := cutoff.AddDate(0, 0, -1)
		sales := []*sale.Sale{
			{TotalPrice: dec(500), SaleDate: after, Paid: true},
			{TotalPrice: dec(70), SaleDate: after, Paid: false},
			{TotalPrice: dec(90), SaleDate: before, Paid: true},
		}
		expenses := []*expense.Expense{newExpense(t, 40, expense.CategoryRent, before)}

		got := CashBalance(sales, expenses, cutoff)
		if !got.Equal(dec(500)) {
			t.Errorf("saldo = %s, esperado 500", got)
		}
	})
}

type ranked struct {
	name  string
	value int64
}

func TestTopNIsStable(t *testing.T) {
	rows := []ranked{{"a", 5}, {"b", 10}, {"c", 5}, {"d", 10}, {"e", 1}}

	got := TopN(rows, 4, func(r ranked) decimal.Decimal { return dec(r.value) })

	want := []string{"b", "d", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("tamanho = %d, esperado %d", len(got), len(want))
	}
	for i, r := range got {
		if r.name != want[i] {
			t.Errorf("posição %d = %s, esperado %s", i, r.name, want[i])
		}
	}
	if rows[0].name != "a" {
		t.Error("TopN não deve alterar a entrada")
	}
}

func TestGroupSumKeepsFirstSeenOrder(t *testing.T) {
	rows := []ranked{{"x", 1}, {"y", 2}, {"x", 3}}
	groups := GroupSum(rows, func(r ranked) string { return r.name }, func(r ranked) decimal.Decimal { return dec(r.value) })

	if len(groups) != 2 || groups[0].Key != "x" || !groups[0].Total.Equal(dec(4)) || groups[1].Key != "y" {
		t.Errorf("grupos inesperados: %+v", groups)
	}
}

func TestBucketByPeriod(t *testing.T) {
	type row struct {
		at    time.Time
		value int64
	}
	rows := []row{
		{time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), 5},
		{time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), 7},
		{time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), 1},
	}
	groups := BucketByPeriod(rows, Month, func(r row) time.Time { return r.at }, func(r row) decimal.Decimal { return dec(r.value) })

	if len(groups) != 2 {
		t.Fatalf("grupos = %+v", groups)
	}
	if groups[0].Key != "2024-02" || !groups[0].Total.Equal(dec(7)) {
		t.Errorf("primeiro grupo inesperado: %+v", groups[0])
	}
	if groups[1].Key != "2024-03" || !groups[1].Total.Equal(dec(6)) {
		t.Errorf("segundo grupo inesperado: %+v", groups[1])
	}

	daily := BucketByPeriod(rows, Day, func(r row) time.Time { return r.at }, func(r row) decimal.Decimal { return dec(r.value) })
	if len(daily) != 3 || daily[0].Key != "2024-02-01" {
		t.Errorf("grupos diários inesperados: %+v", daily)
	}
}

func TestStockValueExcludesOrderProducts(t *testing.T) {
	products := []*product.Product{
		{CostPrice: dec(2), Quantity: 10},
		{CostPrice: dec(50), Quantity: 3, IsOrderProduct: true},
	}
	if got := StockValue(products); !got.Equal(dec(20)) {
		t.Errorf("valor do estoque = %s, esperado 20", got)
	}
}

func TestBuildSummary(t *testing.T) {
	day := cutoff.AddDate(0, 0, 5)
	pao, leite := "Pão", "Leite"
	sales := []*sale.View{
		{Sale: sale.Sale{Quantity: 2, TotalPrice: dec(10), SaleDate: day, Paid: true}, ProductName: &pao, CustomerName: "Ana"},
		{Sale: sale.Sale{Quantity: 5, TotalPrice: dec(20), SaleDate: day, Paid: true}, ProductName: &leite, CustomerName: "Bia"},
		{Sale: sale.Sale{Quantity: 4, TotalPrice: dec(30), SaleDate: day, Paid: false}, ProductName: &pao, CustomerName: "Ana"},
	}
	products := []*product.Product{
		{Name: "Pão", CostPrice: dec(1), Quantity: 2},
		{Name: "Leite", CostPrice: dec(3), Quantity: 20},
	}
	expenses := []*expense.Expense{newExpense(t, 15, expense.CategorySuppliers, day)}

	s := BuildSummary(products, sales, expenses, Options{Since: cutoff, TopN: 1, LowStockLimit: 5})

	if !s.Revenue.Equal(dec(60)) || s.SalesCount != 3 {
		t.Errorf("receita = %s vendas = %d", s.Revenue, s.SalesCount)
	}
	if !s.Balance.Equal(dec(15)) {
		t.Errorf("saldo = %s, esperado 15", s.Balance)
	}
	if !s.StockValue.Equal(dec(62)) {
		t.Errorf("valor do estoque = %s, esperado 62", s.StockValue)
	}
	if len(s.TopProducts) != 1 || s.TopProducts[0].Key != "Pão" {
		t.Errorf("top produtos inesperado: %+v", s.TopProducts)
	}
	if len(s.TopCustomers) != 1 || s.TopCustomers[0].Key != "Ana" {
		t.Errorf("top clientes inesperado: %+v", s.TopCustomers)
	}
	if len(s.LowStock) != 1 || s.LowStock[0] != "Pão" {
		t.Errorf("estoque baixo inesperado: %v", s.LowStock)
	}
}

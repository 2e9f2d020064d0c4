package report

import (
	"time"

	"github.com/hugohenrick/gestao-varejo/internal/domain/expense"
	"github.com/hugohenrick/gestao-varejo/internal/domain/product"
	"github.com/hugohenrick/gestao-varejo/internal/domain/sale"
	"github.com/shopspring/decimal"
)

// CashBalance calcula o saldo de caixa a partir de cutoff.
// Entram vendas pagas e entradas de caixa; saem as demais despesas.
func CashBalance(sales []*sale.Sale, expenses []*expense.Expense, cutoff time.Time) decimal.Decimal {
	balance := decimal.Zero
	for _, s := range sales {
		if s.Paid && !s.SaleDate.Before(cutoff) {
			balance = balance.Add(s.TotalPrice)
		}
	}
	for _, e := range expenses {
		if !e.ExpenseDate.Before(cutoff) {
			balance = balance.Add(e.Signed())
		}
	}
	return balance
}

// StockValue soma custo × quantidade dos produtos de estoque
func StockValue(products []*product.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		if p.IsOrderProduct {
			continue
		}
		total = total.Add(p.StockValue())
	}
	return total
}

// Summary é o resumo exibido no painel
type Summary struct {
	Revenue      decimal.Decimal `json:"revenue"`
	Outflows     decimal.Decimal `json:"outflows"`
	Inflows      decimal.Decimal `json:"inflows"`
	Balance      decimal.Decimal `json:"balance"`
	StockValue   decimal.Decimal `json:"stock_value"`
	SalesCount   int             `json:"sales_count"`
	TopProducts  []Group         `json:"top_products"`
	TopCustomers []Group         `json:"top_customers"`
	MonthlySales []Group         `json:"monthly_sales"`
	LowStock     []string        `json:"low_stock"`
	Since        time.Time       `json:"since"`
}

// Options controla o cálculo do resumo
type Options struct {
	Since         time.Time
	TopN          int
	LowStockLimit int
}

// BuildSummary agrega vendas, despesas e produtos já carregados
func BuildSummary(products []*product.Product, sales []*sale.View, expenses []*expense.Expense, opts Options) Summary {
	recent := make([]*sale.View, 0, len(sales))
	plain := make([]*sale.Sale, 0, len(sales))
	for _, s := range sales {
		plain = append(plain, &s.Sale)
		if !s.SaleDate.Before(opts.Since) {
			recent = append(recent, s)
		}
	}

	var inflows, outflows decimal.Decimal
	for _, e := range expenses {
		if e.ExpenseDate.Before(opts.Since) {
			continue
		}
		if e.Direction == expense.Inflow {
			inflows = inflows.Add(e.Amount)
		} else {
			outflows = outflows.Add(e.Amount)
		}
	}

	byProduct := GroupSum(recent, productName, func(s *sale.View) decimal.Decimal {
		return decimal.NewFromInt(int64(s.Quantity))
	})
	byCustomer := GroupSum(recent, func(s *sale.View) string { return s.CustomerName }, saleTotal)

	var lowStock []string
	for _, p := range products {
		if !p.IsOrderProduct && p.Quantity <= opts.LowStockLimit {
			lowStock = append(lowStock, p.Name)
		}
	}

	return Summary{
		Revenue:    Sum(recent, saleTotal),
		Outflows:   outflows,
		Inflows:    inflows,
		Balance:    CashBalance(plain, expenses, opts.Since),
		StockValue: StockValue(products),
		SalesCount: len(recent),
		TopProducts: TopN(byProduct, opts.TopN, func(g Group) decimal.Decimal {
			return g.Total
		}),
		TopCustomers: TopN(byCustomer, opts.TopN, func(g Group) decimal.Decimal {
			return g.Total
		}),
		MonthlySales: BucketByPeriod(recent, Month, func(s *sale.View) time.Time { return s.SaleDate }, saleTotal),
		LowStock:     lowStock,
		Since:        opts.Since,
	}
}

func saleTotal(s *sale.View) decimal.Decimal { return s.TotalPrice }

func productName(s *sale.View) string {
	if s.ProductName == nil {
		return "Produto excluído"
	}
	return *s.ProductName
}

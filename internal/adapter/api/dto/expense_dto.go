package dto

import (
	"time"

	"github.com/hugohenrick/gestao-varejo/internal/domain/expense"
	"github.com/shopspring/decimal"
)

// ExpenseRequest representa a requisição de despesa ou entrada de caixa
type ExpenseRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string"`
	Category    string          `json:"category" binding:"required" example:"Aluguel"`
	ExpenseDate string          `json:"expense_date" binding:"required" example:"2024-03-15"`
	TenantID    *string         `json:"tenant_id"`
}

// Input converte a requisição nos dados do domínio
func (r ExpenseRequest) Input() (expense.Input, error) {
	date, err := ParseDate(r.ExpenseDate)
	if err != nil {
		return expense.Input{}, err
	}
	return expense.Input{
		Description: r.Description,
		Amount:      r.Amount,
		Category:    r.Category,
		ExpenseDate: date,
	}, nil
}

// ExpenseResponse representa a resposta de despesa
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string"`
	Category    string          `json:"category"`
	Direction   string          `json:"direction"`
	ExpenseDate time.Time       `json:"expense_date"`
	TenantID    *string         `json:"tenant_id"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToExpenseResponse converte uma despesa do domínio para DTO
func ToExpenseResponse(e *expense.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    string(e.Category),
		Direction:   string(e.Direction),
		ExpenseDate: e.ExpenseDate,
		TenantID:    e.TenantID,
		CreatedAt:   e.CreatedAt,
	}
}

// ToExpenseListResponse converte uma lista de despesas para DTO paginado
func ToExpenseListResponse(expenses []*expense.Expense, totalCount int, p Pagination) ListResponse[ExpenseResponse] {
	return NewListResponse(mapSlice(expenses, ToExpenseResponse), totalCount, p)
}

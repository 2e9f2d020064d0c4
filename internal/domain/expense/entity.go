package expense

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/gestao-varejo/pkg/domain"
	"github.com/shopspring/decimal"
)

// Category classifica uma movimentação de caixa
type Category string

const (
	CategoryRent        Category = "Aluguel"
	CategorySuppliers   Category = "Fornecedores"
	CategorySalaries    Category = "Salários"
	CategoryTaxes       Category = "Impostos"
	CategoryMarketing   Category = "Marketing"
	CategoryMaintenance Category = "Manutenção"
	CategoryOther       Category = "Outros"
	CategoryCashIn      Category = "Entrada de Caixa"
)

// Categories lista as categorias aceitas
var Categories = []Category{
	CategoryRent, CategorySuppliers, CategorySalaries, CategoryTaxes,
	CategoryMarketing, CategoryMaintenance, CategoryOther, CategoryCashIn,
}

// Direction indica se o valor entra ou sai do caixa
type Direction string

const (
	Inflow  Direction = "entrada"
	Outflow Direction = "saida"
)

var (
	ErrEmptyDescription = domain.Validation("descrição não pode ser vazia")
	ErrInvalidAmount    = domain.Validation("valor deve ser maior que zero")
	ErrInvalidCategory  = domain.Validation("categoria inválida")
	ErrMissingDate      = domain.Validation("data da despesa é obrigatória")
	ErrExpenseNotFound  = domain.NewError(domain.ErrNotFound, "despesa não encontrada")
)

// ParseCategory valida uma categoria informada pelo cliente
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", ErrInvalidCategory
}

// DirectionOf retorna a direção de uma categoria.
// Apenas Entrada de Caixa é entrada; as demais são saídas.
func DirectionOf(c Category) Direction {
	if c == CategoryCashIn {
		return Inflow
	}
	return Outflow
}

// Expense é uma movimentação de caixa que não é venda
type Expense struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    Category        `json:"category"`
	Direction   Direction       `json:"direction"`
	ExpenseDate time.Time       `json:"expense_date"`
	TenantID    *string         `json:"tenant_id"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Input são os dados editáveis de uma despesa
type Input struct {
	Description string
	Amount      decimal.Decimal
	Category    string
	ExpenseDate time.Time
}

// NewExpense cria uma despesa
func NewExpense(in Input) (*Expense, error) {
	e := &Expense{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
	}
	if err := e.Apply(in); err != nil {
		return nil, err
	}
	return e, nil
}

// Apply valida e aplica os dados editáveis, derivando a direção da categoria
func (e *Expense) Apply(in Input) error {
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return ErrEmptyDescription
	}
	if !in.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	category, err := ParseCategory(in.Category)
	if err != nil {
		return err
	}
	if in.ExpenseDate.IsZero() {
		return ErrMissingDate
	}

	e.Description = desc
	e.Amount = in.Amount
	e.Category = category
	e.Direction = DirectionOf(category)
	e.ExpenseDate = in.ExpenseDate
	return nil
}

// Signed retorna o valor com sinal: positivo para entradas
func (e *Expense) Signed() decimal.Decimal {
	if e.Direction == Inflow {
		return e.Amount
	}
	return e.Amount.Neg()
}

// ListFilter restringe a listagem de despesas
type ListFilter struct {
	From     *time.Time
	To       *time.Time
	Category Category
}

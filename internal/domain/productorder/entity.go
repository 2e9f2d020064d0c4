package productorder

import (
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/gestao-varejo/pkg/domain"
	"github.com/shopspring/decimal"
)

// Status representa o andamento de uma encomenda
type Status string

const (
	StatusPending    Status = "Pendente"
	StatusInProgress Status = "Em Produção"
	StatusCompleted  Status = "Concluída"
	StatusCancelled  Status = "Cancelada"
)

var (
	ErrInvalidStatus   = domain.Validation("status inválido")
	ErrMissingProduct  = domain.Validation("produto é obrigatório")
	ErrMissingCustomer = domain.Validation("cliente é obrigatório")
	ErrInvalidQuantity = domain.Validation("quantidade deve ser maior que zero")
	ErrNegativePrice   = domain.Validation("preços não podem ser negativos")
	ErrMissingDate     = domain.Validation("data da encomenda é obrigatória")
	ErrRequestNotFound = domain.NewError(domain.ErrNotFound, "encomenda não encontrada")
)

// Statuses lista os status válidos na ordem do fluxo
var Statuses = []Status{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled}

// ParseStatus valida um status informado pelo cliente
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", ErrInvalidStatus
}

// Request é a encomenda de um produto feita por um cliente.
// Preços nulos usam os valores do produto.
type Request struct {
	ID          string           `json:"id"`
	ProductID   string           `json:"product_id"`
	CustomerID  string           `json:"customer_id"`
	Quantity    int              `json:"quantity"`
	CostPrice   *decimal.Decimal `json:"cost_price"`
	SalePrice   *decimal.Decimal `json:"sale_price"`
	Status      Status           `json:"status"`
	RequestDate time.Time        `json:"request_date"`
	Notes       *string          `json:"notes,omitempty"`
	TenantID    *string          `json:"tenant_id"`
	CreatedAt   time.Time        `json:"created_at"`
}

// Input são os dados editáveis de uma encomenda
type Input struct {
	ProductID   string
	CustomerID  string
	Quantity    int
	CostPrice   *decimal.Decimal
	SalePrice   *decimal.Decimal
	Status      string
	RequestDate time.Time
	Notes       *string
}

// View inclui nomes e preços efetivos para listagens
type View struct {
	Request
	ProductName        string          `json:"product_name"`
	CustomerName       string          `json:"customer_name"`
	EffectiveCostPrice decimal.Decimal `json:"effective_cost_price"`
	EffectiveSalePrice decimal.Decimal `json:"effective_sale_price"`
}

// NewRequest cria uma encomenda; status vazio vira Pendente
func NewRequest(in Input) (*Request, error) {
	r := &Request{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
	}
	if in.Status == "" {
		in.Status = string(StatusPending)
	}
	if err := r.Apply(in); err != nil {
		return nil, err
	}
	return r, nil
}

// Apply valida e aplica os dados editáveis
func (r *Request) Apply(in Input) error {
	if in.ProductID == "" {
		return ErrMissingProduct
	}
	if in.CustomerID == "" {
		return ErrMissingCustomer
	}
	if in.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if (in.CostPrice != nil && in.CostPrice.IsNegative()) || (in.SalePrice != nil && in.SalePrice.IsNegative()) {
		return ErrNegativePrice
	}
	if in.RequestDate.IsZero() {
		return ErrMissingDate
	}
	status, err := ParseStatus(in.Status)
	if err != nil {
		return err
	}

	r.ProductID = in.ProductID
	r.CustomerID = in.CustomerID
	r.Quantity = in.Quantity
	r.CostPrice = in.CostPrice
	r.SalePrice = in.SalePrice
	r.Status = status
	r.RequestDate = in.RequestDate
	r.Notes = in.Notes
	return nil
}

// EffectivePrices retorna os preços da encomenda ou, na falta, os do produto
func (r *Request) EffectivePrices(productCost, productSale decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	cost, sale := productCost, productSale
	if r.CostPrice != nil {
		cost = *r.CostPrice
	}
	if r.SalePrice != nil {
		sale = *r.SalePrice
	}
	return cost, sale
}

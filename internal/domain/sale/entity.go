package sale

import (
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/gestao-varejo/pkg/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrInsufficientStock = domain.NewError(domain.ErrUnprocessable, "Estoque insuficiente")
	ErrSaleNotFound      = domain.NewError(domain.ErrNotFound, "venda não encontrada")
	ErrMissingCustomer   = domain.Validation("cliente é obrigatório")
	ErrMissingProduct    = domain.Validation("produto é obrigatório")
	ErrInvalidQuantity   = domain.Validation("quantidade deve ser maior que zero")
	ErrNegativePrice     = domain.Validation("preço unitário não pode ser negativo")
	ErrMissingDate       = domain.Validation("data da venda é obrigatória")
)

// Sale registra a venda de um produto a um cliente
type Sale struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	ProductID  *string         `json:"product_id"` // nil quando o produto foi excluído
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
	SaleDate   time.Time       `json:"sale_date"`
	Paid       bool            `json:"paid"`
	TenantID   *string         `json:"tenant_id"`
	CreatedAt  time.Time       `json:"created_at"`
}

// View é a venda com os nomes de produto e cliente para listagens
type View struct {
	Sale
	ProductName  *string `json:"product_name"`
	CustomerName string  `json:"customer_name"`
}

// CreateInput são os dados de uma nova venda
type CreateInput struct {
	CustomerID string
	ProductID  string
	Quantity   int
	UnitPrice  decimal.Decimal
	SaleDate   time.Time
	Paid       bool
}

// Validate verifica os campos obrigatórios
func (in CreateInput) Validate() error {
	if in.CustomerID == "" {
		return ErrMissingCustomer
	}
	if in.ProductID == "" {
		return ErrMissingProduct
	}
	return validateLine(in.Quantity, in.UnitPrice, in.SaleDate)
}

// UpdateInput são os dados editáveis de uma venda existente
type UpdateInput struct {
	CustomerID string
	Quantity   int
	UnitPrice  decimal.Decimal
	SaleDate   time.Time
	Paid       bool
}

// Validate verifica os campos obrigatórios
func (in UpdateInput) Validate() error {
	if in.CustomerID == "" {
		return ErrMissingCustomer
	}
	return validateLine(in.Quantity, in.UnitPrice, in.SaleDate)
}

func validateLine(quantity int, unitPrice decimal.Decimal, date time.Time) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if unitPrice.IsNegative() {
		return ErrNegativePrice
	}
	if date.IsZero() {
		return ErrMissingDate
	}
	return nil
}

// Total calcula quantidade × preço unitário
func Total(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// newSale monta uma venda a partir de dados já validados
func newSale(in CreateInput, tenantID *string) *Sale {
	productID := in.ProductID
	return &Sale{
		ID:         uuid.New().String(),
		CustomerID: in.CustomerID,
		ProductID:  &productID,
		Quantity:   in.Quantity,
		UnitPrice:  in.UnitPrice,
		TotalPrice: Total(in.Quantity, in.UnitPrice),
		SaleDate:   in.SaleDate,
		Paid:       in.Paid,
		TenantID:   tenantID,
		CreatedAt:  time.Now(),
	}
}

// apply aplica uma edição e recalcula o total
func (s *Sale) apply(in UpdateInput) {
	s.CustomerID = in.CustomerID
	s.Quantity = in.Quantity
	s.UnitPrice = in.UnitPrice
	s.TotalPrice = Total(in.Quantity, in.UnitPrice)
	s.SaleDate = in.SaleDate
	s.Paid = in.Paid
}

// Reason identifica a operação que movimentou o estoque
type Reason string

const (
	ReasonCreated Reason = "sale_created"
	ReasonUpdated Reason = "sale_updated"
	ReasonDeleted Reason = "sale_deleted"
)

// Movement descreve uma alteração de estoque causada por uma venda
type Movement struct {
	SaleID     string    `json:"sale_id"`
	ProductID  string    `json:"product_id"`
	TenantID   *string   `json:"tenant_id"`
	Delta      int       `json:"delta"`
	Reason     Reason    `json:"reason"`
	Username   string    `json:"username"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ListFilter restringe a listagem de vendas
type ListFilter struct {
	From       *time.Time
	To         *time.Time
	CustomerID string
	ProductID  string
}

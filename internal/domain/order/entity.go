package order

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/gestao-varejo/pkg/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrMissingCustomer = domain.Validation("cliente é obrigatório")
	ErrMissingDate     = domain.Validation("data do pedido é obrigatória")
	ErrNoItems         = domain.Validation("o pedido precisa de pelo menos um item")
	ErrInvalidItem     = domain.Validation("itens precisam de descrição ou produto, quantidade positiva e custo não negativo")
	ErrOrderNotFound   = domain.NewError(domain.ErrNotFound, "pedido não encontrado")
)

// Order é um pedido de compra de um cliente com seus itens
type Order struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customer_id"`
	OrderDate   time.Time       `json:"order_date"`
	Notes       *string         `json:"notes,omitempty"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	TenantID    *string         `json:"tenant_id"`
	Items       []Item          `json:"items"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Item é uma linha do pedido
type Item struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"order_id"`
	ProductID   *string         `json:"product_id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// ItemInput são os dados de um item informado pelo cliente
type ItemInput struct {
	ProductID   *string
	Description string
	Quantity    int
	CostPrice   decimal.Decimal
}

// Input são os dados editáveis de um pedido
type Input struct {
	CustomerID string
	OrderDate  time.Time
	Notes      *string
	Items      []ItemInput
}

// View inclui o nome do cliente para listagens
type View struct {
	Order
	CustomerName string `json:"customer_name"`
}

// NewOrder cria um pedido calculando subtotais e total
func NewOrder(in Input) (*Order, error) {
	o := &Order{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
	}
	if err := o.Replace(in); err != nil {
		return nil, err
	}
	return o, nil
}

// Replace substitui cabeçalho e todos os itens do pedido
func (o *Order) Replace(in Input) error {
	if in.CustomerID == "" {
		return ErrMissingCustomer
	}
	if in.OrderDate.IsZero() {
		return ErrMissingDate
	}
	if len(in.Items) == 0 {
		return ErrNoItems
	}

	items := make([]Item, 0, len(in.Items))
	for _, it := range in.Items {
		productID := it.ProductID
		if productID != nil && *productID == "" {
			productID = nil
		}
		desc := strings.TrimSpace(it.Description)
		if it.Quantity <= 0 || it.CostPrice.IsNegative() || (desc == "" && productID == nil) {
			return ErrInvalidItem
		}
		items = append(items, Item{
			ID:          uuid.New().String(),
			OrderID:     o.ID,
			ProductID:   productID,
			Description: desc,
			Quantity:    it.Quantity,
			CostPrice:   it.CostPrice,
			Subtotal:    it.CostPrice.Mul(decimal.NewFromInt(int64(it.Quantity))),
		})
	}

	o.CustomerID = in.CustomerID
	o.OrderDate = in.OrderDate
	o.Notes = in.Notes
	o.Items = items
	o.TotalAmount = Total(items)
	return nil
}

// Total soma os subtotais dos itens
func Total(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal)
	}
	return total
}

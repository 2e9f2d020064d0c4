package dto

import (
	"time"

	"github.com/hugohenrick/gestao-varejo/internal/domain/order"
	"github.com/shopspring/decimal"
)

// OrderItemRequest representa um item do pedido
type OrderItemRequest struct {
	ProductID   *string         `json:"product_id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	CostPrice   decimal.Decimal `json:"cost_price" swaggertype:"string"`
}

// OrderRequest representa a requisição de pedido com todos os itens
type OrderRequest struct {
	CustomerID string             `json:"customer_id" binding:"required"`
	OrderDate  string             `json:"order_date" binding:"required" example:"2024-03-15"`
	Notes      *string            `json:"notes"`
	Items      []OrderItemRequest `json:"items"`
	TenantID   *string            `json:"tenant_id"`
}

// Input converte a requisição nos dados do domínio
func (r OrderRequest) Input() (order.Input, error) {
	date, err := ParseDate(r.OrderDate)
	if err != nil {
		return order.Input{}, err
	}
	items := make([]order.ItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, order.ItemInput{
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    it.Quantity,
			CostPrice:   it.CostPrice,
		})
	}
	return order.Input{
		CustomerID: r.CustomerID,
		OrderDate:  date,
		Notes:      r.Notes,
		Items:      items,
	}, nil
}

// OrderItemResponse representa um item na resposta
type OrderItemResponse struct {
	ID          string          `json:"id"`
	ProductID   *string         `json:"product_id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	CostPrice   decimal.Decimal `json:"cost_price" swaggertype:"string"`
	Subtotal    decimal.Decimal `json:"subtotal" swaggertype:"string"`
}

// OrderResponse representa a resposta de pedido
type OrderResponse struct {
	ID           string              `json:"id"`
	CustomerID   string              `json:"customer_id"`
	CustomerName string              `json:"customer_name,omitempty"`
	OrderDate    time.Time           `json:"order_date"`
	Notes        *string             `json:"notes,omitempty"`
	TotalAmount  decimal.Decimal     `json:"total_amount" swaggertype:"string"`
	Items        []OrderItemResponse `json:"items"`
	TenantID     *string             `json:"tenant_id"`
	CreatedAt    time.Time           `json:"created_at"`
}

func toOrderItemResponse(it order.Item) OrderItemResponse {
	return OrderItemResponse{
		ID:          it.ID,
		ProductID:   it.ProductID,
		Description: it.Description,
		Quantity:    it.Quantity,
		CostPrice:   it.CostPrice,
		Subtotal:    it.Subtotal,
	}
}

// ToOrderResponse converte um pedido do domínio para DTO
func ToOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		OrderDate:   o.OrderDate,
		Notes:       o.Notes,
		TotalAmount: o.TotalAmount,
		Items:       mapSlice(o.Items, toOrderItemResponse),
		TenantID:    o.TenantID,
		CreatedAt:   o.CreatedAt,
	}
}

// ToOrderViewResponse inclui o nome do cliente
func ToOrderViewResponse(v *order.View) OrderResponse {
	resp := ToOrderResponse(&v.Order)
	resp.CustomerName = v.CustomerName
	return resp
}

// ToOrderListResponse converte uma lista de pedidos para DTO paginado
func ToOrderListResponse(views []*order.View, totalCount int, p Pagination) ListResponse[OrderResponse] {
	return NewListResponse(mapSlice(views, ToOrderViewResponse), totalCount, p)
}

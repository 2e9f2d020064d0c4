package dto

import (
	"time"

	"github.com/hugohenrick/gestao-varejo/internal/domain/productorder"
	"github.com/shopspring/decimal"
)

// ProductOrderRequest representa a requisição de encomenda.
// Preços omitidos usam os valores do produto.
type ProductOrderRequest struct {
	ProductID   string           `json:"product_id" binding:"required"`
	CustomerID  string           `json:"customer_id" binding:"required"`
	Quantity    int              `json:"quantity"`
	CostPrice   *decimal.Decimal `json:"cost_price" swaggertype:"string"`
	SalePrice   *decimal.Decimal `json:"sale_price" swaggertype:"string"`
	Status      string           `json:"status" example:"Pendente"`
	RequestDate string           `json:"request_date" binding:"required" example:"2024-03-15"`
	Notes       *string          `json:"notes"`
	TenantID    *string          `json:"tenant_id"`
}

// Input converte a requisição nos dados do domínio
func (r ProductOrderRequest) Input() (productorder.Input, error) {
	date, err := ParseDate(r.RequestDate)
	if err != nil {
		return productorder.Input{}, err
	}
	return productorder.Input{
		ProductID:   r.ProductID,
		CustomerID:  r.CustomerID,
		Quantity:    r.Quantity,
		CostPrice:   r.CostPrice,
		SalePrice:   r.SalePrice,
		Status:      r.Status,
		RequestDate: date,
		Notes:       r.Notes,
	}, nil
}

// ProductOrderStatusRequest altera apenas o status de uma encomenda
type ProductOrderStatusRequest struct {
	Status string `json:"status" binding:"required" example:"Em Produção"`
}

// ProductOrderResponse representa a resposta de encomenda
type ProductOrderResponse struct {
	ID                 string           `json:"id"`
	ProductID          string           `json:"product_id"`
	ProductName        string           `json:"product_name,omitempty"`
	CustomerID         string           `json:"customer_id"`
	CustomerName       string           `json:"customer_name,omitempty"`
	Quantity           int              `json:"quantity"`
	CostPrice          *decimal.Decimal `json:"cost_price" swaggertype:"string"`
	SalePrice          *decimal.Decimal `json:"sale_price" swaggertype:"string"`
	EffectiveCostPrice *decimal.Decimal `json:"effective_cost_price,omitempty" swaggertype:"string"`
	EffectiveSalePrice *decimal.Decimal `json:"effective_sale_price,omitempty" swaggertype:"string"`
	Status             string           `json:"status"`
	RequestDate        time.Time        `json:"request_date"`
	Notes              *string          `json:"notes,omitempty"`
	TenantID           *string          `json:"tenant_id"`
	CreatedAt          time.Time        `json:"created_at"`
}

// ToProductOrderResponse converte uma encomenda do domínio para DTO
func ToProductOrderResponse(r *productorder.Request) ProductOrderResponse {
	return ProductOrderResponse{
		ID:          r.ID,
		ProductID:   r.ProductID,
		CustomerID:  r.CustomerID,
		Quantity:    r.Quantity,
		CostPrice:   r.CostPrice,
		SalePrice:   r.SalePrice,
		Status:      string(r.Status),
		RequestDate: r.RequestDate,
		Notes:       r.Notes,
		TenantID:    r.TenantID,
		CreatedAt:   r.CreatedAt,
	}
}

// ToProductOrderViewResponse inclui nomes e preços efetivos
func ToProductOrderViewResponse(v *productorder.View) ProductOrderResponse {
	resp := ToProductOrderResponse(&v.Request)
	resp.ProductName = v.ProductName
	resp.CustomerName = v.CustomerName
	cost, sale := v.EffectiveCostPrice, v.EffectiveSalePrice
	resp.EffectiveCostPrice = &cost
	resp.EffectiveSalePrice = &sale
	return resp
}

// ToProductOrderListResponse converte uma lista de encomendas para DTO paginado
func ToProductOrderListResponse(views []*productorder.View, totalCount int, p Pagination) ListResponse[ProductOrderResponse] {
	return NewListResponse(mapSlice(views, ToProductOrderViewResponse), totalCount, p)
}

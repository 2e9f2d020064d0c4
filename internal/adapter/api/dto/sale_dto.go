package dto

import (
	"time"

	"github.com/hugohenrick/gestao-varejo/internal/domain/sale"
	"github.com/shopspring/decimal"
)

// SaleRequest representa a requisição de criação de venda
type SaleRequest struct {
	CustomerID string          `json:"customer_id" binding:"required"`
	ProductID  string          `json:"product_id" binding:"required"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price" swaggertype:"string"`
	SaleDate   string          `json:"sale_date" binding:"required" example:"2024-03-15"`
	Paid       bool            `json:"paid"`
}

// Input converte a requisição nos dados do domínio
func (r SaleRequest) Input() (sale.CreateInput, error) {
	date, err := ParseDate(r.SaleDate)
	if err != nil {
		return sale.CreateInput{}, err
	}
	return sale.CreateInput{
		CustomerID: r.CustomerID,
		ProductID:  r.ProductID,
		Quantity:   r.Quantity,
		UnitPrice:  r.UnitPrice,
		SaleDate:   date,
		Paid:       r.Paid,
	}, nil
}

// SaleUpdateRequest representa a edição de uma venda; o produto não muda
type SaleUpdateRequest struct {
	CustomerID string          `json:"customer_id" binding:"required"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price" swaggertype:"string"`
	SaleDate   string          `json:"sale_date" binding:"required" example:"2024-03-15"`
	Paid       bool            `json:"paid"`
}

// Input converte a requisição nos dados do domínio
func (r SaleUpdateRequest) Input() (sale.UpdateInput, error) {
	date, err := ParseDate(r.SaleDate)
	if err != nil {
		return sale.UpdateInput{}, err
	}
	return sale.UpdateInput{
		CustomerID: r.CustomerID,
		Quantity:   r.Quantity,
		UnitPrice:  r.UnitPrice,
		SaleDate:   date,
		Paid:       r.Paid,
	}, nil
}

// SaleResponse representa a resposta de venda
type SaleResponse struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name,omitempty"`
	ProductID    *string         `json:"product_id"`
	ProductName  *string         `json:"product_name,omitempty"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price" swaggertype:"string"`
	TotalPrice   decimal.Decimal `json:"total_price" swaggertype:"string"`
	SaleDate     time.Time       `json:"sale_date"`
	Paid         bool            `json:"paid"`
	TenantID     *string         `json:"tenant_id"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ToSaleResponse converte uma venda recém gravada para DTO
func ToSaleResponse(s *sale.Sale) SaleResponse {
	return SaleResponse{
		ID:         s.ID,
		CustomerID: s.CustomerID,
		ProductID:  s.ProductID,
		Quantity:   s.Quantity,
		UnitPrice:  s.UnitPrice,
		TotalPrice: s.TotalPrice,
		SaleDate:   s.SaleDate,
		Paid:       s.Paid,
		TenantID:   s.TenantID,
		CreatedAt:  s.CreatedAt,
	}
}

// ToSaleViewResponse inclui os nomes de produto e cliente
func ToSaleViewResponse(v *sale.View) SaleResponse {
	resp := ToSaleResponse(&v.Sale)
	resp.CustomerName = v.CustomerName
	resp.ProductName = v.ProductName
	return resp
}

// ToSaleListResponse converte uma lista de vendas para DTO paginado
func ToSaleListResponse(views []*sale.View, totalCount int, p Pagination) ListResponse[SaleResponse] {
	return NewListResponse(mapSlice(views, ToSaleViewResponse), totalCount, p)
}

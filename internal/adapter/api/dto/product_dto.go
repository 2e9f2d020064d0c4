package dto

import (
	"time"

	"github.com/hugohenrick/gestao-varejo/internal/domain/product"
	"github.com/shopspring/decimal"
)

// ProductRequest representa a requisição de produto.
// Version é obrigatório na atualização e deve ser o valor lido pelo cliente.
type ProductRequest struct {
	Name           string          `json:"name" binding:"required"`
	CategoryID     *string         `json:"category_id"`
	CostPrice      decimal.Decimal `json:"cost_price" swaggertype:"string"`
	SalePrice      decimal.Decimal `json:"sale_price" swaggertype:"string"`
	Quantity       int             `json:"quantity"`
	IsOrderProduct bool            `json:"is_order_product"`
	Version        int             `json:"version"`
	TenantID       *string         `json:"tenant_id"`
}

// Details converte a requisição nos campos editáveis do domínio
func (r ProductRequest) Details() product.Details {
	return product.Details{
		Name:           r.Name,
		CategoryID:     r.CategoryID,
		CostPrice:      r.CostPrice,
		SalePrice:      r.SalePrice,
		Quantity:       r.Quantity,
		IsOrderProduct: r.IsOrderProduct,
	}
}

// ProductResponse representa a resposta de produto
type ProductResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	CategoryID     *string         `json:"category_id"`
	CostPrice      decimal.Decimal `json:"cost_price" swaggertype:"string"`
	SalePrice      decimal.Decimal `json:"sale_price" swaggertype:"string"`
	Quantity       int             `json:"quantity"`
	IsOrderProduct bool            `json:"is_order_product"`
	StockValue     decimal.Decimal `json:"stock_value" swaggertype:"string"`
	Version        int             `json:"version"`
	TenantID       *string         `json:"tenant_id"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToProductResponse converte um produto do domínio para DTO
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		CategoryID:     p.CategoryID,
		CostPrice:      p.CostPrice,
		SalePrice:      p.SalePrice,
		Quantity:       p.Quantity,
		IsOrderProduct: p.IsOrderProduct,
		StockValue:     p.StockValue(),
		Version:        p.Version,
		TenantID:       p.TenantID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// ToProductListResponse converte uma lista de produtos para DTO paginado
func ToProductListResponse(products []*product.Product, totalCount int, p Pagination) ListResponse[ProductResponse] {
	return NewListResponse(mapSlice(products, ToProductResponse), totalCount, p)
}

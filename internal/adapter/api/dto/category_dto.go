package dto

import (
	"time"

	"github.com/hugohenrick/gestao-varejo/internal/domain/category"
)

// CategoryRequest representa a requisição de categoria
type CategoryRequest struct {
	Name     string  `json:"name" binding:"required"`
	TenantID *string `json:"tenant_id"`
}

// CategoryResponse representa a resposta de categoria
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TenantID  *string   `json:"tenant_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ToCategoryResponse converte uma categoria do domínio para DTO
func ToCategoryResponse(c *category.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		TenantID:  c.TenantID,
		CreatedAt: c.CreatedAt,
	}
}

// ToCategoryListResponse converte uma lista de categorias para DTO paginado
func ToCategoryListResponse(categories []*category.Category, totalCount int, p Pagination) ListResponse[CategoryResponse] {
	return NewListResponse(mapSlice(categories, ToCategoryResponse), totalCount, p)
}

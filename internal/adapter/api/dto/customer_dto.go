package dto

import (
	"time"

	"github.com/hugohenrick/gestao-varejo/internal/domain/customer"
)

// CustomerRequest representa a requisição de cliente
type CustomerRequest struct {
	Name     string  `json:"name" binding:"required"`
	Phone    string  `json:"phone"`
	Email    string  `json:"email" binding:"omitempty,email"`
	Address  string  `json:"address"`
	Notes    *string `json:"notes"`
	TenantID *string `json:"tenant_id"` // considerado apenas para administradores
}

// Contact converte a requisição nos dados do domínio
func (r CustomerRequest) Contact() customer.Contact {
	return customer.Contact{
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		Address: r.Address,
		Notes:   r.Notes,
	}
}

// CustomerResponse representa a resposta de cliente
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Notes     *string   `json:"notes,omitempty"`
	TenantID  *string   `json:"tenant_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCustomerResponse converte um cliente do domínio para DTO
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		Notes:     c.Notes,
		TenantID:  c.TenantID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToCustomerListResponse converte uma lista de clientes para DTO paginado
func ToCustomerListResponse(customers []*customer.Customer, totalCount int, p Pagination) ListResponse[CustomerResponse] {
	return NewListResponse(mapSlice(customers, ToCustomerResponse), totalCount, p)
}

package customer

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/gestao-varejo/pkg/domain"
)

var (
	ErrEmptyName        = domain.Validation("nome não pode ser vazio")
	ErrInvalidEmail     = domain.Validation("email inválido")
	ErrCustomerNotFound = domain.NewError(domain.ErrNotFound, "cliente não encontrado")
	ErrCustomerInUse    = domain.NewError(domain.ErrConflict, "não é possível excluir um cliente com vendas ou pedidos vinculados")
)

// Customer representa um cliente da loja
type Customer struct {
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

// Contact agrupa os dados editáveis de um cliente
type Contact struct {
	Name    string
	Phone   string
	Email   string
	Address string
	Notes   *string
}

// NewCustomer cria um novo cliente
func NewCustomer(data Contact) (*Customer, error) {
	now := time.Now()
	c := &Customer{
		ID:        uuid.New().String(),
		CreatedAt: now,
	}
	if err := c.Update(data); err != nil {
		return nil, err
	}
	c.UpdatedAt = now
	return c, nil
}

// Update substitui os dados de contato do cliente
func (c *Customer) Update(data Contact) error {
	name := strings.TrimSpace(data.Name)
	if name == "" {
		return ErrEmptyName
	}

	email := strings.TrimSpace(data.Email)
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return ErrInvalidEmail
		}
	}

	c.Name = name
	c.Phone = strings.TrimSpace(data.Phone)
	c.Email = email
	c.Address = strings.TrimSpace(data.Address)
	c.Notes = data.Notes
	c.UpdatedAt = time.Now()
	return nil
}

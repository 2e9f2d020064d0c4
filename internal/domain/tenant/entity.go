package tenant

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/gestao-varejo/pkg/domain"
)

var (
	ErrEmptyName      = domain.Validation("nome não pode ser vazio")
	ErrTenantNotFound = domain.NewError(domain.ErrNotFound, "tenant não encontrado")
	ErrTenantHasUsers = domain.NewError(domain.ErrConflict, "não é possível excluir um tenant que possui usuários vinculados")
	ErrTenantInUse    = domain.NewError(domain.ErrConflict, "não é possível excluir um tenant que possui registros vinculados")
)

// Tenant representa uma loja isolada no sistema multi-tenant
type Tenant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTenant cria um novo tenant
func NewTenant(name string) (*Tenant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Tenant{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now(),
	}, nil
}

// Rename altera o nome do tenant
func (t *Tenant) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	t.Name = name
	return nil
}

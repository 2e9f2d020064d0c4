package category

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/gestao-varejo/pkg/domain"
)

var (
	ErrEmptyName        = domain.Validation("nome da categoria não pode ser vazio")
	ErrCategoryNotFound = domain.NewError(domain.ErrNotFound, "categoria não encontrada")
	ErrCategoryInUse    = domain.NewError(domain.ErrConflict, "não é possível excluir uma categoria com produtos vinculados")
)

// Category agrupa produtos de um tenant
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TenantID  *string   `json:"tenant_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCategory cria uma nova categoria
func NewCategory(name string) (*Category, error) {
	c := &Category{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		CreatedAt: time.Now(),
	}
	if c.Name == "" {
		return nil, ErrEmptyName
	}
	return c, nil
}

// Rename altera o nome da categoria
func (c *Category) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	c.Name = name
	return nil
}

package customer

import (
	"context"

	pkgtenant "github.com/hugohenrick/gestao-varejo/pkg/tenant"
)

// Repository define a interface para operações de repositório de clientes
type Repository interface {
	// Create cria um novo cliente
	Create(ctx context.Context, actor pkgtenant.Actor, c *Customer) error

	// FindByID busca um cliente visível para o ator
	FindByID(ctx context.Context, actor pkgtenant.Actor, id string) (*Customer, error)

	// List lista os clientes visíveis para o ator
	List(ctx context.Context, actor pkgtenant.Actor, limit, offset int) ([]*Customer, error)

	// Count conta os clientes visíveis para o ator
	Count(ctx context.Context, actor pkgtenant.Actor) (int, error)

	// Update atualiza um cliente existente
	Update(ctx context.Context, actor pkgtenant.Actor, c *Customer) error

	// Delete remove um cliente
	Delete(ctx context.Context, actor pkgtenant.Actor, id string) error
}

package product

import (
	"context"

	pkgtenant "github.com/hugohenrick/gestao-varejo/pkg/tenant"
)

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create cria um novo produto
	Create(ctx context.Context, actor pkgtenant.Actor, p *Product) error

	// FindByID busca um produto visível para o ator
	FindByID(ctx context.Context, actor pkgtenant.Actor, id string) (*Product, error)

	// List lista produtos; limit zero retorna todos
	List(ctx context.Context, actor pkgtenant.Actor, filter ListFilter, limit, offset int) ([]*Product, error)

	// Count conta os produtos que atendem ao filtro
	Count(ctx context.Context, actor pkgtenant.Actor, filter ListFilter) (int, error)

	// Update grava as alterações se a versão ainda for a lida pelo cliente
	Update(ctx context.Context, actor pkgtenant.Actor, p *Product) error

	// Delete remove um produto
	Delete(ctx context.Context, actor pkgtenant.Actor, id string) error
}

package category

import (
	"context"

	pkgtenant "github.com/hugohenrick/gestao-varejo/pkg/tenant"
)

// Repository define a interface para operações de repositório de categorias
type Repository interface {
	Create(ctx context.Context, actor pkgtenant.Actor, c *Category) error
	FindByID(ctx context.Context, actor pkgtenant.Actor, id string) (*Category, error)
	List(ctx context.Context, actor pkgtenant.Actor, limit, offset int) ([]*Category, error)
	Count(ctx context.Context, actor pkgtenant.Actor) (int, error)
	Update(ctx context.Context, actor pkgtenant.Actor, c *Category) error
	Delete(ctx context.Context, actor pkgtenant.Actor, id string) error
}

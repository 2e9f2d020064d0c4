package productorder

import (
	"context"

	pkgtenant "github.com/hugohenrick/gestao-varejo/pkg/tenant"
)

// ListFilter restringe a listagem de encomendas
type ListFilter struct {
	Status Status
}

// Repository define a interface para operações de repositório de encomendas
type Repository interface {
	Create(ctx context.Context, actor pkgtenant.Actor, r *Request) error
	FindByID(ctx context.Context, actor pkgtenant.Actor, id string) (*View, error)
	List(ctx context.Context, actor pkgtenant.Actor, filter ListFilter, limit, offset int) ([]*View, error)
	Count(ctx context.Context, actor pkgtenant.Actor, filter ListFilter) (int, error)
	Update(ctx context.Context, actor pkgtenant.Actor, r *Request) error
	UpdateStatus(ctx context.Context, actor pkgtenant.Actor, id string, status Status) error
	Delete(ctx context.Context, actor pkgtenant.Actor, id string) error
}

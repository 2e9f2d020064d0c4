package expense

import (
	"context"

	pkgtenant "github.com/hugohenrick/gestao-varejo/pkg/tenant"
)

// Repository define a interface para operações de repositório de despesas
type Repository interface {
	Create(ctx context.Context, actor pkgtenant.Actor, e *Expense) error
	FindByID(ctx context.Context, actor pkgtenant.Actor, id string) (*Expense, error)
	List(ctx context.Context, actor pkgtenant.Actor, filter ListFilter, limit, offset int) ([]*Expense, error)
	Count(ctx context.Context, actor pkgtenant.Actor, filter ListFilter) (int, error)
	Update(ctx context.Context, actor pkgtenant.Actor, e *Expense) error
	Delete(ctx context.Context, actor pkgtenant.Actor, id string) error
}

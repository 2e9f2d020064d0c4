package order

import (
	"context"

	pkgtenant "github.com/hugohenrick/gestao-varejo/pkg/tenant"
)

// Repository define a interface para operações de repositório de pedidos.
// Cabeçalho e itens são sempre gravados na mesma transação.
type Repository interface {
	Create(ctx context.Context, actor pkgtenant.Actor, o *Order) error
	FindByID(ctx context.Context, actor pkgtenant.Actor, id string) (*View, error)
	List(ctx context.Context, actor pkgtenant.Actor, limit, offset int) ([]*View, error)
	Count(ctx context.Context, actor pkgtenant.Actor) (int, error)

	// Update regrava o cabeçalho e substitui todos os itens
	Update(ctx context.Context, actor pkgtenant.Actor, o *Order) error

	Delete(ctx context.Context, actor pkgtenant.Actor, id string) error
}

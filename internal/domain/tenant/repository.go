package tenant

import (
	"context"

	pkgtenant "github.com/hugohenrick/gestao-varejo/pkg/tenant"
)

// Repository define a interface para operações de repositório de tenants.
// Todas as operações são restritas a administradores.
type Repository interface {
	// Create cria um novo tenant
	Create(ctx context.Context, actor pkgtenant.Actor, t *Tenant) error

	// FindByID busca um tenant pelo ID
	FindByID(ctx context.Context, id string) (*Tenant, error)

	// List lista tenants com paginação
	List(ctx context.Context, limit, offset int) ([]*Tenant, error)

	// Count conta quantos tenants existem
	Count(ctx context.Context) (int, error)

	// Update atualiza os dados de um tenant existente
	Update(ctx context.Context, actor pkgtenant.Actor, t *Tenant) error

	// Delete remove um tenant sem usuários vinculados
	Delete(ctx context.Context, actor pkgtenant.Actor, id string) error

	// Exists verifica se um tenant existe
	Exists(ctx context.Context, id string) (bool, error)
}

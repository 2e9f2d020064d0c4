package tenant

import (
	"context"
)

type contextKey string

const (
	actorKey contextKey = "actor"
)

// Actor é o usuário autenticado que executa uma operação.
// É passado explicitamente para repositórios e serviços.
type Actor struct {
	UserID   string
	Username string
	TenantID string
	IsAdmin  bool
}

// HasTenant informa se o ator está vinculado a um tenant
func (a Actor) HasTenant() bool {
	return a.TenantID != ""
}

// WithActor armazena o ator no contexto
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFromContext obtém o ator do contexto
func ActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorKey).(Actor)
	return actor, ok
}

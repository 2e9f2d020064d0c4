package user

import (
	"context"

	pkgtenant "github.com/hugohenrick/gestao-varejo/pkg/tenant"
)

// Repository define a interface para operações de repositório de usuários
type Repository interface {
	// Create cria um novo usuário
	Create(ctx context.Context, actor pkgtenant.Actor, u *User) error

	// FindByID busca um usuário pelo ID
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByUsername busca um usuário pelo nome de usuário
	FindByUsername(ctx context.Context, username string) (*User, error)

	// List lista os usuários com paginação
	List(ctx context.Context, limit, offset int) ([]*User, error)

	// Count conta os usuários cadastrados
	Count(ctx context.Context) (int, error)

	// CountAdmins conta os administradores cadastrados
	CountAdmins(ctx context.Context) (int, error)

	// Update atualiza nome, tenant e papel de um usuário
	Update(ctx context.Context, actor pkgtenant.Actor, u *User) error

	// UpdatePassword atualiza a senha de um usuário
	UpdatePassword(ctx context.Context, actor pkgtenant.Actor, id, hashedPassword string) error

	// Delete remove um usuário do sistema
	Delete(ctx context.Context, actor pkgtenant.Actor, id string) error
}

package dto

import (
	"time"

	"github.com/hugohenrick/gestao-varejo/internal/domain/user"
)

// UserRequest representa os dados de um novo usuário
type UserRequest struct {
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required"`
	TenantID *string `json:"tenant_id"`
	IsAdmin  bool    `json:"is_admin"`
}

// UserUpdateRequest representa os dados editáveis de um usuário
type UserUpdateRequest struct {
	Username string  `json:"username" binding:"required"`
	TenantID *string `json:"tenant_id"`
	IsAdmin  bool    `json:"is_admin"`
}

// SetupAdminRequest cria o primeiro administrador do sistema
type SetupAdminRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest representa os dados para alteração de senha
type ChangePasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required"`
}

// UserResponse representa a resposta com dados de um usuário
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	TenantID  *string   `json:"tenant_id"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToUserResponse converte um usuário do domínio para DTO de resposta
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		TenantID:  u.TenantID,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToUserListResponse converte uma lista de usuários do domínio para DTO de resposta paginada
func ToUserListResponse(users []*user.User, totalCount int, p Pagination) ListResponse[UserResponse] {
	return NewListResponse(mapSlice(users, ToUserResponse), totalCount, p)
}

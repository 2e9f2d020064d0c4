package dto

import (
	"time"
)

// LoginRequest representa os dados para login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SessionUserResponse são os dados do usuário guardados na sessão
type SessionUserResponse struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	TenantID *string `json:"tenant_id"`
	IsAdmin  bool    `json:"is_admin"`
}

// LoginResponse representa a resposta de login bem-sucedido
type LoginResponse struct {
	User        SessionUserResponse `json:"user"`
	AccessToken string              `json:"access_token"`
	TokenType   string              `json:"token_type"`
	ExpiresAt   time.Time           `json:"expires_at"`
}

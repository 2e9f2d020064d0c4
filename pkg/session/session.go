package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/hugohenrick/gestao-varejo/pkg/domain"
	"github.com/hugohenrick/gestao-varejo/pkg/tenant"
)

var (
	ErrInvalidCredentials = domain.NewError(domain.ErrUnauthenticated, "usuário ou senha inválidos")
	ErrSessionNotFound    = domain.NewError(domain.ErrUnauthenticated, "sessão encerrada ou expirada, faça login novamente")

	// errNotStored é retornado pelos stores quando a chave não existe
	errNotStored = errors.New("sessão não encontrada")
)

const keyPrefix = "session:"

// UserData é a cópia dos dados do usuário mantida na sessão
type UserData struct {
	UserID   string  `json:"user_id"`
	Username string  `json:"username"`
	TenantID *string `json:"tenant_id"`
	IsAdmin  bool    `json:"is_admin"`
}

// Session é o estado Authenticated de um token de acesso
type Session struct {
	ID          string    `json:"id"`
	User        UserData  `json:"user"`
	CreatedAt   time.Time `json:"created_at"`
	RefreshedAt time.Time `json:"refreshed_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Actor converte a sessão no ator usado pelas regras de tenant
func (s *Session) Actor() tenant.Actor {
	actor := tenant.Actor{
		UserID:   s.User.UserID,
		Username: s.User.Username,
		IsAdmin:  s.User.IsAdmin,
	}
	if s.User.TenantID != nil {
		actor.TenantID = *s.User.TenantID
	}
	return actor
}

// Store persiste sessões com expiração
type Store interface {
	Save(ctx context.Context, key string, s *Session, ttl time.Duration) error
	Get(ctx context.Context, key string) (*Session, error)
	Delete(ctx context.Context, key string) error
}

// KeyFor deriva a chave da sessão a partir do token; o token nunca é armazenado
func KeyFor(token string) string {
	hash := sha256.Sum256([]byte(token))
	return keyPrefix + hex.EncodeToString(hash[:])
}

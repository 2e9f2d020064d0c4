package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/gestao-varejo/internal/domain/user"
	"github.com/hugohenrick/gestao-varejo/pkg/auth"
	"github.com/hugohenrick/gestao-varejo/pkg/logger"
	"github.com/hugohenrick/gestao-varejo/pkg/tenant"
)

// CredentialVerifier confere usuário e senha no banco
type CredentialVerifier interface {
	VerifyLogin(ctx context.Context, username, password string) (bool, error)
}

// UserLoader busca o cadastro completo do usuário
type UserLoader interface {
	FindByUsername(ctx context.Context, username string) (*user.User, error)
}

// TokenIssuer emite e valida tokens de acesso
type TokenIssuer interface {
	GenerateToken(u *user.User) (string, time.Time, error)
	ValidateToken(token string) (*auth.JWTClaims, error)
}

// LoginRecorder registra métricas de login
type LoginRecorder interface {
	LoginAttempt(outcome string)
}

// Manager controla a transição Anonymous -> Authenticated -> Anonymous
type Manager struct {
	verifier        CredentialVerifier
	users           UserLoader
	tokens          TokenIssuer
	store           Store
	recorder        LoginRecorder
	refreshInterval time.Duration
	logger          logger.Logger
	now             func() time.Time
}

// Config agrupa as dependências do Manager; Recorder é opcional
type Config struct {
	Verifier        CredentialVerifier
	Users           UserLoader
	Tokens          TokenIssuer
	Store           Store
	Recorder        LoginRecorder
	RefreshInterval time.Duration
	Logger          logger.Logger
}

// NewManager cria um Manager
func NewManager(cfg Config) *Manager {
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = 5 * time.Minute
	}
	return &Manager{
		verifier:        cfg.Verifier,
		users:           cfg.Users,
		tokens:          cfg.Tokens,
		store:           cfg.Store,
		recorder:        cfg.Recorder,
		refreshInterval: cfg.RefreshInterval,
		logger:          cfg.Logger,
		now:             time.Now,
	}
}

// Login autentica o usuário e abre uma sessão
func (m *Manager) Login(ctx context.Context, username, password string) (*Session, string, error) {
	ok, err := m.verifier.VerifyLogin(ctx, username, password)
	if err != nil {
		m.record("error")
		return nil, "", err
	}
	if !ok {
		m.record("invalid_credentials")
		return nil, "", ErrInvalidCredentials
	}

	u, err := m.users.FindByUsername(ctx, username)
	if err != nil {
		m.record("error")
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("falha ao carregar usuário: %w", err)
	}

	token, expiresAt, err := m.tokens.GenerateToken(u)
	if err != nil {
		m.record("error")
		return nil, "", fmt.Errorf("falha ao gerar token: %w", err)
	}

	claims, err := m.tokens.ValidateToken(token)
	if err != nil {
		m.record("error")
		return nil, "", fmt.Errorf("falha ao ler token gerado: %w", err)
	}

	now := m.now()
	sess := &Session{
		ID:          claims.ID,
		User:        userData(u),
		CreatedAt:   now,
		RefreshedAt: now,
		ExpiresAt:   expiresAt,
	}

	if err := m.store.Save(ctx, KeyFor(token), sess, expiresAt.Sub(now)); err != nil {
		m.record("error")
		return nil, "", err
	}

	m.record("success")
	m.logger.Info("sessão iniciada", "username", u.Username, "session_id", sess.ID)
	return sess, token, nil
}

// Resolve retorna a sessão do token, recarregando o usuário quando os dados estão antigos
func (m *Manager) Resolve(ctx context.Context, token string) (*Session, error) {
	claims, err := m.tokens.ValidateToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSessionNotFound, err)
	}

	key := KeyFor(token)
	sess, err := m.store.Get(ctx, key)
	if errors.Is(err, errNotStored) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	if sess.User.UserID != claims.UserID {
		return nil, ErrSessionNotFound
	}

	now := m.now()
	if now.Sub(sess.RefreshedAt) < m.refreshInterval {
		return sess, nil
	}

	u, err := m.users.FindByUsername(ctx, sess.User.Username)
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		if err := m.store.Delete(ctx, key); err != nil {
			m.logger.Warn("falha ao remover sessão de usuário excluído", "username", sess.User.Username, "error", err)
		}
		return nil, ErrSessionNotFound
	case err != nil:
		// Mantém os dados em cache; a autorização é refeita a cada escrita
		m.logger.Warn("falha ao atualizar dados da sessão", "username", sess.User.Username, "error", err)
		return sess, nil
	}

	sess.User = userData(u)
	sess.RefreshedAt = now
	if ttl := sess.ExpiresAt.Sub(now); ttl > 0 {
		if err := m.store.Save(ctx, key, sess, ttl); err != nil {
			m.logger.Warn("falha ao gravar sessão atualizada", "username", u.Username, "error", err)
		}
	}
	return sess, nil
}

// ResolveActor implementa auth.SessionResolver
func (m *Manager) ResolveActor(ctx context.Context, token string) (tenant.Actor, error) {
	sess, err := m.Resolve(ctx, token)
	if err != nil {
		return tenant.Actor{}, err
	}
	return sess.Actor(), nil
}

// Logout encerra a sessão do token
func (m *Manager) Logout(ctx context.Context, token string) error {
	return m.store.Delete(ctx, KeyFor(token))
}

func (m *Manager) record(outcome string) {
	if m.recorder != nil {
		m.recorder.LoginAttempt(outcome)
	}
}

func userData(u *user.User) UserData {
	return UserData{
		UserID:   u.ID,
		Username: u.Username,
		TenantID: u.TenantID,
		IsAdmin:  u.IsAdmin,
	}
}
